// Package mecanum drives a four wheel mecanum base.
package mecanum

import (
	"fmt"
	"math"
	"time"
)

// Input is the desired motion, each component in [-1, 1].
type Input struct {
	Forward float64
	Strafe  float64
	Twist   float64
}

// Scales are applied to Input before mixing.
type Scales struct {
	Forward float64
	Strafe  float64
	Twist   float64
}

// DefaultScales limit the speed of a teleoperated base.
var DefaultScales = Scales{Forward: 0.5, Strafe: 0.5, Twist: 0.3}

// Scale applies the scales.
func (s Scales) Scale(in Input) Input {
	return Input{
		Forward: in.Forward * s.Forward,
		Strafe:  in.Strafe * s.Strafe,
		Twist:   in.Twist * s.Twist,
	}
}

// Outputs are the motor outputs, each in [-1, 1].
type Outputs struct {
	LeftFront  float64
	LeftRear   float64
	RightFront float64
	RightRear  float64
}

// String implements fmt.Stringer.
func (o Outputs) String() string {
	return fmt.Sprintf("LF=%.3f LR=%.3f RF=%.3f RR=%.3f", o.LeftFront, o.LeftRear, o.RightFront, o.RightRear)
}

// IsZero tells if all motors are stopped.
func (o Outputs) IsZero() bool {
	return o == Outputs{}
}

// Compute mixes the input into motor outputs. Left side motors are
// mounted mirrored so they are inverted. When the battery is low,
// outputs are multiplied by lowScale.
func Compute(in Input, lowBattery bool, lowScale float64) Outputs {
	out := Outputs{
		LeftFront:  -(in.Forward + in.Strafe + in.Twist),
		LeftRear:   -(in.Forward - in.Strafe + in.Twist),
		RightFront: in.Forward - in.Strafe - in.Twist,
		RightRear:  in.Forward + in.Strafe - in.Twist,
	}
	if lowBattery {
		out.LeftFront *= lowScale
		out.LeftRear *= lowScale
		out.RightFront *= lowScale
		out.RightRear *= lowScale
	}
	out.LeftFront = clamp(out.LeftFront)
	out.LeftRear = clamp(out.LeftRear)
	out.RightFront = clamp(out.RightFront)
	out.RightRear = clamp(out.RightRear)
	return out
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// Ramp limits the rate of change of outputs so a full scale change
// takes Duration.
type Ramp struct {
	Duration time.Duration

	current Outputs
	last    time.Time
}

// Current returns the last output.
func (r *Ramp) Current() Outputs {
	return r.current
}

// Step moves toward target and returns the output at now.
func (r *Ramp) Step(target Outputs, now time.Time) Outputs {
	if r.Duration <= 0 || r.last.IsZero() {
		r.last = now
		if r.Duration <= 0 {
			r.current = target
			return r.current
		}
	}
	dt := now.Sub(r.last)
	r.last = now
	if dt < 0 {
		dt = 0
	}
	maxDelta := float64(dt) / float64(r.Duration)
	r.current = Outputs{
		LeftFront:  approach(r.current.LeftFront, target.LeftFront, maxDelta),
		LeftRear:   approach(r.current.LeftRear, target.LeftRear, maxDelta),
		RightFront: approach(r.current.RightFront, target.RightFront, maxDelta),
		RightRear:  approach(r.current.RightRear, target.RightRear, maxDelta),
	}
	return r.current
}

// Reset stops immediately.
func (r *Ramp) Reset() {
	r.current = Outputs{}
	r.last = time.Time{}
}

func approach(cur, target, maxDelta float64) float64 {
	switch {
	case target > cur+maxDelta:
		return cur + maxDelta
	case target < cur-maxDelta:
		return cur - maxDelta
	}
	return target
}
