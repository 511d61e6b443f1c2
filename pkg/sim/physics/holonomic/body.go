// Package holonomic simulates a mecanum wheeled body.
package holonomic

import (
	"sync"
	"time"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/mecanum"
	"github.com/robotalks/pixy.go/pkg/sim"
	"github.com/robotalks/pixy.go/pkg/sim/physics"
)

// Caps defines the speed of the body at full wheel output.
type Caps struct {
	// SpeedMax is in mm/s.
	SpeedMax float64
	// TurnSpeedMax is in radians/s.
	TurnSpeedMax float64
}

// Body implements mecanum.Motors and moves Object according to
// the wheel outputs.
type Body struct {
	Object sim.Placeable2D
	Caps   Caps

	lock     sync.Mutex
	outputs  mecanum.Outputs
	lastTime time.Time
}

// New creates a Body.
func New(obj sim.Placeable2D, caps Caps) *Body {
	return &Body{Object: obj, Caps: caps}
}

// SetOutputs implements mecanum.Motors.
func (b *Body) SetOutputs(out mecanum.Outputs) error {
	b.lock.Lock()
	b.outputs = out
	b.lock.Unlock()
	return nil
}

// Outputs returns the last wheel outputs.
func (b *Body) Outputs() mecanum.Outputs {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.outputs
}

// Velocity implements physics.Moving2D by inverting the wheel mixing.
func (b *Body) Velocity() physics.Velocity2D {
	out := b.Outputs()
	lf, lr, rf, rr := -out.LeftFront, -out.LeftRear, out.RightFront, out.RightRear
	return physics.Velocity2D{
		Forward: b.Caps.SpeedMax * (lf + lr + rf + rr) / 4,
		Strafe:  b.Caps.SpeedMax * (lf - lr - rf + rr) / 4,
		Turn:    b.Caps.TurnSpeedMax * (lf + lr - rf - rr) / 4,
	}
}

// Integrate implements physics.Moving2D, moving Object with the
// velocity since the last call.
func (b *Body) Integrate(ctx physics.Context) {
	now := ctx.Time()
	last := b.lastTime
	b.lastTime = now
	if last.IsZero() || !now.After(last) {
		return
	}
	v := b.Velocity()
	if v.IsZero() {
		return
	}
	secs := now.Sub(last).Seconds()
	pose := b.Object.Position2D()
	// move along the heading at the middle of the interval.
	mid := pose
	mid.Orientation = pose.Orientation.AddRadians(v.Turn * secs / 2)
	ahead, right := mid.Axes()
	pose.OffsetBy(sim.Pos2D{
		X: (ahead.X*v.Forward + right.X*v.Strafe) * secs,
		Y: (ahead.Y*v.Forward + right.Y*v.Strafe) * secs,
	})
	pose.Orientation = pose.Orientation.AddRadians(v.Turn * secs)
	b.Object.SetPose2D(pose)
}

// AddToLoop implements LoopAdder.
func (b *Body) AddToLoop(l *fx.Loop) {
	l.AddController(fx.PrLvAcuate, fx.ControlFunc(b.Execute))
}

// Execute is a controller for actuation.
func (b *Body) Execute(cc fx.ControlContext) error {
	b.Integrate(cc)
	return nil
}

var _ physics.Moving2D = (*Body)(nil)
