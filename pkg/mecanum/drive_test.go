package mecanum

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		low  bool
		out  Outputs
	}{
		{"forward", Input{Forward: 0.5}, false, Outputs{-0.5, -0.5, 0.5, 0.5}},
		{"strafe right", Input{Strafe: 0.5}, false, Outputs{-0.5, 0.5, -0.5, 0.5}},
		{"twist right", Input{Twist: 0.3}, false, Outputs{-0.3, -0.3, -0.3, -0.3}},
		{"low battery", Input{Forward: 0.5}, true, Outputs{-0.25, -0.25, 0.25, 0.25}},
		{"clamped", Input{Forward: 1, Strafe: 1, Twist: 1}, false, Outputs{-1, -1, -1, 1}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := Compute(test.in, test.low, 0.5)
			assert.InDelta(t, test.out.LeftFront, out.LeftFront, 1e-9)
			assert.InDelta(t, test.out.LeftRear, out.LeftRear, 1e-9)
			assert.InDelta(t, test.out.RightFront, out.RightFront, 1e-9)
			assert.InDelta(t, test.out.RightRear, out.RightRear, 1e-9)
		})
	}
	assert.Equal(t, Outputs{}, Compute(Input{Forward: math.NaN()}, false, 0.5))
}

func TestScales(t *testing.T) {
	in := DefaultScales.Scale(Input{Forward: 1, Strafe: -1, Twist: 1})
	assert.Equal(t, Input{Forward: 0.5, Strafe: -0.5, Twist: 0.3}, in)
}

func TestRamp(t *testing.T) {
	r := Ramp{Duration: 200 * time.Millisecond}
	at := time.Unix(100, 0)
	target := Outputs{LeftFront: 1, RightRear: -1}
	assert.True(t, r.Step(target, at).IsZero())

	out := r.Step(target, at.Add(50*time.Millisecond))
	assert.InDelta(t, 0.25, out.LeftFront, 1e-9)
	assert.InDelta(t, -0.25, out.RightRear, 1e-9)

	out = r.Step(target, at.Add(500*time.Millisecond))
	assert.Equal(t, target, out)

	r.Reset()
	assert.True(t, r.Current().IsZero())

	immediate := Ramp{}
	assert.Equal(t, target, immediate.Step(target, at))
}
