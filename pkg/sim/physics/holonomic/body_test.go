package holonomic

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robotalks/pixy.go/pkg/mecanum"
	"github.com/robotalks/pixy.go/pkg/sim"
)

type object struct {
	pose sim.Pose2D
}

func (o *object) Position2D() sim.Pose2D { return o.pose }

func (o *object) SetPose2D(pose sim.Pose2D) sim.Pose2D {
	o.pose = pose
	return pose
}

type at time.Time

func (t at) Time() time.Time          { return time.Time(t) }
func (t at) Context() context.Context { return context.Background() }

func TestBodyVelocity(t *testing.T) {
	b := New(&object{}, Caps{SpeedMax: 100, TurnSpeedMax: 2})
	testCases := []struct {
		in     mecanum.Input
		expect [3]float64
	}{
		{mecanum.Input{Forward: 1}, [3]float64{100, 0, 0}},
		{mecanum.Input{Strafe: -1}, [3]float64{0, -100, 0}},
		{mecanum.Input{Twist: 0.5}, [3]float64{0, 0, 1}},
	}
	for _, tc := range testCases {
		b.SetOutputs(mecanum.Compute(tc.in, false, 1))
		v := b.Velocity()
		assert.InDelta(t, tc.expect[0], v.Forward, 1e-9, "%+v", tc.in)
		assert.InDelta(t, tc.expect[1], v.Strafe, 1e-9, "%+v", tc.in)
		assert.InDelta(t, tc.expect[2], v.Turn, 1e-9, "%+v", tc.in)
	}
}

func TestBodyIntegrate(t *testing.T) {
	obj := &object{}
	b := New(obj, Caps{SpeedMax: 100, TurnSpeedMax: math.Pi})
	start := time.Unix(1000, 0)

	b.SetOutputs(mecanum.Compute(mecanum.Input{Forward: 1}, false, 1))
	b.Integrate(at(start))
	assert.Equal(t, sim.Pose2D{}, obj.pose, "first call only records time")
	b.Integrate(at(start.Add(time.Second)))
	assert.InDelta(t, 100, obj.pose.X, 1e-9)
	assert.InDelta(t, 0, obj.pose.Y, 1e-9)

	b.SetOutputs(mecanum.Compute(mecanum.Input{Strafe: 1}, false, 1))
	b.Integrate(at(start.Add(2 * time.Second)))
	assert.InDelta(t, 100, obj.pose.X, 1e-9)
	assert.InDelta(t, 100, obj.pose.Y, 1e-9)

	b.SetOutputs(mecanum.Compute(mecanum.Input{Twist: 0.5}, false, 1))
	b.Integrate(at(start.Add(2500 * time.Millisecond)))
	assert.InDelta(t, math.Pi/4, obj.pose.Orientation.Radians(), 1e-9)
	assert.InDelta(t, 100, obj.pose.X, 1e-9)

	b.SetOutputs(mecanum.Outputs{})
	pose := obj.pose
	b.Integrate(at(start.Add(10 * time.Second)))
	assert.Equal(t, pose, obj.pose)
}
