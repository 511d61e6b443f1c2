package physics

import (
	"context"

	fx "github.com/robotalks/pixy.go/pkg/framework"
)

// Context provides the simulation context.
type Context interface {
	fx.TimeSource
	Context() context.Context
}

// Velocity2D is the velocity of a body in its own frame.
type Velocity2D struct {
	// Forward and Strafe are in mm/s, Strafe positive to the right.
	Forward float64
	Strafe  float64
	// Turn is in radians/s, positive clockwise.
	Turn float64
}

// IsZero indicates the body is not moving.
func (v Velocity2D) IsZero() bool {
	return v.Forward == 0 && v.Strafe == 0 && v.Turn == 0
}

// Moving2D simulates a body moving on a 2D plane.
type Moving2D interface {
	Velocity() Velocity2D
	Integrate(Context)
}
