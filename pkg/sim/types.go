package sim

import (
	"math"

	fx "github.com/robotalks/pixy.go/pkg/framework"
)

// Size2D defines the rectangular size in 2D.
type Size2D struct {
	CX, CY float64
}

// Pos2D defines the position in 2D.
type Pos2D struct {
	X, Y float64
}

// Rect defines a rectangle in 2D.
type Rect struct {
	Pos2D
	Size2D
}

// Pose2D defines the pose in 2D.
type Pose2D struct {
	Pos2D
	Orientation Angle
}

// Angle is the common representation of angle,
// supporting multiple units.
type Angle float64

// Rectangular object provides an rectangluar outline dimension.
type Rectangular interface {
	OutlineRect() Rect
}

// Positionable2D object maintains a 2D position.
type Positionable2D interface {
	Position2D() Pose2D
}

// Placeable2D object can be moved with a new pose on a 2D plane.
type Placeable2D interface {
	Positionable2D
	SetPose2D(Pose2D) Pose2D
}

// Object represents an object in the world.
type Object interface {
	fx.Named
}

// ObjectsChangeListener listens for object changes.
type ObjectsChangeListener interface {
	ObjectsChanged(fx.ControlContext, ...Object)
	ObjectsRemoved(fx.ControlContext, ...Object)
}

// ObjectsChangeSubscriber subscribes objects change notifications.
type ObjectsChangeSubscriber interface {
	SubscribeObjectsChange(ObjectsChangeListener)
}

// Add is a helper to add Pos2D.
func (p Pos2D) Add(p1 Pos2D) Pos2D {
	return Pos2D{X: p.X + p1.X, Y: p.Y + p1.Y}
}

// OffsetBy performs Add in-place.
func (p *Pos2D) OffsetBy(p1 Pos2D) *Pos2D {
	p.X += p1.X
	p.Y += p1.Y
	return p
}

// Sub returns the offset from p1 to p.
func (p Pos2D) Sub(p1 Pos2D) Pos2D {
	return Pos2D{X: p.X - p1.X, Y: p.Y - p1.Y}
}

// Dot is the dot product.
func (p Pos2D) Dot(p1 Pos2D) float64 {
	return p.X*p1.X + p.Y*p1.Y
}

// Axes returns the unit vectors ahead of and to the right of the pose.
// The plane has Y pointing down, so positive angles turn clockwise.
func (p Pose2D) Axes() (ahead, right Pos2D) {
	return p.Orientation.Project(1), p.Orientation.AddRadians(math.Pi / 2).Project(1)
}

// Local converts a point on the plane into the frame of the pose.
func (p Pose2D) Local(pos Pos2D) (forward, lateral float64) {
	ahead, right := p.Axes()
	rel := pos.Sub(p.Pos2D)
	return rel.Dot(ahead), rel.Dot(right)
}
