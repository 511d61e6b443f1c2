package mecanum

import (
	"fmt"
	"math"

	"github.com/robotalks/pixy.go/pkg/sim"
)

// Target is a colored object on the plane the camera can see.
type Target struct {
	ID         string
	Signature  uint16
	ColorCoded bool
	Size       float64
	Pose       sim.Pose2D
}

// Name implements sim.Object.
func (t *Target) Name() string {
	return "target/" + t.ID
}

// OutlineRect implements sim.Rectangular.
func (t *Target) OutlineRect() sim.Rect {
	return sim.Rect{
		Pos2D:  sim.Pos2D{X: -t.Size / 2, Y: -t.Size / 2},
		Size2D: sim.Size2D{CX: t.Size, CY: t.Size},
	}
}

// Position2D implements sim.Positionable2D.
func (t *Target) Position2D() sim.Pose2D {
	return t.Pose
}

// RingTargets places n targets evenly on a circle around the origin,
// odd ones color-coded.
func RingTargets(n int, radius, size float64) []*Target {
	targets := make([]*Target, n)
	for i := range targets {
		dir := sim.AngleFromRadians(2 * math.Pi * float64(i) / float64(n))
		targets[i] = &Target{
			ID:         fmt.Sprintf("%d", i),
			Signature:  uint16(i%7 + 1),
			ColorCoded: i%2 == 1,
			Size:       size,
			Pose:       sim.Pose2D{Pos2D: dir.Project(radius), Orientation: dir},
		}
	}
	return targets
}
