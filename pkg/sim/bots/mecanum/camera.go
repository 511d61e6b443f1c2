package mecanum

import (
	"math"

	"github.com/robotalks/pixy.go/pkg/sim"
	simpixy "github.com/robotalks/pixy.go/pkg/sim/pixy"
)

// Camera projects targets into the image of a forward facing sensor.
type Camera struct {
	// FOV is the horizontal field of view.
	FOV sim.Angle
	// Range is the farthest distance (mm) of a visible target.
	Range float64
}

// Project returns the targets visible from pose, in sensor coordinates.
func (c Camera) Project(pose sim.Pose2D, targets []*Target) []simpixy.Target {
	half := math.Abs(c.FOV.Radians()) / 2
	if half == 0 || half >= math.Pi/2 {
		return nil
	}
	focal := simpixy.ImageWidth / 2 / math.Tan(half)
	var visible []simpixy.Target
	for _, t := range targets {
		forward, lateral := pose.Local(t.Pose.Pos2D)
		if forward <= 0 || (c.Range > 0 && forward > c.Range) {
			continue
		}
		x := simpixy.ImageWidth/2 + lateral/forward*focal
		size := t.Size / forward * focal
		if x < 0 || x >= simpixy.ImageWidth || size < 1 {
			continue
		}
		size = math.Min(size, simpixy.ImageHeight)
		st := simpixy.Target{
			Signature:  t.Signature,
			X:          uint16(x),
			Y:          simpixy.ImageHeight / 2,
			Width:      uint16(size),
			Height:     uint16(size),
			ColorCoded: t.ColorCoded,
		}
		if t.ColorCoded {
			st.Angle = int16(math.Round(t.Pose.Orientation.Add(-pose.Orientation).Degrees()))
		}
		visible = append(visible, st)
	}
	return visible
}
