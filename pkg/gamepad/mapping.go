package gamepad

import (
	"github.com/robotalks/pixy.go/pkg/gamepad/device"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

// Mapping assigns gamepad axes and buttons to drive inputs.
// A negative index disables the input.
type Mapping struct {
	AxisStrafe  int
	AxisForward int
	AxisTwist   int
	// InvertForward flips the forward axis, sticks report negative when pushed up.
	InvertForward bool

	BtnBacklightOff int
	BtnBacklightOn  int
}

// DefaultMapping is the layout of common dual-stick gamepads.
var DefaultMapping = Mapping{
	AxisStrafe:      0,
	AxisForward:     1,
	AxisTwist:       2,
	InvertForward:   true,
	BtnBacklightOff: 2,
	BtnBacklightOn:  3,
}

// State tracks axes and buttons reported by a device.
type State struct {
	axes    map[int]int
	buttons map[int]bool
}

// Reset forgets all inputs, as when the device is lost.
func (s *State) Reset() {
	s.axes, s.buttons = nil, nil
}

// Apply updates the state with ev and returns the commands it triggers.
// Init events only update the state.
func (s *State) Apply(m Mapping, ev device.Event) (drive *msgs.DriveSet, backlight *msgs.BacklightSet) {
	switch e := ev.(type) {
	case device.AxisEvent:
		if s.axes == nil {
			s.axes = make(map[int]int)
		}
		if s.axes[e.Index()] == e.Value() {
			return
		}
		s.axes[e.Index()] = e.Value()
		if !e.IsInit() && m.drives(e.Index()) {
			drive = s.Drive(m)
		}
	case device.ButtonEvent:
		if s.buttons == nil {
			s.buttons = make(map[int]bool)
		}
		rising := e.Pressed() && !s.buttons[e.Index()]
		s.buttons[e.Index()] = e.Pressed()
		if !rising || e.IsInit() {
			return
		}
		switch e.Index() {
		case m.BtnBacklightOff:
			backlight = &msgs.BacklightSet{On: false}
		case m.BtnBacklightOn:
			backlight = &msgs.BacklightSet{On: true}
		}
	}
	return
}

// Drive builds the normalized drive command from current axes.
func (s *State) Drive(m Mapping) *msgs.DriveSet {
	forward := s.axis(m.AxisForward)
	if m.InvertForward {
		forward = -forward
	}
	return &msgs.DriveSet{
		Forward: forward,
		Strafe:  s.axis(m.AxisStrafe),
		Twist:   s.axis(m.AxisTwist),
	}
}

func (s *State) axis(index int) float32 {
	if index < 0 {
		return 0
	}
	v := float32(s.axes[index]) / device.AxisMax
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

func (m Mapping) drives(index int) bool {
	return index >= 0 && (index == m.AxisStrafe || index == m.AxisForward || index == m.AxisTwist)
}
