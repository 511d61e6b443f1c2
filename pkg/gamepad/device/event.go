package device

import "encoding/binary"

// struct js_event.
const eventSize = 8

const (
	evINIT uint8 = 0x80
	evBTN  uint8 = 0x01
	evAXIS uint8 = 0x02
)

type event struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

func (e *event) IsInit() bool {
	return e.Type&evINIT != 0
}

func (e *event) Index() int {
	return int(e.Number)
}

type axisEvent struct {
	event
}

func (e *axisEvent) Value() int {
	return int(e.event.Value)
}

type buttonEvent struct {
	event
}

func (e *buttonEvent) Pressed() bool {
	return e.event.Value != 0
}

func decodeEvent(buf [eventSize]byte) Event {
	ev := event{
		Time:   binary.NativeEndian.Uint32(buf[0:4]),
		Value:  int16(binary.NativeEndian.Uint16(buf[4:6])),
		Type:   buf[6],
		Number: buf[7],
	}
	switch ev.Type &^ evINIT {
	case evBTN:
		return &buttonEvent{event: ev}
	case evAXIS:
		return &axisEvent{event: ev}
	}
	return &ev
}

// NewAxisEvent creates an AxisEvent, for tests and simulated devices.
func NewAxisEvent(index, value int) AxisEvent {
	return &axisEvent{event: event{Type: evAXIS, Number: uint8(index), Value: int16(value)}}
}

// NewButtonEvent creates a ButtonEvent, for tests and simulated devices.
func NewButtonEvent(index int, pressed bool) ButtonEvent {
	ev := event{Type: evBTN, Number: uint8(index)}
	if pressed {
		ev.Value = 1
	}
	return &buttonEvent{event: ev}
}
