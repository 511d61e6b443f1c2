// Package pixy simulates a Pixy sensor on the byte exchange link.
package pixy

import (
	"net/url"
	"sync"

	"github.com/robotalks/pixy.go/pkg/l0/pixy"
	"github.com/robotalks/pixy.go/pkg/l0/transport"
)

// Target is an object the simulated sensor reports.
type Target struct {
	Signature  uint16
	X, Y       uint16
	Width      uint16
	Height     uint16
	Angle      int16
	ColorCoded bool
}

// Block converts the target to what the decoder should produce.
func (t Target) Block() pixy.Block {
	b := pixy.Block{
		Signature:  t.Signature,
		X:          t.X,
		Y:          t.Y,
		Width:      t.Width,
		Height:     t.Height,
		Area:       uint32(t.Width) * uint32(t.Height),
		ColorCoded: t.ColorCoded,
	}
	if t.ColorCoded {
		b.Angle = t.Angle
	}
	return b
}

// Image dimensions of the sensor.
const (
	ImageWidth  = 320
	ImageHeight = 200
)

// DefaultGapWords is the number of idle words between frames.
const DefaultGapWords = 4

// Sensor implements pixy.Exchanger by serializing frames of targets.
// Every block is sent with a leading start word followed by its own
// marker, so each one is individually decodable.
type Sensor struct {
	// GapWords is the number of idle words sent after each frame.
	GapWords int
	// SlipEvery drops the first byte of every n-th frame, 0 disables.
	SlipEvery int

	targets []Target
	tx      []byte
	frames  int

	dataNext bool
	cmd      []byte
	led      [3]uint8
	ledSet   bool
	bright   uint8
	brightOK bool
	cmdCount int

	lock sync.Mutex
}

// NewSensor creates a Sensor reporting targets.
func NewSensor(targets ...Target) *Sensor {
	return &Sensor{GapWords: DefaultGapWords, targets: targets}
}

// SetTargets replaces the targets from the next frame.
func (s *Sensor) SetTargets(targets ...Target) {
	s.lock.Lock()
	s.targets = append([]Target(nil), targets...)
	s.lock.Unlock()
}

// Targets returns the current targets.
func (s *Sensor) Targets() []Target {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Target(nil), s.targets...)
}

// Frames returns the number of frames generated.
func (s *Sensor) Frames() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.frames
}

// Exchange implements pixy.Exchanger.
func (s *Sensor) Exchange(in byte) (byte, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.receive(in)
	if len(s.tx) == 0 {
		s.nextFrame()
	}
	out := s.tx[0]
	s.tx = s.tx[1:]
	return out, nil
}

// Close implements io.Closer.
func (s *Sensor) Close() error {
	return nil
}

// LED returns the last color set by a command.
func (s *Sensor) LED() (r, g, b uint8, ok bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.led[0], s.led[1], s.led[2], s.ledSet
}

// Brightness returns the last brightness set by a command.
func (s *Sensor) Brightness() (uint8, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.bright, s.brightOK
}

// Commands returns the number of complete commands received.
func (s *Sensor) Commands() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.cmdCount
}

func (s *Sensor) nextFrame() {
	s.frames++
	var frame []byte
	for _, t := range s.targets {
		frame = appendBlock(frame, t)
	}
	for i := 0; i < s.GapWords; i++ {
		frame = append(frame, 0, 0)
	}
	if len(frame) == 0 {
		frame = append(frame, 0, 0)
	}
	if s.SlipEvery > 0 && s.frames%s.SlipEvery == 0 {
		frame = frame[1:]
	}
	s.tx = frame
}

func appendWord(dst []byte, w uint16) []byte {
	return append(dst, byte(w>>8), byte(w))
}

func appendBlock(dst []byte, t Target) []byte {
	b := t.Block()
	dst = appendWord(dst, pixy.StartWord)
	if b.ColorCoded {
		dst = appendWord(dst, pixy.StartWordCC)
	} else {
		dst = appendWord(dst, pixy.StartWord)
	}
	dst = appendWord(dst, b.Checksum())
	dst = appendWord(dst, b.Signature)
	dst = appendWord(dst, b.X)
	dst = appendWord(dst, b.Y)
	dst = appendWord(dst, b.Width)
	dst = appendWord(dst, b.Height)
	if b.ColorCoded {
		dst = appendWord(dst, uint16(b.Angle))
	}
	return dst
}

// receive collects the byte following each data sync byte as command data.
func (s *Sensor) receive(in byte) {
	if s.dataNext {
		s.dataNext = false
		s.cmd = append(s.cmd, in)
		s.parseCommands()
		return
	}
	s.dataNext = in == pixy.SyncByteData
}

func (s *Sensor) parseCommands() {
	for len(s.cmd) > 0 {
		if s.cmd[0] != 0 {
			s.cmd = s.cmd[1:]
			continue
		}
		if len(s.cmd) < 2 {
			return
		}
		switch s.cmd[1] {
		case 0xfd:
			if len(s.cmd) < 5 {
				return
			}
			s.led = [3]uint8{s.cmd[2], s.cmd[3], s.cmd[4]}
			s.ledSet = true
			s.cmd = s.cmd[5:]
		case 0xfe:
			if len(s.cmd) < 3 {
				return
			}
			s.bright, s.brightOK = s.cmd[2], true
			s.cmd = s.cmd[3:]
		default:
			s.cmd = s.cmd[1:]
			continue
		}
		s.cmdCount++
	}
}

// open creates a Sensor from sim://?targets=N&slip=M.
// Targets are spread horizontally with alternating variants.
func open(u *url.URL) (transport.Link, error) {
	n, err := transport.IntParam(u, "targets", 1)
	if err != nil {
		return nil, err
	}
	slip, err := transport.IntParam(u, "slip", 0)
	if err != nil {
		return nil, err
	}
	s := NewSensor(DemoTargets(n)...)
	s.SlipEvery = slip
	return s, nil
}

// DemoTargets creates n targets spread across the image.
func DemoTargets(n int) []Target {
	targets := make([]Target, 0, n)
	for i := 0; i < n; i++ {
		t := Target{
			Signature: uint16(i + 1),
			X:         uint16((i + 1) * ImageWidth / (n + 1)),
			Y:         ImageHeight / 2,
			Width:     20,
			Height:    16,
		}
		if i%2 == 1 {
			t.Signature = uint16(0o10 + i)
			t.ColorCoded = true
			t.Angle = int16(-45 + 30*i)
		}
		targets = append(targets, t)
	}
	return targets
}

func init() {
	transport.Register("sim", open)
}

