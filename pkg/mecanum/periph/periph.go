// Package periph drives the mecanum base with GPIO pins through periph.io.
// Motor controllers take servo style PWM: 1.5ms is neutral, 1ms and 2ms
// are full reverse and forward.
package periph

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/robotalks/pixy.go/pkg/mecanum"
)

var (
	hostOnce sync.Once
	hostErr  error
)

func initHost() error {
	hostOnce.Do(func() {
		_, hostErr = host.Init()
	})
	return hostErr
}

// Pulse widths of servo PWM.
const (
	NeutralPulse = 1500 * time.Microsecond
	RangePulse   = 500 * time.Microsecond
)

// PulseDuty converts an output in [-1, 1] to the duty at freq.
func PulseDuty(v float64, freq physic.Frequency) gpio.Duty {
	period := freq.Period()
	if period <= 0 {
		return 0
	}
	pulse := NeutralPulse + time.Duration(v*float64(RangePulse))
	return gpio.Duty(float64(gpio.DutyMax) * float64(pulse) / float64(period))
}

// Motors implements mecanum.Motors with four PWM pins.
type Motors struct {
	Pins [4]gpio.PinOut
	Freq physic.Frequency
}

// NewMotors looks up pins in order LF, LR, RF, RR.
func NewMotors(names []string, freqHz int) (*Motors, error) {
	if len(names) != 4 {
		return nil, fmt.Errorf("expect 4 motor pins, got %d", len(names))
	}
	if err := initHost(); err != nil {
		return nil, err
	}
	m := &Motors{Freq: physic.Frequency(freqHz) * physic.Hertz}
	for i, name := range names {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("unknown pin %q", name)
		}
		m.Pins[i] = p
	}
	return m, m.SetOutputs(mecanum.Outputs{})
}

// SetOutputs implements mecanum.Motors.
func (m *Motors) SetOutputs(out mecanum.Outputs) error {
	vals := [4]float64{out.LeftFront, out.LeftRear, out.RightFront, out.RightRear}
	for i, p := range m.Pins {
		if err := p.PWM(PulseDuty(vals[i], m.Freq), m.Freq); err != nil {
			return fmt.Errorf("pwm %s: %v", p, err)
		}
	}
	return nil
}

// Halt stops PWM output on all pins.
func (m *Motors) Halt() error {
	var firstErr error
	for _, p := range m.Pins {
		if err := p.Halt(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Battery implements mecanum.Battery with an input pin driven low
// by a voltage comparator.
type Battery struct {
	Pin gpio.PinIn
}

// NewBattery opens the input pin with pull up.
func NewBattery(name string) (*Battery, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pin %q", name)
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, err
	}
	return &Battery{Pin: p}, nil
}

// IsLow implements mecanum.Battery.
func (b *Battery) IsLow() bool {
	return b.Pin.Read() == gpio.Low
}

// Backlight implements mecanum.Backlight with an output pin.
type Backlight struct {
	Pin gpio.PinOut
}

// NewBacklight opens the output pin, initially off.
func NewBacklight(name string) (*Backlight, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pin %q", name)
	}
	b := &Backlight{Pin: p}
	return b, b.SetBacklight(false)
}

// SetBacklight implements mecanum.Backlight.
func (b *Backlight) SetBacklight(on bool) error {
	return b.Pin.Out(gpio.Level(on))
}

// Attach replaces devices of ctl with pins named in conf.
// Devices without a pin are kept.
func Attach(ctl *mecanum.Controller, conf *mecanum.Config) error {
	if len(conf.MotorPins) > 0 {
		m, err := NewMotors(conf.MotorPins, conf.PWMFreq)
		if err != nil {
			return err
		}
		ctl.Motors = m
	}
	if conf.BatteryPin != "" {
		b, err := NewBattery(conf.BatteryPin)
		if err != nil {
			return err
		}
		ctl.Battery = b
	}
	if conf.BacklightPin != "" {
		b, err := NewBacklight(conf.BacklightPin)
		if err != nil {
			return err
		}
		ctl.Backlight = b
	}
	return nil
}
