package mecanum

import (
	"sync"

	"github.com/golang/glog"
)

// Motors accepts outputs of the four wheels.
type Motors interface {
	SetOutputs(Outputs) error
}

// Battery reports the battery level.
type Battery interface {
	IsLow() bool
}

// Backlight switches the display backlight.
type Backlight interface {
	SetBacklight(on bool) error
}

// LogMotors logs outputs, for hosts without motor drivers.
type LogMotors struct {
	last Outputs
}

// SetOutputs implements Motors.
func (m *LogMotors) SetOutputs(out Outputs) error {
	if out != m.last {
		glog.V(1).Infof("motors %s", out)
		m.last = out
	}
	return nil
}

// StaticBattery is a Battery with a fixed or manually set state.
type StaticBattery struct {
	low  bool
	lock sync.Mutex
}

// SetLow sets the state.
func (b *StaticBattery) SetLow(low bool) {
	b.lock.Lock()
	b.low = low
	b.lock.Unlock()
}

// IsLow implements Battery.
func (b *StaticBattery) IsLow() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.low
}

// LogBacklight logs backlight changes.
type LogBacklight struct{}

// SetBacklight implements Backlight.
func (LogBacklight) SetBacklight(on bool) error {
	glog.Infof("backlight on=%v", on)
	return nil
}
