package gamepad

import (
	"flag"
	"time"

	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
)

// Config defines the configurations for the controller.
type Config struct {
	DeviceIndex int
	Verbose     bool
	Mapping     Mapping
	Heartbeat   time.Duration
}

var defaultConfig = Config{
	DeviceIndex: -1,
	Mapping:     DefaultMapping,
	Heartbeat:   100 * time.Millisecond,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.IntVar(&defaultConfig.DeviceIndex, "device", defaultConfig.DeviceIndex, "Device index, -1 for auto detection.")
	flag.BoolVar(&defaultConfig.Verbose, "verbose", defaultConfig.Verbose, "Print gamepad events.")
	flag.IntVar(&defaultConfig.Mapping.AxisStrafe, "axis-x", defaultConfig.Mapping.AxisStrafe, "Axis for left/right strafe, -1 disables.")
	flag.IntVar(&defaultConfig.Mapping.AxisForward, "axis-y", defaultConfig.Mapping.AxisForward, "Axis for forward/backward drive, -1 disables.")
	flag.IntVar(&defaultConfig.Mapping.AxisTwist, "axis-twist", defaultConfig.Mapping.AxisTwist, "Axis for twist, -1 disables.")
	flag.BoolVar(&defaultConfig.Mapping.InvertForward, "invert-y", defaultConfig.Mapping.InvertForward, "Invert forward axis.")
	flag.IntVar(&defaultConfig.Mapping.BtnBacklightOff, "btn-backlight-off", defaultConfig.Mapping.BtnBacklightOff, "Button turning backlight off.")
	flag.IntVar(&defaultConfig.Mapping.BtnBacklightOn, "btn-backlight-on", defaultConfig.Mapping.BtnBacklightOn, "Button turning backlight on.")
	flag.DurationVar(&defaultConfig.Heartbeat, "heartbeat", defaultConfig.Heartbeat, "Interval repeating drive command.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewController creates a controller using the config.
func (c *Config) NewController(e *env.Env) *Controller {
	ctl := NewController(e)
	ctl.DeviceIndex = c.DeviceIndex
	ctl.Verbose = c.Verbose
	ctl.Mapping = c.Mapping
	ctl.Heartbeat = c.Heartbeat
	return ctl
}
