package mecanum

import (
	"flag"
	"strings"
	"time"

	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
)

// Config defines the configurations for the controller.
type Config struct {
	Scales          Scales
	LowBatteryScale float64
	Ramp            time.Duration
	Timeout         time.Duration

	// MotorPins lists PWM pins of LF,LR,RF,RR motors, empty for LogMotors.
	MotorPins []string
	// PWMFreq is the servo PWM frequency in Hz.
	PWMFreq int
	// BatteryPin reads low when the battery is low, empty for none.
	BatteryPin string
	// BacklightPin drives the display backlight, empty for LogBacklight.
	BacklightPin string
}

var defaultConfig = Config{
	Scales:          DefaultScales,
	LowBatteryScale: 0.5,
	Ramp:            200 * time.Millisecond,
	Timeout:         500 * time.Millisecond,
	PWMFreq:         50,
}

type pinsValue struct {
	pins *[]string
}

func (v pinsValue) String() string {
	if v.pins == nil {
		return ""
	}
	return strings.Join(*v.pins, ",")
}

func (v pinsValue) Set(s string) error {
	*v.pins = nil
	if s != "" {
		*v.pins = strings.Split(s, ",")
	}
	return nil
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.Scales.Strafe, "scale-x", defaultConfig.Scales.Strafe, "Scale of left/right strafe.")
	flag.Float64Var(&defaultConfig.Scales.Forward, "scale-y", defaultConfig.Scales.Forward, "Scale of forward/backward drive.")
	flag.Float64Var(&defaultConfig.Scales.Twist, "scale-twist", defaultConfig.Scales.Twist, "Scale of twist.")
	flag.DurationVar(&defaultConfig.Ramp, "ramp", defaultConfig.Ramp, "Time from stop to full output, 0 disables ramping.")
	flag.Float64Var(&defaultConfig.LowBatteryScale, "low-battery-scale", defaultConfig.LowBatteryScale, "Output scale when battery is low.")
	flag.DurationVar(&defaultConfig.Timeout, "drive-timeout", defaultConfig.Timeout, "Stop motors without drive commands for this long, 0 disables.")
	flag.Var(pinsValue{&defaultConfig.MotorPins}, "motor-pins", "PWM pins of motors LF,LR,RF,RR.")
	flag.IntVar(&defaultConfig.PWMFreq, "pwm-freq", defaultConfig.PWMFreq, "Motor PWM frequency (Hz).")
	flag.StringVar(&defaultConfig.BatteryPin, "battery-pin", defaultConfig.BatteryPin, "Input pin which reads low on low battery.")
	flag.StringVar(&defaultConfig.BacklightPin, "backlight-pin", defaultConfig.BacklightPin, "Output pin of display backlight.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	conf.MotorPins = append([]string(nil), defaultConfig.MotorPins...)
	return &conf
}

// NewController creates a controller using the config.
// Pins are not opened here, see package periph.
func (c *Config) NewController(e *env.Env) *Controller {
	ctl := NewController(e)
	ctl.Scales = c.Scales
	ctl.LowBatteryScale = c.LowBatteryScale
	ctl.Timeout = c.Timeout
	ctl.Ramp = Ramp{Duration: c.Ramp}
	return ctl
}
