package mecanum

import (
	"flag"
	"math"

	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	drive "github.com/robotalks/pixy.go/pkg/mecanum"
	"github.com/robotalks/pixy.go/pkg/sim"
)

// Config defines the configuration for the bot.
type Config struct {
	Size         float64
	SpeedMax     float64
	TurnSpeedMax float64
	FOV          float64
	Range        float64
	Targets      int
	TargetRadius float64
	TargetSize   float64
	SlipEvery    int
}

// Defaults
const (
	DefaultSize     float64 = 200
	DefaultSpeedMax float64 = 500
)

var defaultConfig = Config{
	Size:         DefaultSize,
	SpeedMax:     DefaultSpeedMax,
	TurnSpeedMax: 180,
	FOV:          75,
	Range:        3000,
	Targets:      4,
	TargetRadius: 1000,
	TargetSize:   100,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.Size, "bot-size", defaultConfig.Size, "Size (mm) of the bot, it's square.")
	flag.Float64Var(&defaultConfig.SpeedMax, "speed-max", defaultConfig.SpeedMax, "Speed (mm/s) at full wheel output.")
	flag.Float64Var(&defaultConfig.TurnSpeedMax, "turn-speed-max", defaultConfig.TurnSpeedMax, "Turn speed (degrees/s) at full wheel output.")
	flag.Float64Var(&defaultConfig.FOV, "fov", defaultConfig.FOV, "Horizontal field of view (degrees) of the sensor.")
	flag.Float64Var(&defaultConfig.Range, "range", defaultConfig.Range, "Farthest visible distance (mm), 0 unlimited.")
	flag.IntVar(&defaultConfig.Targets, "targets", defaultConfig.Targets, "Number of targets around the bot.")
	flag.Float64Var(&defaultConfig.TargetRadius, "target-radius", defaultConfig.TargetRadius, "Distance (mm) of targets from the origin.")
	flag.Float64Var(&defaultConfig.TargetSize, "target-size", defaultConfig.TargetSize, "Size (mm) of targets.")
	flag.IntVar(&defaultConfig.SlipEvery, "slip-every", defaultConfig.SlipEvery, "Drop a byte every n frames, 0 disables.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewController creates the Controller.
func (c *Config) NewController(e *env.Env) *Controller {
	ctl := NewController(e)
	ctl.Outline.CX, ctl.Outline.CY = c.Size, c.Size
	ctl.Outline.X, ctl.Outline.Y = -ctl.Outline.CX/2, -ctl.Outline.CY/2
	ctl.Body.Caps.SpeedMax = c.SpeedMax
	ctl.Body.Caps.TurnSpeedMax = c.TurnSpeedMax * math.Pi / 180
	ctl.Camera = Camera{FOV: sim.AngleFromDegrees(c.FOV), Range: c.Range}
	ctl.Targets = RingTargets(c.Targets, c.TargetRadius, c.TargetSize)
	ctl.Sensor.SlipEvery = c.SlipEvery
	return ctl
}

// Attach drives the simulated body from the mecanum controller.
func (c *Controller) Attach(ctl *drive.Controller) {
	ctl.Motors = c.Body
}
