package vision

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/robotalks/pixy.go/pkg/l0/pixy"
	"github.com/robotalks/pixy.go/pkg/l0/transport"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/telemetry"
)

// Config defines the configurations for the controller.
type Config struct {
	// Device is the transport URL of the sensor.
	Device string
	// Steps is the maximum number of decoder steps per loop iteration.
	Steps int
	// BusURL is the telemetry bus URL.
	BusURL   string
	Channels telemetry.Channels
	// PublishBlocks sends VisionBlocks events when enabled.
	PublishBlocks bool
}

// DefaultSteps is enough for a few blocks per iteration.
const DefaultSteps = 128

var defaultConfig = Config{
	Device:   "spi://SPI0.0",
	Steps:    DefaultSteps,
	BusURL:   "log:",
	Channels: telemetry.DefaultChannels,
}

func init() {
	if val := os.Getenv("PIXY_DEVICE"); val != "" {
		defaultConfig.Device = val
	}
	if val := os.Getenv("PIXY_BUS"); val != "" {
		defaultConfig.BusURL = val
	}
}

type channelValue struct {
	p *uint32
}

func (v channelValue) String() string {
	if v.p == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v.p), 10)
}

func (v channelValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return err
	}
	*v.p = uint32(n)
	return nil
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "pixy", defaultConfig.Device, "Pixy transport URL, e.g. spi://SPI0.0?hz=1000000, bridge:///dev/ttyUSB0, sim://?targets=2")
	flag.IntVar(&defaultConfig.Steps, "pixy-steps", defaultConfig.Steps, "Decoder steps per loop iteration.")
	flag.StringVar(&defaultConfig.BusURL, "bus", defaultConfig.BusURL, "Telemetry bus URL, e.g. log:, mqtt://host:1883/robo/, slcan:///dev/ttyACM0, can://can0")
	flag.Var(channelValue{&defaultConfig.Channels.Status}, "bus-status", "Telemetry channel of status record.")
	flag.Var(channelValue{&defaultConfig.Channels.BlockA}, "bus-block-a", "Telemetry channel of block record A.")
	flag.Var(channelValue{&defaultConfig.Channels.BlockB}, "bus-block-b", "Telemetry channel of block record B.")
	flag.BoolVar(&defaultConfig.PublishBlocks, "publish-blocks", defaultConfig.PublishBlocks, "Send decoded blocks as L1 events.")
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

// NewController opens the sensor and the bus, and creates the controller.
func (c *Config) NewController(e *env.Env) (*Controller, error) {
	link, err := transport.Open(c.Device)
	if err != nil {
		return nil, fmt.Errorf("open pixy %q error: %v", c.Device, err)
	}
	ctl, err := c.NewControllerWithLink(e, link)
	if err != nil {
		link.Close()
		return nil, err
	}
	return ctl, nil
}

// NewControllerWithLink creates the controller on an opened link.
// The link is closed with the controller.
func (c *Config) NewControllerWithLink(e *env.Env, link transport.Link) (*Controller, error) {
	bus, err := telemetry.Open(c.BusURL)
	if err != nil {
		return nil, fmt.Errorf("open bus %q error: %v", c.BusURL, err)
	}
	ctl := NewController(e, pixy.NewCamera(link))
	ctl.Publisher = &telemetry.Publisher{Bus: bus, Channels: c.Channels}
	if lb, ok := bus.(*telemetry.LogBus); ok {
		lb.Channels = c.Channels
	}
	ctl.Steps = c.Steps
	ctl.PublishBlocks = c.PublishBlocks
	ctl.closers = append(ctl.closers, link)
	if closer, ok := bus.(interface{ Close() error }); ok {
		ctl.closers = append(ctl.closers, closer)
	}
	return ctl, nil
}
