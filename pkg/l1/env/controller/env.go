package controller

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
	"github.com/robotalks/pixy.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/pixy.go/pkg/l1/comm/stream"
	"github.com/robotalks/pixy.go/pkg/l1/comm/websocket"
	"github.com/robotalks/pixy.go/pkg/l1/env"
)

// Config provides common options to setup an env for L1 controllers.
type Config struct {
	Info l1.ControllerInfo

	// MQTTBrokerURL specifies the MQTT broker to use.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string
	// TCPAddr is the listen address serving L1 over TCP, disabled if empty.
	TCPAddr string
	// WSAddr is the listen address serving L1 over websocket, disabled if empty.
	WSAddr string
}

var defaultConfig = Config{
	MQTTBrokerURL: "mqtt://localhost:1883/robo/",
}

func init() {
	if val, ok := os.LookupEnv("ROBO_MQTT_URL"); ok {
		defaultConfig.MQTTBrokerURL = val
	}
	defaultConfig.TCPAddr = os.Getenv("ROBO_TCP_ADDR")
	defaultConfig.WSAddr = os.Getenv("ROBO_WS_ADDR")
	if val := os.Getenv("ROBO_SELF_ID"); val != "" {
		defaultConfig.Info.Ref.ID = val
	} else {
		defaultConfig.Info.Ref.ID = env.MachineID()
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Info.Ref.Type, "type", defaultConfig.Info.Ref.Type, "Controller type")
	flag.StringVar(&defaultConfig.Info.Ref.ID, "id", defaultConfig.Info.Ref.ID, "Controller ID")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL, empty to disable")
	flag.StringVar(&defaultConfig.TCPAddr, "tcp", defaultConfig.TCPAddr, "Listen address for L1 over TCP")
	flag.StringVar(&defaultConfig.WSAddr, "ws", defaultConfig.WSAddr, "Listen address for L1 over websocket")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// SetControllerType should be called in init with basic info about the controller.
func SetControllerType(typ string, meta l1.ControllerMeta) {
	defaultConfig.Info.Ref.Type = typ
	defaultConfig.Info.Meta = meta
}

// Env is the env for L1 controllers.
type Env struct {
	Config       *Config
	RegistryURLs []string
	Registrar    *comm.RegistrarMux
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewEnv creates Env from config.
func (c *Config) NewEnv() (*Env, error) {
	if !c.Info.Ref.IsValid() {
		return nil, fmt.Errorf("robot type and id must be specified")
	}
	env := &Env{
		Config:    c,
		Registrar: &comm.RegistrarMux{},
	}
	if c.MQTTBrokerURL != "" {
		reg, err := mqtt.NewRegistrar(c.MQTTBrokerURL, c.Info)
		if err != nil {
			return nil, fmt.Errorf("create MQTT registrar error: %v", err)
		}
		env.Registrar.Add(reg)
		env.RegistryURLs = append(env.RegistryURLs, c.MQTTBrokerURL)
	}
	if c.TCPAddr != "" {
		env.Registrar.Add(stream.NewServer(c.TCPAddr))
		env.RegistryURLs = append(env.RegistryURLs, "tcp://"+c.TCPAddr)
	}
	if c.WSAddr != "" {
		env.Registrar.Add(websocket.NewServer(c.WSAddr))
		env.RegistryURLs = append(env.RegistryURLs, "ws://"+c.WSAddr+websocket.DefaultPath)
	}
	if len(env.Registrar.Registrars) == 0 {
		return nil, fmt.Errorf("at least one registrar is required")
	}
	return env, nil
}

// MustNewEnv creates Env and fails on error.
func (c *Config) MustNewEnv() *Env {
	env, err := c.NewEnv()
	if err != nil {
		glog.Fatal(err)
	}
	return env
}

// AddToLoop adds controllers/runners to loop.
func (e *Env) AddToLoop(loop *fx.Loop) {
	loop.Add(e.Registrar)
	loop.Add(&comm.UnsupportedCommands{})
	for _, u := range e.RegistryURLs {
		glog.Infof("registered %s at %s", e.Config.Info.Ref.Name(), u)
	}
}

// NewLocalEnv creates an Env without any network registrar, for
// controllers driven in-process through comm.LocalConn.
func (c *Config) NewLocalEnv() *Env {
	return &Env{Config: c, Registrar: &comm.RegistrarMux{}}
}
