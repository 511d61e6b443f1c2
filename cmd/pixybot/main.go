package main

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/vision"

	_ "github.com/robotalks/pixy.go/pkg/l0/transport/bridge"
	_ "github.com/robotalks/pixy.go/pkg/l0/transport/spi"
	_ "github.com/robotalks/pixy.go/pkg/sim/pixy"
	_ "github.com/robotalks/pixy.go/pkg/telemetry/mqttbus"
	_ "github.com/robotalks/pixy.go/pkg/telemetry/slcan"
	_ "github.com/robotalks/pixy.go/pkg/telemetry/socketcan"
)

func init() {
	env.SetControllerType("pixybot", l1.ControllerMeta{Description: "Pixy vision sensor"})
	env.SetupFlags()
	vision.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	env := env.NewConfig().MustNewEnv()
	ctl, err := vision.NewConfig().NewController(env)
	if err != nil {
		glog.Fatal(err)
	}
	defer ctl.Close()
	fx.NewLoop().Add(env, ctl).RunOrFail()
}
