package main

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/mecanum"
	simbot "github.com/robotalks/pixy.go/pkg/sim/bots/mecanum"
	"github.com/robotalks/pixy.go/pkg/sim/visualization/see"
	"github.com/robotalks/pixy.go/pkg/vision"

	_ "github.com/robotalks/pixy.go/pkg/telemetry/mqttbus"
)

var visualize bool

func init() {
	env.SetControllerType("sim-pixybot", l1.ControllerMeta{Description: "Simulation: mecanum bot with Pixy"})
	env.SetupFlags()
	mecanum.SetupFlags()
	vision.SetupFlags()
	simbot.SetupFlags()
	see.SetupFlags()
	flag.BoolVar(&visualize, "see", visualize, "Print visualization for github.com/robotalks/see on stdout.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	env := env.NewConfig().MustNewEnv()
	bot := simbot.NewConfig().NewController(env)
	drive := mecanum.NewConfig().NewController(env)
	bot.Attach(drive)
	camera, err := vision.NewConfig().NewControllerWithLink(env, bot.Sensor)
	if err != nil {
		glog.Fatal(err)
	}
	defer camera.Close()

	loop := fx.NewLoop().Add(env, drive, camera, bot)
	if visualize {
		vis := see.NewConfig().NewAdapter()
		vis.Mapper = bot
		vis.Subscribe(bot)
		loop.Add(vis)
	}
	loop.RunOrFail()
}
