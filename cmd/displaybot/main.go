package main

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/gamepad"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/mecanum"
	"github.com/robotalks/pixy.go/pkg/mecanum/periph"
)

func init() {
	env.SetControllerType("displaybot", l1.ControllerMeta{Description: "Mecanum display bot driven by gamepad"})
	env.SetupFlags()
	mecanum.SetupFlags()
	gamepad.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	env := env.NewConfig().MustNewEnv()
	conf := mecanum.Default()
	drive := conf.NewController(env)
	if err := periph.Attach(drive, conf); err != nil {
		glog.Fatal(err)
	}

	loop := fx.NewLoop()
	pad := gamepad.NewConfig().NewController(env)
	pad.Local = comm.NewLocalConn(loop)
	loop.Add(env, drive, pad).RunOrFail()
}
