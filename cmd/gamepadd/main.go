package main

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/gamepad"
	"github.com/robotalks/pixy.go/pkg/gamepad/msgs"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
	connenv "github.com/robotalks/pixy.go/pkg/l1/env/connector"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
)

func init() {
	env.SetControllerType("gamepad", l1.ControllerMeta{Description: "Gamepad Controller"})
	env.SetupFlags()
	connenv.SetupFlags()
	gamepad.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	env := env.NewConfig().MustNewEnv()
	ctl := gamepad.NewConfig().NewController(env)
	loop := fx.NewLoop().Add(env, ctl)
	if conf := connenv.Default(); conf.Ref.IsValid() {
		// connected once the loop runs.
		comm.NewLocalConn(loop).DoCommand(&msgs.GamepadConnect{
			RegistryURL: conf.RegistryURL,
			Type:        conf.Ref.Type,
			ID:          conf.Ref.ID,
		})
	}
	loop.RunOrFail()
}
