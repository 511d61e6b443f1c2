package gamepad

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/pixy.go/pkg/cli/sh"
	"github.com/robotalks/pixy.go/pkg/gamepad/msgs"
	"github.com/robotalks/pixy.go/pkg/l1"
)

var (
	// GamepadStatusCmd exposes GamepadStatusQuery command.
	GamepadStatusCmd = ishell.Cmd{
		Name:    "gamepad.status",
		Aliases: []string{"gps"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.GamepadStatusQuery{})
		}),
	}

	// GamepadConnectCmd exposes GamepadConnect command.
	GamepadConnectCmd = ishell.Cmd{
		Name:    "gamepad.connect",
		Aliases: []string{"gpc"},
		Help:    "TYPE ID [REGISTRY_URL]",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			var msg msgs.GamepadConnect
			if len(c.Args) >= 2 {
				msg.Type, msg.ID = c.Args[0], c.Args[1]
				if len(c.Args) > 2 {
					msg.RegistryURL = c.Args[2]
				}
			} else {
				var filter func(l1.ControllerInfo) bool
				if len(c.Args) == 1 {
					filter = func(info l1.ControllerInfo) bool {
						return info.Ref.Type == c.Args[0]
					}
				}
				_, info, err := sh.ShellFrom(c).SelectController(filter)
				if err != nil {
					c.Err(err)
					return
				}
				if info == nil {
					c.Err(fmt.Errorf("no controller discovered"))
					return
				}
				msg.Type, msg.ID = info.Ref.Type, info.Ref.ID
			}
			sh.DoCommand(c, &msg)
		}),
	}

	// GamepadDisconnectCmd sends an empty GamepadConnect.
	GamepadDisconnectCmd = ishell.Cmd{
		Name:    "gamepad.disconnect",
		Aliases: []string{"gpd"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.GamepadConnect{})
		}),
	}
)

func init() {
	sh.AddCmds(
		&GamepadStatusCmd,
		&GamepadConnectCmd,
		&GamepadDisconnectCmd,
	)
}
