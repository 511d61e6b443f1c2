package drive

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/pixy.go/pkg/cli/sh"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

var (
	// DriveSetCmd exposes DriveSet command.
	DriveSetCmd = ishell.Cmd{
		Name:    "drive.set",
		Aliases: []string{"ds"},
		Help:    "FORWARD [STRAFE [TWIST]] (-1 to 1)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("FORWARD required"))
				return
			}
			vals, err := sh.FloatArgs(c, "FORWARD", "STRAFE", "TWIST")
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.DriveSet{Forward: vals[0], Strafe: vals[1], Twist: vals[2]})
		}),
	}

	// DriveStopCmd sends an all zero DriveSet.
	DriveStopCmd = ishell.Cmd{
		Name:    "drive.stop",
		Aliases: []string{"stop"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.DriveSet{})
		}),
	}

	// DriveStatusCmd exposes DriveStatusQuery command.
	DriveStatusCmd = ishell.Cmd{
		Name:    "drive.status",
		Aliases: []string{"dst"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.DriveStatusQuery{})
		}),
	}

	// BacklightCmd exposes BacklightSet command.
	BacklightCmd = ishell.Cmd{
		Name:    "backlight",
		Aliases: []string{"bl"},
		Help:    "on|off",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			var msg msgs.BacklightSet
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("on or off required"))
				return
			}
			switch c.Args[0] {
			case "on":
				msg.On = true
			case "off":
			default:
				c.Err(fmt.Errorf("invalid %q, expect on or off", c.Args[0]))
				return
			}
			sh.DoCommand(c, &msg)
		}),
	}
)

func init() {
	sh.AddCmds(
		&DriveSetCmd,
		&DriveStopCmd,
		&DriveStatusCmd,
		&BacklightCmd,
	)
}
