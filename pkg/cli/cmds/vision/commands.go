package vision

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/pixy.go/pkg/cli/sh"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

var (
	// VisionStatusCmd exposes VisionStatusQuery command.
	VisionStatusCmd = ishell.Cmd{
		Name:    "vision.status",
		Aliases: []string{"vs"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.VisionStatusQuery{})
		}),
	}

	// VisionBlocksCmd exposes VisionBlocksQuery command.
	VisionBlocksCmd = ishell.Cmd{
		Name:    "vision.blocks",
		Aliases: []string{"vb"},
		Help:    "",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			sh.DoCommand(c, &msgs.VisionBlocksQuery{})
		}),
	}

	// VisionSetLEDCmd exposes VisionSetLED command.
	VisionSetLEDCmd = ishell.Cmd{
		Name:    "vision.led",
		Aliases: []string{"vled"},
		Help:    "R G B (0-255)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			vals, err := sh.UintArgs(c, 255, "R", "G", "B")
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.VisionSetLED{R: vals[0], G: vals[1], B: vals[2]})
		}),
	}

	// VisionSetBrightnessCmd exposes VisionSetBrightness command.
	VisionSetBrightnessCmd = ishell.Cmd{
		Name:    "vision.brightness",
		Aliases: []string{"vbr"},
		Help:    "VALUE (0-255)",
		Func: sh.MustBeConnected(func(c *ishell.Context) {
			vals, err := sh.UintArgs(c, 255, "VALUE")
			if err != nil {
				c.Err(err)
				return
			}
			sh.DoCommand(c, &msgs.VisionSetBrightness{Value: vals[0]})
		}),
	}
)

func init() {
	sh.AddCmds(
		&VisionStatusCmd,
		&VisionBlocksCmd,
		&VisionSetLEDCmd,
		&VisionSetBrightnessCmd,
	)
}
