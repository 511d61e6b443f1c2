// Package all imports all shell commands.
package all

import (
	_ "github.com/robotalks/pixy.go/pkg/cli/cmds/drive"
	_ "github.com/robotalks/pixy.go/pkg/cli/cmds/gamepad"
	_ "github.com/robotalks/pixy.go/pkg/cli/cmds/vision"
)
