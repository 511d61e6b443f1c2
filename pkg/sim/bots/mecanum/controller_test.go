package mecanum

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l0/pixy"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
	drive "github.com/robotalks/pixy.go/pkg/mecanum"
	"github.com/robotalks/pixy.go/pkg/sim"
)

func TestCameraProject(t *testing.T) {
	cam := Camera{FOV: sim.AngleFromDegrees(90), Range: 2000}
	targets := []*Target{
		{ID: "ahead", Signature: 1, Size: 100, Pose: sim.Pose2D{Pos2D: sim.Pos2D{X: 1000}}},
		{ID: "behind", Signature: 2, Size: 100, Pose: sim.Pose2D{Pos2D: sim.Pos2D{X: -1000}}},
		{ID: "right", Signature: 3, Size: 100, ColorCoded: true,
			Pose: sim.Pose2D{Pos2D: sim.Pos2D{X: 1000, Y: 500}, Orientation: sim.AngleFromDegrees(30)}},
		{ID: "far", Signature: 4, Size: 100, Pose: sim.Pose2D{Pos2D: sim.Pos2D{X: 3000}}},
		{ID: "outside", Signature: 5, Size: 100, Pose: sim.Pose2D{Pos2D: sim.Pos2D{X: 100, Y: 1000}}},
	}
	visible := cam.Project(sim.Pose2D{}, targets)
	require.Len(t, visible, 2)
	assert.Equal(t, uint16(1), visible[0].Signature)
	assert.Equal(t, uint16(160), visible[0].X)
	assert.Equal(t, uint16(100), visible[0].Y)
	assert.Equal(t, uint16(16), visible[0].Width)
	assert.Equal(t, uint16(3), visible[1].Signature)
	assert.Equal(t, uint16(240), visible[1].X)
	assert.Equal(t, int16(30), visible[1].Angle)

	// turned around, only the one behind is visible.
	visible = cam.Project(sim.Pose2D{Orientation: sim.AngleFromRadians(math.Pi)}, targets)
	require.Len(t, visible, 1)
	assert.Equal(t, uint16(2), visible[0].Signature)
}

func TestRingTargets(t *testing.T) {
	targets := RingTargets(4, 1000, 50)
	require.Len(t, targets, 4)
	assert.InDelta(t, 1000, targets[0].Pose.X, 1e-9)
	assert.InDelta(t, 1000, targets[1].Pose.Y, 1e-9)
	assert.False(t, targets[0].ColorCoded)
	assert.True(t, targets[1].ColorCoded)
	assert.Equal(t, "target/2", targets[2].Name())
}

type listener struct {
	changed int
}

func (l *listener) ObjectsChanged(cc fx.ControlContext, objs ...sim.Object) { l.changed++ }
func (l *listener) ObjectsRemoved(cc fx.ControlContext, objs ...sim.Object) {}

func TestBotDrivesAndSees(t *testing.T) {
	now := time.Unix(1000, 0)
	e := env.NewConfig().NewLocalEnv()
	conf := NewConfig()
	conf.Targets = 1
	conf.SpeedMax = 1000
	bot := conf.NewController(e)
	ln := &listener{}
	bot.SubscribeObjectsChange(ln)

	dconf := drive.NewConfig()
	dconf.Ramp = 0
	dconf.Timeout = 0
	driveCtl := dconf.NewController(e)
	bot.Attach(driveCtl)

	loop := fx.NewLoop()
	loop.Clock = func() time.Time { return now }
	loop.Add(e, driveCtl, bot)
	step := func(d time.Duration) {
		now = now.Add(d)
		loop.Step(context.Background())
	}

	step(0)
	assert.Equal(t, 1, ln.changed)
	targets := bot.Sensor.Targets()
	require.Len(t, targets, 1)
	width := targets[0].Width

	comm.NewLocalConn(loop).DoCommand(&msgs.DriveSet{Forward: 1})
	step(0)
	step(time.Second)
	// forward scale 0.5 of 1000mm/s
	assert.InDelta(t, 500, bot.Pose.X, 1)
	targets = bot.Sensor.Targets()
	require.Len(t, targets, 1)
	assert.Greater(t, targets[0].Width, width)

	cam := pixy.NewCamera(bot.Sensor)
	for i := 0; i < 200 && cam.BlockCount() == 0; i++ {
		require.NoError(t, cam.Process())
	}
	block, ok := cam.PopBlock()
	require.True(t, ok)
	assert.Equal(t, targets[0].Block(), block)
}
