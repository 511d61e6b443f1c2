package mecanum

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

type memMotors struct {
	outputs []Outputs
}

func (m *memMotors) SetOutputs(out Outputs) error {
	m.outputs = append(m.outputs, out)
	return nil
}

func (m *memMotors) last() Outputs {
	return m.outputs[len(m.outputs)-1]
}

type memBacklight struct {
	on  bool
	err error
}

func (b *memBacklight) SetBacklight(on bool) error {
	if b.err != nil {
		return b.err
	}
	b.on = on
	return nil
}

type memRegistrar struct {
	events []fx.Message
}

func (r *memRegistrar) SendEvent(ctx context.Context, msg fx.Message) error {
	r.events = append(r.events, msg)
	return nil
}

type fixture struct {
	now       time.Time
	loop      *fx.Loop
	ctl       *Controller
	motors    *memMotors
	battery   *StaticBattery
	backlight *memBacklight
	reg       *memRegistrar
	conn      *comm.LocalConn
}

func newFixture() *fixture {
	f := &fixture{
		now:       time.Unix(1000, 0),
		motors:    &memMotors{},
		battery:   &StaticBattery{},
		backlight: &memBacklight{},
		reg:       &memRegistrar{},
	}
	e := env.NewConfig().NewLocalEnv()
	e.Registrar.Add(f.reg)
	conf := NewConfig()
	conf.Ramp = 0
	f.ctl = conf.NewController(e)
	f.ctl.Motors, f.ctl.Battery, f.ctl.Backlight = f.motors, f.battery, f.backlight
	f.loop = fx.NewLoop()
	f.loop.Clock = func() time.Time { return f.now }
	f.loop.Add(f.ctl, e)
	f.conn = comm.NewLocalConn(f.loop)
	return f
}

func (f *fixture) step(d time.Duration) {
	f.now = f.now.Add(d)
	f.loop.Step(context.Background())
}

func (f *fixture) do(t *testing.T, msg fx.Message) fx.Message {
	future := f.conn.DoCommand(msg)
	f.step(10 * time.Millisecond)
	res := <-future.ResultChan()
	require.NoError(t, res.Err)
	return res.Msg
}

func TestDriveAndWatchdog(t *testing.T) {
	f := newFixture()
	f.step(0)
	assert.True(t, f.motors.last().IsZero())

	f.do(t, &msgs.DriveSet{Forward: 1})
	assert.Equal(t, Outputs{-0.5, -0.5, 0.5, 0.5}, f.motors.last())
	assert.False(t, f.ctl.status.Stopped)

	f.step(400 * time.Millisecond)
	assert.False(t, f.motors.last().IsZero())
	f.step(200 * time.Millisecond)
	assert.True(t, f.motors.last().IsZero())
	assert.True(t, f.ctl.status.Stopped)
}

func TestLowBattery(t *testing.T) {
	f := newFixture()
	f.battery.SetLow(true)
	f.do(t, &msgs.DriveSet{Strafe: 1})
	assert.Equal(t, Outputs{-0.25, 0.25, -0.25, 0.25}, f.motors.last())

	reply := f.do(t, &msgs.DriveStatusQuery{}).(*msgs.DriveStatusReply)
	assert.True(t, reply.Status.LowBattery)
	assert.InDelta(t, 0.25, reply.Status.Outputs.RightRear, 1e-6)

	var low bool
	for _, ev := range f.reg.events {
		if st, ok := ev.(*msgs.DriveStatus); ok && st.LowBattery {
			low = true
		}
	}
	assert.True(t, low)
}

func TestInvalidDrive(t *testing.T) {
	f := newFixture()
	future := f.conn.DoCommand(&msgs.DriveSet{Forward: 2})
	f.step(time.Millisecond)
	res := <-future.ResultChan()
	require.Error(t, res.Err)
	assert.True(t, f.motors.last().IsZero())
}

func TestBacklight(t *testing.T) {
	f := newFixture()
	f.do(t, &msgs.BacklightSet{On: true})
	assert.True(t, f.backlight.on)
	assert.True(t, f.ctl.status.Backlight)
	f.do(t, &msgs.BacklightSet{On: false})
	assert.False(t, f.backlight.on)

	f.backlight.err = errors.New("no display")
	future := f.conn.DoCommand(&msgs.BacklightSet{On: true})
	f.step(time.Millisecond)
	res := <-future.ResultChan()
	assert.Error(t, res.Err)
}

func TestRampedDrive(t *testing.T) {
	f := newFixture()
	f.ctl.Ramp = Ramp{Duration: 100 * time.Millisecond}
	f.do(t, &msgs.DriveSet{Forward: 1})
	f.step(50 * time.Millisecond)
	assert.InDelta(t, 0.5, f.motors.last().RightFront, 1e-9)
	f.step(50 * time.Millisecond)
	assert.InDelta(t, 0.5, f.motors.last().RightFront, 1e-9)
}
