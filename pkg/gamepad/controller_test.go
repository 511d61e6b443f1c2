package gamepad

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/gamepad/device"
	"github.com/robotalks/pixy.go/pkg/gamepad/msgs"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	l1msgs "github.com/robotalks/pixy.go/pkg/l1/msgs"
)

type recordConn struct {
	lock sync.Mutex
	sent []fx.Message
}

func (c *recordConn) DoCommand(msg fx.Message) l1.CommandFuture {
	c.lock.Lock()
	c.sent = append(c.sent, msg)
	c.lock.Unlock()
	result := make(chan l1.Result, 1)
	result <- l1.Result{Msg: l1msgs.NewCommandOK()}
	close(result)
	return okFuture(result)
}

type okFuture <-chan l1.Result

func (f okFuture) ResultChan() <-chan l1.Result { return f }

func (c *recordConn) messages() []fx.Message {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]fx.Message(nil), c.sent...)
}

func (c *recordConn) reset() {
	c.lock.Lock()
	c.sent = nil
	c.lock.Unlock()
}

type memRegistrar struct {
	events []fx.Message
}

func (r *memRegistrar) SendEvent(ctx context.Context, msg fx.Message) error {
	r.events = append(r.events, msg)
	return nil
}

type fakeDevice struct {
	events chan device.Event
	closed chan struct{}
	once   sync.Once
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{events: make(chan device.Event, 8), closed: make(chan struct{})}
}

func (d *fakeDevice) Close() error {
	d.once.Do(func() { close(d.closed) })
	return nil
}

func (d *fakeDevice) Index() int       { return 0 }
func (d *fakeDevice) Name() string     { return "fake pad" }
func (d *fakeDevice) AxisCount() int   { return 4 }
func (d *fakeDevice) ButtonCount() int { return 8 }

func (d *fakeDevice) ReadEvent() (device.Event, error) {
	select {
	case ev, ok := <-d.events:
		if !ok {
			return nil, io.EOF
		}
		return ev, nil
	case <-d.closed:
		return nil, io.EOF
	}
}

type fixture struct {
	now   time.Time
	loop  *fx.Loop
	ctl   *Controller
	local *recordConn
	reg   *memRegistrar
}

func newFixture() *fixture {
	f := &fixture{
		now:   time.Unix(1000, 0),
		local: &recordConn{},
		reg:   &memRegistrar{},
	}
	e := env.NewConfig().NewLocalEnv()
	e.Registrar.Add(f.reg)
	f.ctl = NewConfig().NewController(e)
	f.ctl.Local = f.local
	f.loop = fx.NewLoop()
	f.loop.Clock = func() time.Time { return f.now }
	f.loop.Add(e)
	f.loop.AddController(fx.PrLvControl, f.ctl)
	f.loop.AddController(fx.PrLvPostProc, fx.ControlFunc(f.ctl.notifyStatusChange))
	return f
}

func (f *fixture) step(d time.Duration) {
	f.now = f.now.Add(d)
	f.loop.Step(context.Background())
}

func (f *fixture) attach() {
	f.loop.PostMessage(&statusMsg{device: &msgs.GamepadDevice{Name: "fake pad"}})
	f.step(0)
	f.local.reset()
}

func TestEventsDriveLocal(t *testing.T) {
	f := newFixture()
	f.attach()
	f.loop.PostMessage(&eventMsg{event: device.NewAxisEvent(1, -device.AxisMax)})
	f.loop.PostMessage(&eventMsg{event: device.NewButtonEvent(2, true)})
	f.step(10 * time.Millisecond)
	assert.Equal(t, []fx.Message{
		&l1msgs.DriveSet{Forward: 1},
		&l1msgs.BacklightSet{On: false},
	}, f.local.messages())
}

func TestHeartbeat(t *testing.T) {
	f := newFixture()
	f.step(time.Second)
	assert.Empty(t, f.local.messages(), "no device")

	f.loop.PostMessage(&statusMsg{device: &msgs.GamepadDevice{}})
	f.step(0)
	require.Len(t, f.local.messages(), 1)
	f.step(50 * time.Millisecond)
	assert.Len(t, f.local.messages(), 1)
	f.step(50 * time.Millisecond)
	assert.Len(t, f.local.messages(), 2)
}

func TestDeviceLostStops(t *testing.T) {
	f := newFixture()
	f.attach()
	f.loop.PostMessage(&eventMsg{event: device.NewAxisEvent(0, device.AxisMax)})
	f.step(0)
	f.loop.PostMessage(&statusMsg{lost: true})
	f.step(0)
	sent := f.local.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, &l1msgs.DriveSet{}, sent[1])
	assert.Nil(t, f.ctl.status.Device)

	f.step(time.Second)
	assert.Len(t, f.local.messages(), 2, "no heartbeat without device")
}

func TestStatusQueryAndEvent(t *testing.T) {
	f := newFixture()
	f.attach()
	future := comm.NewLocalConn(f.loop).DoCommand(&msgs.GamepadStatusQuery{})
	f.step(0)
	res := <-future.ResultChan()
	require.NoError(t, res.Err)
	status := res.Msg.(*msgs.GamepadStatusReply).Status
	assert.Equal(t, "fake pad", status.Device.Name)
	assert.Nil(t, status.Connection)

	require.NotEmpty(t, f.reg.events)
	last := f.reg.events[len(f.reg.events)-1].(*msgs.GamepadStatus)
	assert.True(t, last.Local)
	assert.Equal(t, "fake pad", last.Device.Name)
}

func TestConnectInvalid(t *testing.T) {
	f := newFixture()
	conn := comm.NewLocalConn(f.loop)

	future := conn.DoCommand(&msgs.GamepadConnect{Type: "mecanum"})
	f.step(0)
	res := <-future.ResultChan()
	assert.Error(t, res.Err)

	future = conn.DoCommand(&msgs.GamepadConnect{})
	f.step(0)
	res = <-future.ResultChan()
	assert.NoError(t, res.Err)
	assert.Nil(t, f.ctl.conn)
}

func TestRunPollsDevice(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture()
	dev := newFakeDevice()
	opened := make(chan struct{})
	f.ctl.Open = func(index int) (device.Device, error) {
		select {
		case <-opened:
			return nil, errors.New("gone")
		default:
			close(opened)
			return dev, nil
		}
	}
	f.ctl.Heartbeat = 0
	loop := fx.NewLoop()
	loop.Interval = time.Hour
	loop.Add(f.ctl.Env, f.ctl)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	dev.events <- device.NewButtonEvent(3, true)
	assert.Eventually(t, func() bool {
		for _, msg := range f.local.messages() {
			if bl, ok := msg.(*l1msgs.BacklightSet); ok && bl.On {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)

	close(dev.events)
	assert.Eventually(t, func() bool {
		sent := f.local.messages()
		return len(sent) > 1 && assert.ObjectsAreEqual(&l1msgs.DriveSet{}, sent[len(sent)-1])
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.Equal(t, context.Canceled, <-done)
}

func TestPollDeviceStopsWhenCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture()
	dev := newFakeDevice()
	dev.events <- device.NewButtonEvent(0, true)
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan device.Event)
	done := make(chan struct{})
	go func() {
		f.ctl.pollDevice(ctx, dev, ch)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller blocked after cancel")
	}
	_, ok := <-ch
	assert.False(t, ok)
}
