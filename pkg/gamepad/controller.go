package gamepad

import (
	"context"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/gamepad/device"
	"github.com/robotalks/pixy.go/pkg/gamepad/msgs"
	"github.com/robotalks/pixy.go/pkg/l1"
	connenv "github.com/robotalks/pixy.go/pkg/l1/env/connector"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	l1msgs "github.com/robotalks/pixy.go/pkg/l1/msgs"
)

// OpenFunc opens a gamepad device, index < 0 for auto detection.
// It returns a nil Device if nothing is found.
type OpenFunc func(index int) (device.Device, error)

// OpenDevice is the default OpenFunc.
func OpenDevice(index int) (device.Device, error) {
	if index >= 0 {
		return device.Open(index)
	}
	return device.DetectAndOpen(0)
}

// Controller polls a gamepad and drives a mecanum controller, either
// in-process (Local) or connected remotely through GamepadConnect.
type Controller struct {
	Env         *env.Env
	DeviceIndex int
	Verbose     bool
	Mapping     Mapping
	// Heartbeat is the interval to repeat the drive command while a
	// device is present, keeping the drive watchdog fed.
	Heartbeat time.Duration
	// Local is the in-process drive controller, used when not connected.
	Local l1.ControllerConn
	Open  OpenFunc

	conn        *connection
	eventCh     chan device.Event
	device      device.Device
	deviceTimer <-chan time.Time

	state     State
	present   bool
	lastDrive time.Time

	status        msgs.GamepadStatus
	statusChanged bool
}

// NewController creates a Controller.
func NewController(e *env.Env) *Controller {
	return &Controller{
		Env:           e,
		DeviceIndex:   defaultConfig.DeviceIndex,
		Verbose:       defaultConfig.Verbose,
		Mapping:       defaultConfig.Mapping,
		Heartbeat:     defaultConfig.Heartbeat,
		Open:          OpenDevice,
		statusChanged: true,
	}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(c)
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.notifyStatusChange))
}

// Run implements Runnable.
func (c *Controller) Run(ctx context.Context) error {
	defer func() {
		if c.device != nil {
			c.device.Close()
		}
	}()
	loopCtl := fx.LoopCtlFrom(ctx)
	c.deviceTimer = time.After(0)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.deviceTimer:
			c.deviceTimer = nil
			dev, err := c.Open(c.DeviceIndex)
			switch {
			case err != nil:
				glog.V(1).Infof("open gamepad %d error: %v", c.DeviceIndex, err)
			case dev == nil:
				glog.V(1).Info("no gamepad detected")
			}
			if err != nil || dev == nil {
				c.deviceTimer = time.After(time.Second)
				continue
			}
			glog.Infof("gamepad %d %q opened", dev.Index(), dev.Name())
			c.device, c.eventCh = dev, make(chan device.Event, 1)
			go c.pollDevice(ctx, dev, c.eventCh)
			loopCtl.PostMessage(&statusMsg{device: &msgs.GamepadDevice{
				Index:   uint32(dev.Index()),
				Name:    dev.Name(),
				Axes:    uint32(dev.AxisCount()),
				Buttons: uint32(dev.ButtonCount()),
			}})
		case ev, ok := <-c.eventCh:
			if ok {
				loopCtl.PostMessage(&eventMsg{event: ev})
			} else {
				glog.Warning("gamepad lost")
				c.device.Close()
				c.device, c.eventCh = nil, nil
				c.deviceTimer = time.After(time.Second)
				loopCtl.PostMessage(&statusMsg{lost: true})
			}
		}
		loopCtl.TriggerNext()
	}
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		switch msg := mctx.CurrentMessage().(type) {
		case *l1.CommandMsg:
			switch m := msg.Command.Msg().(type) {
			case *msgs.GamepadStatusQuery:
				mctx.MessageTaken()
				status := c.status
				msg.Command.Done(&msgs.GamepadStatusReply{Status: &status})
			case *msgs.GamepadConnect:
				mctx.MessageTaken()
				msg.Command.Done(c.connect(cc, m))
			}
		case *eventMsg:
			mctx.MessageTaken()
			c.handleEvent(cc, msg.event)
		case *statusMsg:
			mctx.MessageTaken()
			c.updateDevice(cc, msg)
		}
	}))
	if c.present && c.Heartbeat > 0 && cc.Time().Sub(c.lastDrive) >= c.Heartbeat {
		c.sendDrive(cc, c.state.Drive(c.Mapping))
	}
	return nil
}

func (c *Controller) handleEvent(cc fx.ControlContext, ev device.Event) {
	drive, backlight := c.state.Apply(c.Mapping, ev)
	if drive != nil {
		c.sendDrive(cc, drive)
	}
	if backlight != nil {
		c.send(backlight)
	}
}

func (c *Controller) updateDevice(cc fx.ControlContext, msg *statusMsg) {
	if msg.lost {
		c.present = false
		c.state.Reset()
		c.status.Device = nil
		c.sendDrive(cc, &l1msgs.DriveSet{})
	} else if msg.device != nil {
		c.present = true
		c.status.Device = msg.device
	}
	c.statusChanged = true
}

func (c *Controller) sendDrive(cc fx.ControlContext, drive *l1msgs.DriveSet) {
	c.lastDrive = cc.Time()
	c.send(drive)
}

func (c *Controller) send(msg fx.Message) {
	target := c.Local
	if c.conn != nil {
		target = c.conn.conn
	}
	if target == nil {
		glog.V(1).Infof("not connected, drop %v", msg)
		return
	}
	target.DoCommand(msg)
}

func (c *Controller) notifyStatusChange(cc fx.ControlContext) error {
	changed := c.statusChanged
	c.statusChanged = false
	if changed {
		c.status.Local = c.conn == nil && c.Local != nil
		status := c.status
		return c.Env.Registrar.SendEvent(cc.Context(), &status)
	}
	return nil
}

func (c *Controller) connect(cc fx.ControlContext, msg *msgs.GamepadConnect) fx.Message {
	if c.conn != nil {
		c.send(&l1msgs.DriveSet{})
		c.conn.close()
		c.conn = nil
		c.status.Connection = nil
		c.statusChanged = true
	}
	if msg.Type == "" && msg.ID == "" {
		// treat as disconnect.
		return l1msgs.NewCommandOK()
	}
	conf := connenv.NewConfig()
	if conf.RegistryURL = msg.RegistryURL; conf.RegistryURL == "" && len(c.Env.RegistryURLs) > 0 {
		conf.RegistryURL = c.Env.RegistryURLs[0]
	}
	if conf.Ref.Type, conf.Ref.ID = msg.Type, msg.ID; !conf.Ref.IsValid() {
		return l1msgs.NewCommandErrFromMsg("controller ref invalid")
	}
	connector, err := conf.NewConnector()
	if err != nil {
		return l1msgs.NewCommandErr(err)
	}
	if c.conn, err = newConnection(cc.Context(), connector, conf.Ref); err != nil {
		return l1msgs.NewCommandErr(err)
	}
	go c.conn.run()
	c.status.Connection = &msgs.GamepadConnect{
		RegistryURL: conf.RegistryURL,
		Type:        conf.Ref.Type,
		ID:          conf.Ref.ID,
	}
	c.statusChanged = true
	return l1msgs.NewCommandOK()
}

func (c *Controller) pollDevice(ctx context.Context, dev device.Device, ch chan<- device.Event) {
	defer close(ch)
	for {
		ev, err := dev.ReadEvent()
		if err != nil {
			glog.Errorf("gamepad read error: %v", err)
			return
		}
		if c.Verbose {
			var prefix string
			if ev.IsInit() {
				prefix = "[INIT] "
			}
			switch evt := ev.(type) {
			case device.AxisEvent:
				glog.Infof(prefix+"axis %d: %d", evt.Index(), evt.Value())
			case device.ButtonEvent:
				glog.Infof(prefix+"button %d: %v", evt.Index(), evt.Pressed())
			}
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return
		}
	}
}

type statusMsg struct {
	device *msgs.GamepadDevice
	lost   bool
}

func (m *statusMsg) NewMessage() fx.Message { return &statusMsg{} }

type eventMsg struct {
	event device.Event
}

func (m *eventMsg) NewMessage() fx.Message { return &eventMsg{} }

// connection runs the loop of a remote controller connection,
// which delivers command results and purges expired commands.
type connection struct {
	ctx    context.Context
	cancel func()
	conn   l1.ControllerConn
	loop   *fx.Loop
}

func newConnection(ctx context.Context, connector l1.Connector, ref l1.ControllerRef) (c *connection, err error) {
	c = &connection{}
	c.ctx, c.cancel = context.WithCancel(ctx)
	if c.conn, err = connector.Connect(c.ctx, ref); err != nil {
		c.cancel()
		return nil, err
	}
	c.loop = fx.NewLoop()
	if adder, ok := c.conn.(fx.LoopAdder); ok {
		c.loop.Add(adder)
	}
	return
}

func (c *connection) run() {
	if err := c.loop.Run(c.ctx); err != nil && c.ctx.Err() == nil {
		glog.Errorf("connection error: %v", err)
	}
}

func (c *connection) close() {
	c.cancel()
}
