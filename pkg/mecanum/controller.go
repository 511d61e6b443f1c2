package mecanum

import (
	"math"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

// Controller is the L1 controller of the mecanum base and the display
// backlight. Motors are stopped if no DriveSet arrives within Timeout.
type Controller struct {
	Env       *env.Env
	Motors    Motors
	Battery   Battery
	Backlight Backlight

	Scales          Scales
	LowBatteryScale float64
	Timeout         time.Duration
	Ramp            Ramp

	input       Input
	lastCommand time.Time
	stopped     bool
	backlight   bool
	lowBattery  bool

	status        msgs.DriveStatus
	statusChanged bool
}

// NewController creates a Controller with log devices.
func NewController(e *env.Env) *Controller {
	return &Controller{
		Env:             e,
		Motors:          &LogMotors{},
		Battery:         &StaticBattery{},
		Backlight:       LogBacklight{},
		Scales:          defaultConfig.Scales,
		LowBatteryScale: defaultConfig.LowBatteryScale,
		Timeout:         defaultConfig.Timeout,
		Ramp:            Ramp{Duration: defaultConfig.Ramp},
		stopped:         true,
		statusChanged:   true,
	}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvAcuate, fx.NamedControl("mecanum", c.Actuate))
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.notifyStatusChange))
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmd, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		switch m := cmd.Command.Msg().(type) {
		case *msgs.DriveSet:
			mctx.MessageTaken()
			in := Input{Forward: float64(m.Forward), Strafe: float64(m.Strafe), Twist: float64(m.Twist)}
			if !validInput(in) {
				cmd.Command.Done(msgs.NewCommandErr(msgs.ErrInvalidArgument))
				return
			}
			c.input, c.lastCommand = in, cc.Time()
			cmd.Command.Done(msgs.NewCommandOK())
		case *msgs.BacklightSet:
			mctx.MessageTaken()
			if err := c.Backlight.SetBacklight(m.On); err != nil {
				cmd.Command.Done(msgs.NewCommandErr(err))
				return
			}
			if c.backlight != m.On {
				c.backlight, c.statusChanged = m.On, true
			}
			cmd.Command.Done(msgs.NewCommandOK())
		case *msgs.DriveStatusQuery:
			mctx.MessageTaken()
			status := c.status
			cmd.Command.Done(&msgs.DriveStatusReply{Status: &status})
		}
	}))
	return nil
}

func validInput(in Input) bool {
	for _, v := range []float64{in.Forward, in.Strafe, in.Twist} {
		if math.IsNaN(v) || v < -1 || v > 1 {
			return false
		}
	}
	return true
}

// Actuate computes and writes motor outputs.
func (c *Controller) Actuate(cc fx.ControlContext) error {
	now := cc.Time()
	stopped := c.Timeout > 0 && (c.lastCommand.IsZero() || now.Sub(c.lastCommand) > c.Timeout)
	if stopped {
		if !c.stopped {
			glog.Warningf("no drive command within %s, motors stopped", c.Timeout)
		}
		c.input = Input{}
		c.Ramp.Reset()
	}
	low := c.Battery != nil && c.Battery.IsLow()
	if low != c.lowBattery {
		glog.Infof("battery low=%v", low)
		c.lowBattery, c.statusChanged = low, true
	}
	if stopped != c.stopped {
		c.stopped, c.statusChanged = stopped, true
	}
	target := Compute(c.Scales.Scale(c.input), low, c.LowBatteryScale)
	out := c.Ramp.Step(target, now)
	c.status = msgs.DriveStatus{
		Outputs: &msgs.WheelOutputs{
			LeftFront:  float32(out.LeftFront),
			LeftRear:   float32(out.LeftRear),
			RightFront: float32(out.RightFront),
			RightRear:  float32(out.RightRear),
		},
		LowBattery: c.lowBattery,
		Backlight:  c.backlight,
		Stopped:    c.stopped,
	}
	if out != target {
		// still ramping.
		cc.TriggerNext()
	}
	return c.Motors.SetOutputs(out)
}

// Outputs returns the last written outputs.
func (c *Controller) Outputs() Outputs {
	return c.Ramp.Current()
}

func (c *Controller) notifyStatusChange(cc fx.ControlContext) error {
	changed := c.statusChanged
	c.statusChanged = false
	if changed && c.Env != nil {
		status := c.status
		return c.Env.Registrar.SendEvent(cc.Context(), &status)
	}
	return nil
}
