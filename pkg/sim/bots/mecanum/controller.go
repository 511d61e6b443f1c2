package mecanum

import (
	fx "github.com/robotalks/pixy.go/pkg/framework"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/sim"
	"github.com/robotalks/pixy.go/pkg/sim/physics/holonomic"
	simpixy "github.com/robotalks/pixy.go/pkg/sim/pixy"
)

// Controller simulates the body of a mecanum robot carrying a Pixy
// sensor. Body moves the robot from wheel outputs and Camera feeds
// the targets in view to Sensor.
type Controller struct {
	Env *env.Env

	Outline sim.Rect
	Pose    sim.Pose2D
	Body    *holonomic.Body
	Camera  Camera
	Sensor  *simpixy.Sensor
	Targets []*Target

	sim.ObjectsChangeCaster

	changes int
}

// NewController creates the controller.
func NewController(e *env.Env) *Controller {
	c := &Controller{
		Env:     e,
		Sensor:  simpixy.NewSensor(),
		changes: 1, // send initial object change.
	}
	c.Body = holonomic.New(c, holonomic.Caps{})
	return c
}

// Name implements Named.
func (c *Controller) Name() string {
	return c.Env.Config.Info.Ref.Name()
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(l *fx.Loop) {
	l.Add(c.Body)
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.NotifyChanges))
}

// OutlineRect implements Rectangular.
func (c *Controller) OutlineRect() sim.Rect {
	return c.Outline
}

// Position2D implements Placeable2D.
func (c *Controller) Position2D() sim.Pose2D {
	return c.Pose
}

// SetPose2D implements Placeable2D.
func (c *Controller) SetPose2D(pose sim.Pose2D) sim.Pose2D {
	c.Pose = pose
	c.changes = 1
	return c.Pose
}

// NotifyChanges updates the sensor view and notifies object changes.
func (c *Controller) NotifyChanges(cc fx.ControlContext) error {
	changes := c.changes
	c.changes = 0
	if changes > 0 {
		c.Sensor.SetTargets(c.Camera.Project(c.Pose, c.Targets)...)
		objs := []sim.Object{c}
		for _, t := range c.Targets {
			objs = append(objs, t)
		}
		c.ObjectsChanged(cc, objs...)
	}
	return nil
}
