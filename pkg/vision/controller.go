package vision

import (
	"io"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l0/pixy"
	"github.com/robotalks/pixy.go/pkg/l1"
	env "github.com/robotalks/pixy.go/pkg/l1/env/controller"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
	"github.com/robotalks/pixy.go/pkg/telemetry"
)

// Controller is the L1 controller of a Pixy sensor. It steps the
// decoder in the loop, republishes blocks and status on the telemetry
// bus, and serves vision commands.
type Controller struct {
	Env           *env.Env
	Camera        *pixy.Camera
	Publisher     *telemetry.Publisher
	Steps         int
	PublishBlocks bool

	closers []io.Closer

	blocks          []pixy.Block
	decoded         uint32
	transportErrors uint32
	lastErr         error

	status        msgs.VisionStatus
	statusChanged bool
}

// NewController creates a Controller.
func NewController(e *env.Env, cam *pixy.Camera) *Controller {
	return &Controller{
		Env:           e,
		Camera:        cam,
		Steps:         defaultConfig.Steps,
		PublishBlocks: defaultConfig.PublishBlocks,
		statusChanged: true,
	}
}

// AddToLoop implements LoopAdder.
func (c *Controller) AddToLoop(loop *fx.Loop) {
	loop.AddController(fx.PrLvSense, fx.NamedControl("pixy", c.Sense))
	loop.AddController(fx.PrLvControl, c)
	loop.AddController(fx.PrLvPostProc, fx.ControlFunc(c.notifyStatusChange))
}

// Close closes the transport and the bus.
func (c *Controller) Close() error {
	var errs fx.AggregatedError
	for _, closer := range c.closers {
		errs.Add(closer.Close())
	}
	c.closers = nil
	return errs.Aggregate()
}

// Sense steps the decoder and publishes what is decoded.
func (c *Controller) Sense(cc fx.ControlContext) error {
	steps := c.Steps
	if steps <= 0 {
		steps = DefaultSteps
	}
	for i := 0; i < steps; i++ {
		if err := c.Camera.Process(); err != nil {
			c.transportErrors++
			if c.lastErr == nil || c.lastErr.Error() != err.Error() {
				glog.Errorf("pixy: %v", err)
			}
			c.lastErr = err
			break
		}
		c.lastErr = nil
	}

	var blocks []pixy.Block
	for {
		b, ok := c.Camera.PopBlock()
		if !ok {
			break
		}
		blocks = append(blocks, b)
		if c.Publisher != nil {
			if err := c.Publisher.PublishBlock(b); err != nil {
				glog.Warningf("publish block error: %v", err)
			}
		}
	}
	st := c.Camera.Status()
	if c.Publisher != nil {
		if err := c.Publisher.PublishStatus(st); err != nil {
			glog.Warningf("publish status error: %v", err)
		}
	}
	c.decoded += uint32(len(blocks))
	c.updateStatus(st)

	if len(blocks) > 0 {
		c.blocks = blocks
		if c.PublishBlocks && c.Env != nil {
			return c.Env.Registrar.SendEvent(cc.Context(), &msgs.VisionBlocks{Blocks: BlockMsgs(blocks)})
		}
	}
	return nil
}

func (c *Controller) updateStatus(st pixy.Status) {
	if c.status.Synced != st.Synced ||
		c.status.SyncErrors != st.SyncErrors ||
		c.status.ChecksumErrors != st.ChecksumErrors ||
		c.status.TransportErrors != c.transportErrors {
		c.statusChanged = true
	}
	c.status = msgs.VisionStatus{
		Synced:               st.Synced,
		SyncErrors:           st.SyncErrors,
		ChecksumErrors:       st.ChecksumErrors,
		MillisSinceLastBlock: uint32(st.Millis()),
		TransportErrors:      c.transportErrors,
		Blocks:               c.decoded,
	}
}

// Control implements Controller.
func (c *Controller) Control(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
		cmd, ok := mctx.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		switch m := cmd.Command.Msg().(type) {
		case *msgs.VisionStatusQuery:
			mctx.MessageTaken()
			status := c.status
			cmd.Command.Done(&msgs.VisionStatusReply{Status: &status})
		case *msgs.VisionBlocksQuery:
			mctx.MessageTaken()
			cmd.Command.Done(&msgs.VisionBlocksReply{Blocks: BlockMsgs(c.blocks)})
		case *msgs.VisionSetLED:
			mctx.MessageTaken()
			if m.R > 0xff || m.G > 0xff || m.B > 0xff {
				cmd.Command.Done(msgs.NewCommandErr(msgs.ErrInvalidArgument))
				return
			}
			cmd.Command.Done(sendResult(c.Camera.SetLED(uint8(m.R), uint8(m.G), uint8(m.B))))
		case *msgs.VisionSetBrightness:
			mctx.MessageTaken()
			if m.Value > 0xff {
				cmd.Command.Done(msgs.NewCommandErr(msgs.ErrInvalidArgument))
				return
			}
			cmd.Command.Done(sendResult(c.Camera.SetBrightness(uint8(m.Value))))
		}
	}))
	return nil
}

func sendResult(queued bool) fx.Message {
	if queued {
		return msgs.NewCommandOK()
	}
	return msgs.NewCommandErr(msgs.ErrCommandBusy)
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

// Blocks returns the blocks drained in the latest iteration which had any.
func (c *Controller) Blocks() []pixy.Block {
	return c.blocks
}

// BlockMsg converts a block to its message form.
func BlockMsg(b pixy.Block) *msgs.VisionBlock {
	return &msgs.VisionBlock{
		Signature:  uint32(b.Signature),
		X:          uint32(b.X),
		Y:          uint32(b.Y),
		Width:      uint32(b.Width),
		Height:     uint32(b.Height),
		Angle:      int32(b.Angle),
		Area:       b.Area,
		ColorCoded: b.ColorCoded,
	}
}

// BlockMsgs converts blocks to messages.
func BlockMsgs(blocks []pixy.Block) []*msgs.VisionBlock {
	out := make([]*msgs.VisionBlock, len(blocks))
	for i, b := range blocks {
		out[i] = BlockMsg(b)
	}
	return out
}
