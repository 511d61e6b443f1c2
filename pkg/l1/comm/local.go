package comm

import (
	"sync"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

// LocalConn is an in-process l1.ControllerConn. Commands are posted
// directly to the loop running the controller, no serialization involved.
type LocalConn struct {
	Loop fx.LoopControl
}

// NewLocalConn creates a LocalConn posting to loop.
func NewLocalConn(loop fx.LoopControl) *LocalConn {
	return &LocalConn{Loop: loop}
}

// DoCommand implements l1.ControllerConn.
func (c *LocalConn) DoCommand(msg fx.Message) l1.CommandFuture {
	cmd := &localCommand{msg: msg, result: make(chan l1.Result, 1)}
	c.Loop.PostMessage(&l1.CommandMsg{Command: cmd})
	c.Loop.TriggerNext()
	return cmd
}

type localCommand struct {
	msg    fx.Message
	result chan l1.Result
	once   sync.Once
}

func (c *localCommand) Msg() fx.Message {
	return c.msg
}

func (c *localCommand) Done(reply fx.Message) error {
	c.once.Do(func() {
		result := l1.Result{Msg: reply}
		if cmdErr, ok := reply.(*msgs.CommandErr); ok {
			result.Err = cmdErr
		}
		c.result <- result
		close(c.result)
	})
	return nil
}

func (c *localCommand) ResultChan() <-chan l1.Result {
	return c.result
}
