package comm

import (
	"context"
	"sync"

	"github.com/golang/glog"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

// Hub is a Registrar serving any number of packet connections,
// e.g. accepted TCP or websocket clients.
// Events are broadcast to all connections, and command replies go
// back to the connection which sent the command.
type Hub struct {
	loop  fx.LoopControl
	pipes map[*Pipe]struct{}
	lock  sync.RWMutex
}

// NewHub creates a Hub.
func NewHub() *Hub {
	return &Hub{pipes: make(map[*Pipe]struct{})}
}

// AddToLoop implements LoopAdder.
func (h *Hub) AddToLoop(loop *fx.Loop) {
	h.lock.Lock()
	h.loop = loop
	h.lock.Unlock()
}

// Serve handles one connection until it fails or ctx is canceled.
func (h *Hub) Serve(ctx context.Context, rw PacketReadWriter) error {
	pipe := NewPipe(rw)
	pipe.Handler = msgs.HandleTypedMsgFunc(func(_ context.Context, msg fx.Message, typed *msgs.Typed) error {
		h.lock.RLock()
		loop := h.loop
		h.lock.RUnlock()
		if loop == nil {
			glog.Warning("hub not attached to a loop, message dropped")
			return nil
		}
		postTyped(loop, pipe, msg, typed)
		return nil
	})
	h.lock.Lock()
	h.pipes[pipe] = struct{}{}
	h.lock.Unlock()
	defer func() {
		h.lock.Lock()
		delete(h.pipes, pipe)
		h.lock.Unlock()
	}()
	return fx.RunWithContextCancel(ctx, func() { pipe.Close() }, func() error {
		return pipe.Run(ctx)
	})
}

// Count returns the number of active connections.
func (h *Hub) Count() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.pipes)
}

// SendEvent implements Registrar.
func (h *Hub) SendEvent(ctx context.Context, msg fx.Message) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	h.lock.RLock()
	pipes := make([]*Pipe, 0, len(h.pipes))
	for pipe := range h.pipes {
		pipes = append(pipes, pipe)
	}
	h.lock.RUnlock()
	var errs fx.AggregatedError
	for _, pipe := range pipes {
		errs.Add(pipe.SendTyped(typed))
	}
	return errs.Aggregate()
}
