package comm_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/comm"
	"github.com/robotalks/pixy.go/pkg/l1/comm/stream"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

func replyLED(cc fx.ControlContext) error {
	cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
		cmd, ok := mc.CurrentMessage().(*l1.CommandMsg)
		if !ok {
			return
		}
		if led, ok := cmd.Command.Msg().(*msgs.VisionSetLED); ok {
			mc.MessageTaken()
			if led.R > 255 {
				cmd.Command.Done(msgs.NewCommandErr(msgs.ErrInvalidArgument))
				return
			}
			cmd.Command.Done(msgs.NewCommandOK())
		}
	}))
	return nil
}

func TestLocalConn(t *testing.T) {
	loop := fx.NewLoop()
	loop.AddController(fx.PrLvControl, fx.ControlFunc(replyLED))
	loop.Add(&comm.UnsupportedCommands{})
	conn := comm.NewLocalConn(loop)

	ok := conn.DoCommand(&msgs.VisionSetLED{R: 1})
	bad := conn.DoCommand(&msgs.VisionSetLED{R: 256})
	unknown := conn.DoCommand(&msgs.DriveStatusQuery{})
	loop.Step(context.Background())

	res := <-ok.ResultChan()
	require.NoError(t, res.Err)
	assert.IsType(t, &msgs.CommandOK{}, res.Msg)

	res = <-bad.ResultChan()
	require.Error(t, res.Err)
	assert.Equal(t, msgs.ErrInvalidArgument.Error(), res.Err.Error())

	res = <-unknown.ResultChan()
	require.Error(t, res.Err)
}

func TestHubBroadcast(t *testing.T) {
	hub := comm.NewHub()
	loop := fx.NewLoop()
	loop.Add(hub)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var clients []*stream.ReadWriter
	for i := 0; i < 2; i++ {
		server, client := net.Pipe()
		defer client.Close()
		go hub.Serve(ctx, stream.New(server))
		clients = append(clients, stream.New(client))
	}
	require.Eventually(t, func() bool { return hub.Count() == 2 }, time.Second, time.Millisecond)

	sent := make(chan error, 1)
	go func() {
		sent <- hub.SendEvent(ctx, &msgs.VisionStatus{Synced: true, SyncErrors: 3})
	}()
	received := make(chan fx.Message, len(clients))
	for _, client := range clients {
		go func(client *stream.ReadWriter) {
			pkt, err := client.ReadPacket()
			if err != nil {
				received <- nil
				return
			}
			typed, err := msgs.DecodeTyped(pkt)
			if err != nil {
				received <- nil
				return
			}
			msg, _ := typed.Decode()
			received <- msg
		}(client)
	}
	for range clients {
		msg := <-received
		require.IsType(t, &msgs.VisionStatus{}, msg)
		assert.Equal(t, uint32(3), msg.(*msgs.VisionStatus).SyncErrors)
	}
	require.NoError(t, <-sent)

	clients[0].Close()
	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, time.Millisecond)
}

func TestHubCommandReply(t *testing.T) {
	hub := comm.NewHub()
	loop := fx.NewLoop()
	loop.Add(hub)
	loop.AddController(fx.PrLvControl, fx.ControlFunc(replyLED))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, client := net.Pipe()
	defer client.Close()
	go hub.Serve(ctx, stream.New(server))
	rw := stream.New(client)

	typed, err := msgs.TypedFrom(&msgs.VisionSetLED{G: 9})
	require.NoError(t, err)
	typed.Sequence = 42
	pkt, err := typed.Encode()
	require.NoError(t, err)
	require.NoError(t, rw.WritePacket(pkt))

	stepped := make(chan struct{})
	go func() {
		defer close(stepped)
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			loop.Step(ctx)
			time.Sleep(time.Millisecond)
			select {
			case <-ctx.Done():
				return
			default:
			}
		}
	}()

	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	reply, err := msgs.DecodeTyped(pkt)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), reply.Sequence)
	assert.Equal(t, msgs.CommandOKTypeID, reply.TypeID)
	cancel()
	<-stepped
}
