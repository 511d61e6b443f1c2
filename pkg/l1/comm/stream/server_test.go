package stream

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pixy.go/pkg/framework"
	"github.com/robotalks/pixy.go/pkg/l1"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
)

func TestReadWriterFraming(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte{1, 2, 3}))
	require.NoError(t, rw.WritePacket(nil))
	assert.Equal(t, []byte{3, 0, 0, 0, 1, 2, 3, 0, 0, 0, 0}, buf.Bytes())

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	assert.Empty(t, pkt)
	_, err = rw.ReadPacket()
	assert.Error(t, err)
}

func TestServerRoundTrip(t *testing.T) {
	server := NewServer("127.0.0.1:0")
	require.NoError(t, server.Listen())

	loop := fx.NewLoop()
	loop.Interval = 10 * time.Millisecond
	loop.Add(server)
	loop.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mc fx.MessageProcessingContext) {
			cmd, ok := mc.CurrentMessage().(*l1.CommandMsg)
			if !ok {
				return
			}
			if _, ok := cmd.Command.Msg().(*msgs.VisionStatusQuery); ok {
				mc.MessageTaken()
				cmd.Command.Done(&msgs.VisionStatusReply{Status: &msgs.VisionStatus{Synced: true, ChecksumErrors: 2}})
			}
		}))
		return nil
	}))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	connector, err := NewConnector("tcp://" + server.ListenAddr().String() + "?type=pixybot")
	require.NoError(t, err)
	assert.Equal(t, "pixybot", connector.Ref.Type)
	infos, err := connector.Discover(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	conn, err := connector.Connect(ctx, connector.Ref)
	require.NoError(t, err)
	client := fx.NewLoop()
	client.Interval = 10 * time.Millisecond
	client.Add(conn.(*ControllerConn))
	go client.Run(ctx)

	f := conn.DoCommand(&msgs.VisionStatusQuery{})
	select {
	case res := <-f.ResultChan():
		require.NoError(t, res.Err)
		reply, ok := res.Msg.(*msgs.VisionStatusReply)
		require.True(t, ok)
		assert.True(t, reply.Status.Synced)
		assert.Equal(t, uint32(2), reply.Status.ChecksumErrors)
	case <-time.After(3 * time.Second):
		t.Fatal("no reply")
	}
}
