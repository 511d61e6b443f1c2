package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pixy.go/pkg/l0/pixy"
)

func TestEncodeStatus(t *testing.T) {
	rec := EncodeStatus(pixy.Status{
		Synced:         true,
		SyncErrors:     0x10203,
		ChecksumErrors: 0x0405,
		SinceLastBlock: 70000 * time.Millisecond,
	})
	// 70000 = 0x11170, truncated to 0x1170.
	require.Equal(t, Record{0x02, 0x03, 0x04, 0x05, 0x11, 0x70, 1, 0}, rec)
	require.Equal(t, StatusRecord{
		SyncErrors:     0x0203,
		ChecksumErrors: 0x0405,
		Millis:         0x1170,
		Synced:         true,
	}, DecodeStatus(rec))

	rec = EncodeStatus(pixy.Status{})
	require.Equal(t, Record{}, rec)
}

func TestEncodeBlock(t *testing.T) {
	b := pixy.Block{
		Signature:  0x0102,
		X:          319,
		Y:          199,
		Width:      300,
		Height:     250,
		Angle:      -2,
		Area:       75000,
		ColorCoded: true,
	}
	a := EncodeBlockA(b)
	require.Equal(t, Record{0x01, 0x3f, 0x00, 0xc7, 0x01, 0x2c, 0x00, 0xfa}, a)
	require.Equal(t, BlockARecord{X: 319, Y: 199, Width: 300, Height: 250}, DecodeBlockA(a))

	r := EncodeBlockB(b)
	// 75000 = 0x124f8
	require.Equal(t, Record{0x01, 0x02, 0xff, 0xfe, 0x24, 0xf8, 0, 0}, r)
	require.Equal(t, BlockBRecord{Signature: 0x0102, Angle: -2, Area: 0x24f8}, DecodeBlockB(r))
}

func TestRecordFrom(t *testing.T) {
	rec, err := RecordFrom([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	require.Equal(t, Record{1, 2, 3, 4, 5, 6, 7, 8}, rec)
	_, err = RecordFrom([]byte{1})
	require.Error(t, err)
}

type sentRecord struct {
	channel uint32
	rec     Record
}

type memBus struct {
	sent []sentRecord
	err  error
}

func (b *memBus) Send(channel uint32, rec Record) error {
	if b.err != nil {
		return b.err
	}
	b.sent = append(b.sent, sentRecord{channel: channel, rec: rec})
	return nil
}

func TestPublisher(t *testing.T) {
	bus := &memBus{}
	p := NewPublisher(bus)
	p.Channels.BlockB = 100
	b := pixy.Block{Signature: 1, X: 2, Y: 3, Width: 2, Height: 5, Area: 10}
	require.NoError(t, p.PublishBlock(b))
	require.NoError(t, p.PublishStatus(pixy.Status{Synced: true}))
	require.Equal(t, []sentRecord{
		{channel: 9, rec: EncodeBlockA(b)},
		{channel: 100, rec: EncodeBlockB(b)},
		{channel: 41, rec: Record{0, 0, 0, 0, 0, 0, 1, 0}},
	}, bus.sent)

	bus.err = errors.New("bus off")
	require.Error(t, p.PublishBlock(b))
}

func TestChannelsDescribe(t *testing.T) {
	c := DefaultChannels
	b := pixy.Block{Signature: 3, X: 10, Y: 20, Width: 4, Height: 5, Area: 20}
	require.Equal(t, "block x=10 y=20 w=4 h=5", c.Describe(9, EncodeBlockA(b)))
	require.Equal(t, "block sig=3 angle=0 area=20", c.Describe(25, EncodeBlockB(b)))
	require.Contains(t, c.Describe(41, EncodeStatus(pixy.Status{Synced: true})), "synced=true")
	require.Equal(t, "channel 7: 01 02 00 00 00 00 00 00", c.Describe(7, Record{1, 2}))
}

func TestOpen(t *testing.T) {
	bus, err := Open("")
	require.NoError(t, err)
	require.IsType(t, &LogBus{}, bus)
	require.NoError(t, bus.Send(41, Record{}))

	bus, err = Open("log:")
	require.NoError(t, err)
	require.Equal(t, DefaultChannels, bus.(*LogBus).Channels)

	_, err = Open("carrier-pigeon://coop")
	require.Error(t, err)
}
