package pixy

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testWire struct {
	in  []byte
	out []byte
	err error
}

func (w *testWire) Exchange(out byte) (byte, error) {
	if len(w.in) == 0 {
		if w.err != nil {
			return 0, w.err
		}
		// idle line
		w.out = append(w.out, out)
		return 0, nil
	}
	w.out = append(w.out, out)
	b := w.in[0]
	w.in = w.in[1:]
	return b, nil
}

type streamBuilder struct {
	data []byte
}

func stream() *streamBuilder {
	return &streamBuilder{}
}

func (b *streamBuilder) bytes(data ...byte) *streamBuilder {
	b.data = append(b.data, data...)
	return b
}

func (b *streamBuilder) words(words ...uint16) *streamBuilder {
	for _, w := range words {
		b.data = append(b.data, byte(w>>8), byte(w))
	}
	return b
}

func (b *streamBuilder) block(blk Block) *streamBuilder {
	return b.blockWithChecksum(blk, blk.Checksum())
}

func (b *streamBuilder) blockWithChecksum(blk Block, checksum uint16) *streamBuilder {
	second := StartWord
	if blk.ColorCoded {
		second = StartWordCC
	}
	b.words(StartWord, second, checksum, blk.Signature, blk.X, blk.Y, blk.Width, blk.Height)
	if blk.ColorCoded {
		b.words(uint16(blk.Angle))
	}
	return b
}

func (b *streamBuilder) wire() *testWire {
	return &testWire{in: b.data, err: io.EOF}
}

func processN(t *testing.T, c *Camera, n int) {
	for i := 0; i < n; i++ {
		require.NoErrorf(t, c.Process(), "process step %d", i)
	}
}

func popAll(c *Camera) (blocks []Block) {
	for {
		b, ok := c.PopBlock()
		if !ok {
			return
		}
		blocks = append(blocks, b)
	}
}

func TestCameraChecksumMismatch(t *testing.T) {
	c := NewCamera(stream().words(StartWord, StartWord, 10, 1, 2, 3, 2, 5).wire())
	processN(t, c, 3)
	st := c.Status()
	require.EqualValues(t, 1, st.ChecksumErrors)
	require.EqualValues(t, 0, st.SyncErrors)
	require.Equal(t, 0, c.BlockCount())
	require.Equal(t, seekFirstMarker, c.state)
}

func TestCameraDecodeBlock(t *testing.T) {
	c := NewCamera(stream().words(StartWord, StartWord, 13, 1, 2, 3, 2, 5).wire())
	processN(t, c, 3)
	require.Equal(t, 1, c.BlockCount())
	b, ok := c.PopBlock()
	require.True(t, ok)
	require.Equal(t, Block{Signature: 1, X: 2, Y: 3, Width: 2, Height: 5, Area: 10}, b)
	st := c.Status()
	require.True(t, st.Synced)
	require.EqualValues(t, 0, st.ChecksumErrors)
	require.EqualValues(t, 0, st.SyncErrors)
	_, ok = c.PopBlock()
	require.False(t, ok)
}

func TestCameraDecodeColorCoded(t *testing.T) {
	blk := Block{Signature: 012, X: 160, Y: 100, Width: 40, Height: 30, Angle: -90, ColorCoded: true}
	c := NewCamera(stream().block(blk).wire())
	processN(t, c, 3)
	b, ok := c.PopBlock()
	require.True(t, ok)
	blk.Area = 1200
	require.Equal(t, blk, b)
}

func TestCameraChecksumWraps(t *testing.T) {
	blk := Block{Signature: 0xffff, X: 0xffff, Y: 3, Width: 0x8000, Height: 0x8000}
	c := NewCamera(stream().block(blk).wire())
	processN(t, c, 3)
	b, ok := c.PopBlock()
	require.True(t, ok)
	require.EqualValues(t, uint32(0x8000)*0x8000, b.Area)
}

func TestCameraCorruptedField(t *testing.T) {
	blk := Block{Signature: 3, X: 100, Y: 50, Width: 20, Height: 10, Angle: 45, ColorCoded: true}
	// words after the markers and checksum.
	for field := 0; field < 6; field++ {
		s := stream().words(StartWord, StartWordCC, blk.Checksum())
		values := []uint16{blk.Signature, blk.X, blk.Y, blk.Width, blk.Height, uint16(blk.Angle)}
		values[field] ^= 0x0100
		s.words(values...)
		c := NewCamera(s.wire())
		processN(t, c, 3)
		require.EqualValuesf(t, 1, c.Status().ChecksumErrors, "field %d", field)
		require.Equalf(t, 0, c.BlockCount(), "field %d", field)
		require.Equal(t, seekFirstMarker, c.state)
	}
}

func TestCameraIdleWords(t *testing.T) {
	c := NewCamera(stream().words(0, 0, 0).wire())
	processN(t, c, 3)
	st := c.Status()
	require.False(t, st.Synced)
	require.EqualValues(t, 0, st.SyncErrors)

	c = NewCamera(stream().block(Block{Signature: 1, Width: 1, Height: 1}).words(0, 0, 0, 0).wire())
	processN(t, c, 7)
	st = c.Status()
	require.True(t, st.Synced)
	require.EqualValues(t, 0, st.SyncErrors)
	require.Equal(t, 1, c.BlockCount())
}

func TestCameraNoMarkers(t *testing.T) {
	words := []uint16{0x1234, 0xaa54, 0x55ab, 0xffff, 0x0001, 0x5a5a, 0xaa56}
	c := NewCamera(stream().words(words...).wire())
	var last uint32
	for range words {
		require.NoError(t, c.Process())
		st := c.Status()
		require.True(t, st.SyncErrors > last)
		require.False(t, st.Synced)
		last = st.SyncErrors
	}
	require.Equal(t, 0, c.BlockCount())
}

func TestCameraSecondMarkerMismatch(t *testing.T) {
	blk := Block{Signature: 2, X: 10, Y: 20, Width: 3, Height: 4}
	c := NewCamera(stream().words(StartWord, 0x1234).block(blk).wire())
	processN(t, c, 2)
	require.EqualValues(t, 1, c.Status().SyncErrors)
	require.Equal(t, seekFirstMarker, c.state)
	processN(t, c, 3)
	require.Equal(t, 1, c.BlockCount())
	require.True(t, c.Status().Synced)
}

func TestCameraReversedResync(t *testing.T) {
	blk := Block{Signature: 1, X: 2, Y: 3, Width: 4, Height: 5}
	// one byte slipped: the stream starts in the middle of a marker.
	w := stream().bytes(0x55, 0xaa, 0x55).block(blk).wire()
	c := NewCamera(w)
	require.NoError(t, c.Process())
	st := c.Status()
	require.EqualValues(t, 1, st.SyncErrors)
	require.False(t, st.Synced)
	// the realigning byte is an extra exchange transmitting zero.
	require.Equal(t, []byte{SyncByte, 0, 0}, w.out)
	processN(t, c, 3)
	b, ok := c.PopBlock()
	require.True(t, ok)
	blk.Area = 20
	require.Equal(t, blk, b)
	require.True(t, c.Status().Synced)
}

func TestCameraMultipleBlocksInOrder(t *testing.T) {
	s := stream()
	var expected []Block
	for i := 0; i < 40; i++ {
		blk := Block{Signature: uint16(i%7 + 1), X: uint16(i), Y: uint16(2 * i), Width: 2, Height: 3, Area: 6}
		s.block(blk)
		expected = append(expected, blk)
	}
	c := NewCamera(s.wire())
	processN(t, c, 3*40)
	require.Equal(t, 40, c.BlockCount())
	require.Equal(t, expected, popAll(c))
}

func TestCameraTransportError(t *testing.T) {
	failure := errors.New("bus fault")
	w := stream().words(StartWord, StartWord, 13, 1, 2).wire()
	w.err = failure
	c := NewCamera(w)
	processN(t, c, 2)
	err := c.Process()
	require.Error(t, err)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	require.True(t, errors.Is(err, failure))
	require.Equal(t, seekFirstMarker, c.state)
	require.Equal(t, 0, c.BlockCount())
	st := c.Status()
	require.EqualValues(t, 0, st.ChecksumErrors)
	require.EqualValues(t, 0, st.SyncErrors)
}

func TestCameraSinceLastBlock(t *testing.T) {
	now := time.Unix(1000, 0)
	w := stream().words(0).block(Block{Signature: 1, Width: 1, Height: 1}).wire()
	c := NewCamera(w)
	c.Now = func() time.Time { return now }
	c.lastBlock = now

	now = now.Add(300 * time.Millisecond)
	require.NoError(t, c.Process())
	require.EqualValues(t, 300, c.Status().Millis())

	processN(t, c, 3)
	require.EqualValues(t, 0, c.Status().Millis())
	now = now.Add(1500 * time.Millisecond)
	require.EqualValues(t, 1500, c.Status().Millis())
}

func TestCameraSend(t *testing.T) {
	w := &testWire{}
	c := NewCamera(w)
	require.False(t, c.Send(nil))
	require.False(t, c.Send(make([]byte, OutQueueSize+1)))
	require.True(t, c.Send([]byte{1, 2, 3}))
	require.Equal(t, 3, c.Pending())
	require.False(t, c.Send([]byte{4}))

	processN(t, c, 4)
	require.Equal(t, []byte{
		SyncByteData, 1,
		SyncByteData, 2,
		SyncByteData, 3,
		SyncByte, 0,
	}, w.out)
	require.Equal(t, 0, c.Pending())
	require.True(t, c.Send(make([]byte, OutQueueSize)))
}

func TestCameraSendWraps(t *testing.T) {
	w := &testWire{}
	c := NewCamera(w)
	for round := 0; round < 3; round++ {
		data := make([]byte, 40)
		for i := range data {
			data[i] = byte(round*40 + i)
		}
		require.True(t, c.Send(data))
		w.out = nil
		processN(t, c, len(data))
		for i, b := range data {
			require.Equal(t, SyncByteData, w.out[2*i])
			require.Equal(t, b, w.out[2*i+1])
		}
	}
}

func TestCameraCommands(t *testing.T) {
	w := &testWire{}
	c := NewCamera(w)
	require.True(t, c.SetLED(255, 0, 128))
	require.False(t, c.SetBrightness(10))
	processN(t, c, 5)
	require.Equal(t, []byte{
		SyncByteData, 0x00,
		SyncByteData, 0xfd,
		SyncByteData, 255,
		SyncByteData, 0,
		SyncByteData, 128,
	}, w.out)
	require.True(t, c.SetBrightness(10))
}
