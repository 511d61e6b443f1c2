package device

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawEvent(value int16, typ, number uint8) (buf [eventSize]byte) {
	binary.NativeEndian.PutUint32(buf[0:4], 1234)
	binary.NativeEndian.PutUint16(buf[4:6], uint16(value))
	buf[6], buf[7] = typ, number
	return
}

func TestDecodeEvent(t *testing.T) {
	ev := decodeEvent(rawEvent(-32767, evAXIS, 1))
	axis, ok := ev.(AxisEvent)
	require.True(t, ok)
	assert.Equal(t, 1, axis.Index())
	assert.Equal(t, -32767, axis.Value())
	assert.False(t, axis.IsInit())

	ev = decodeEvent(rawEvent(1, evBTN|evINIT, 3))
	btn, ok := ev.(ButtonEvent)
	require.True(t, ok)
	assert.True(t, btn.IsInit())
	assert.True(t, btn.Pressed())
	assert.Equal(t, 3, btn.Index())

	ev = decodeEvent(rawEvent(0, 0x10, 0))
	_, isAxis := ev.(AxisEvent)
	_, isBtn := ev.(ButtonEvent)
	assert.False(t, isAxis)
	assert.False(t, isBtn)
}
