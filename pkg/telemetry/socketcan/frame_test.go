package socketcan

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pixy.go/pkg/telemetry"
)

func TestEncodeFrame(t *testing.T) {
	rec := telemetry.Record{1, 2, 3, 4, 5, 6, 7, 8}
	frame := encodeFrame(41, rec)
	require.EqualValues(t, 41, binary.NativeEndian.Uint32(frame[0:]))
	require.EqualValues(t, 8, frame[4])
	require.Equal(t, []byte{0, 0, 0}, frame[5:8])
	require.Equal(t, rec[:], frame[8:])

	frame = encodeFrame(0x1abcdef, rec)
	require.EqualValues(t, 0x1abcdef|effFlag, binary.NativeEndian.Uint32(frame[0:]))
}
