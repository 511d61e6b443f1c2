package slcan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pixy.go/pkg/telemetry"
)

func TestAppendFrame(t *testing.T) {
	rec := telemetry.Record{0x01, 0x3f, 0x00, 0xc7, 0xab, 0x2c, 0x00, 0xfa}
	require.Equal(t, "t0098013F00C7AB2C00FA\r", string(AppendFrame(nil, 9, rec)))
	require.Equal(t, "t7FF80000000000000000\r", string(AppendFrame(nil, 0x7ff, telemetry.Record{})))
	require.Equal(t, "T1234567880000000000000000\r", string(AppendFrame(nil, 0x12345678, telemetry.Record{})))
}

func TestBusSend(t *testing.T) {
	var out bytes.Buffer
	bus := New(&out)
	require.NoError(t, bus.Send(41, telemetry.Record{0, 1, 0, 2, 0, 3, 1, 0}))
	require.NoError(t, bus.Send(25, telemetry.Record{}))
	require.Equal(t, "t02980001000200030100\rt01980000000000000000\r", out.String())
	require.NoError(t, bus.Close())
}
