// Package socketcan sends telemetry records on a Linux CAN interface.
package socketcan

import (
	"encoding/binary"

	"github.com/robotalks/pixy.go/pkg/telemetry"
)

const (
	frameSize = 16
	maxStdID  = 0x7ff
	effFlag   = 0x80000000
)

// encodeFrame builds a struct can_frame in host byte order.
func encodeFrame(id uint32, rec telemetry.Record) (frame [frameSize]byte) {
	if id > maxStdID {
		id |= effFlag
	}
	binary.NativeEndian.PutUint32(frame[0:], id)
	frame[4] = byte(len(rec))
	copy(frame[8:], rec[:])
	return
}
