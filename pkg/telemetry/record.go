// Package telemetry republishes Pixy status and blocks as fixed 8-byte
// records on a vehicle bus.
package telemetry

import (
	"encoding/binary"
	"fmt"

	"github.com/robotalks/pixy.go/pkg/l0/pixy"
)

// Record is the payload of one bus frame. Fields are big-endian.
type Record [8]byte

// StatusRecord is the decoded form of a status record.
type StatusRecord struct {
	SyncErrors     uint16
	ChecksumErrors uint16
	Millis         uint16
	Synced         bool
}

// BlockARecord carries the position and size of a block.
type BlockARecord struct {
	X, Y, Width, Height uint16
}

// BlockBRecord carries the identity of a block.
type BlockBRecord struct {
	Signature uint16
	Angle     int16
	Area      uint16
}

// EncodeStatus packs a status. Counters and elapsed milliseconds keep
// their low 16 bits.
func EncodeStatus(st pixy.Status) (rec Record) {
	binary.BigEndian.PutUint16(rec[0:], uint16(st.SyncErrors))
	binary.BigEndian.PutUint16(rec[2:], uint16(st.ChecksumErrors))
	binary.BigEndian.PutUint16(rec[4:], uint16(st.Millis()))
	if st.Synced {
		rec[6] = 1
	}
	return
}

// EncodeBlockA packs x, y, width and height.
func EncodeBlockA(b pixy.Block) (rec Record) {
	binary.BigEndian.PutUint16(rec[0:], b.X)
	binary.BigEndian.PutUint16(rec[2:], b.Y)
	binary.BigEndian.PutUint16(rec[4:], b.Width)
	binary.BigEndian.PutUint16(rec[6:], b.Height)
	return
}

// EncodeBlockB packs signature, angle and the low 16 bits of area.
func EncodeBlockB(b pixy.Block) (rec Record) {
	binary.BigEndian.PutUint16(rec[0:], b.Signature)
	binary.BigEndian.PutUint16(rec[2:], uint16(b.Angle))
	binary.BigEndian.PutUint16(rec[4:], uint16(b.Area))
	return
}

// DecodeStatus unpacks a status record.
func DecodeStatus(rec Record) StatusRecord {
	return StatusRecord{
		SyncErrors:     binary.BigEndian.Uint16(rec[0:]),
		ChecksumErrors: binary.BigEndian.Uint16(rec[2:]),
		Millis:         binary.BigEndian.Uint16(rec[4:]),
		Synced:         rec[6] != 0,
	}
}

// DecodeBlockA unpacks a block record A.
func DecodeBlockA(rec Record) BlockARecord {
	return BlockARecord{
		X:      binary.BigEndian.Uint16(rec[0:]),
		Y:      binary.BigEndian.Uint16(rec[2:]),
		Width:  binary.BigEndian.Uint16(rec[4:]),
		Height: binary.BigEndian.Uint16(rec[6:]),
	}
}

// DecodeBlockB unpacks a block record B.
func DecodeBlockB(rec Record) BlockBRecord {
	return BlockBRecord{
		Signature: binary.BigEndian.Uint16(rec[0:]),
		Angle:     int16(binary.BigEndian.Uint16(rec[2:])),
		Area:      binary.BigEndian.Uint16(rec[4:]),
	}
}

// RecordFrom copies a payload into a Record.
func RecordFrom(payload []byte) (rec Record, err error) {
	if len(payload) != len(rec) {
		return rec, fmt.Errorf("record must be %d bytes, got %d", len(rec), len(payload))
	}
	copy(rec[:], payload)
	return
}
