package telemetry

import "fmt"

// Channels names the bus channel (frame id) of each record.
type Channels struct {
	Status uint32
	BlockA uint32
	BlockB uint32
}

// DefaultChannels are the frame ids used by the vehicle.
var DefaultChannels = Channels{
	Status: 41,
	BlockA: 9,
	BlockB: 25,
}

// Describe decodes a record received on a channel for display.
func (c Channels) Describe(channel uint32, rec Record) string {
	switch channel {
	case c.Status:
		st := DecodeStatus(rec)
		return fmt.Sprintf("status synced=%v sync-errors=%d checksum-errors=%d since-last-block=%dms",
			st.Synced, st.SyncErrors, st.ChecksumErrors, st.Millis)
	case c.BlockA:
		a := DecodeBlockA(rec)
		return fmt.Sprintf("block x=%d y=%d w=%d h=%d", a.X, a.Y, a.Width, a.Height)
	case c.BlockB:
		b := DecodeBlockB(rec)
		return fmt.Sprintf("block sig=%d angle=%d area=%d", b.Signature, b.Angle, b.Area)
	}
	return fmt.Sprintf("channel %d: % x", channel, rec[:])
}
