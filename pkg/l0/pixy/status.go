package pixy

import (
	"fmt"
	"time"
)

// Status is a snapshot of the link state.
type Status struct {
	Synced         bool
	SyncErrors     uint32
	ChecksumErrors uint32
	SinceLastBlock time.Duration
}

// Millis returns SinceLastBlock in milliseconds.
func (s Status) Millis() int64 {
	return int64(s.SinceLastBlock / time.Millisecond)
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return fmt.Sprintf("synced=%v sync-errors=%d checksum-errors=%d since-last-block=%dms",
		s.Synced, s.SyncErrors, s.ChecksumErrors, s.Millis())
}
