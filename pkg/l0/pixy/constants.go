package pixy

// Marker words.
const (
	StartWord    uint16 = 0xaa55
	StartWordCC  uint16 = 0xaa56
	ReversedWord uint16 = 0x55aa
)

// Sync bytes transmitted in the first half of a word.
const (
	SyncByte     byte = 0x5a
	SyncByteData byte = 0x5b
)

// OutQueueSize is the capacity of the outgoing command queue.
const OutQueueSize = 64
