package pixy

import (
	"time"

	"github.com/golang/glog"
)

type syncState int

const (
	seekFirstMarker syncState = iota
	seekSecondMarker
	decodeBlock
)

// Camera decodes blocks streamed by a Pixy sensor.
// It is not safe for concurrent use: Process, PopBlock, Send and Status
// must be called from the same goroutine.
type Camera struct {
	// Now returns the current time, defaults to time.Now.
	Now func() time.Time

	xfer       Exchanger
	state      syncState
	colorCoded bool
	out        outQueue
	blocks     blockQueue

	synced         bool
	syncErrors     uint32
	checksumErrors uint32
	lastBlock      time.Time
}

// NewCamera creates a Camera on the transport.
func NewCamera(xfer Exchanger) *Camera {
	c := &Camera{Now: time.Now, xfer: xfer}
	c.lastBlock = c.Now()
	return c
}

// Process advances the decoder by one stage. Seeking a marker reads one
// word, decoding a block reads the whole payload. Transport errors reset
// the decoder to seek the first marker again.
func (c *Camera) Process() error {
	var err error
	switch c.state {
	case seekFirstMarker:
		err = c.seekFirst()
	case seekSecondMarker:
		err = c.seekSecond()
	case decodeBlock:
		c.state = seekFirstMarker
		err = c.decodeBlock()
	}
	if err != nil {
		c.state = seekFirstMarker
	}
	return err
}

func (c *Camera) seekFirst() error {
	w, err := c.readWord()
	if err != nil {
		return err
	}
	switch w {
	case StartWord:
		c.state = seekSecondMarker
	case ReversedWord:
		// off by one byte, clock one more to realign.
		if _, err = c.exchange(0); err != nil {
			return err
		}
		c.lostSync(w)
	case 0:
		// idle line.
	default:
		c.lostSync(w)
	}
	return nil
}

func (c *Camera) seekSecond() error {
	w, err := c.readWord()
	if err != nil {
		return err
	}
	switch w {
	case StartWord:
		c.colorCoded, c.state = false, decodeBlock
	case StartWordCC:
		c.colorCoded, c.state = true, decodeBlock
	default:
		c.state = seekFirstMarker
		c.lostSync(w)
	}
	return nil
}

func (c *Camera) lostSync(w uint16) {
	c.syncErrors++
	if c.synced {
		glog.V(2).Infof("pixy: sync lost on word %04x", w)
	}
	c.synced = false
}

func (c *Camera) decodeBlock() error {
	c.synced = true
	c.lastBlock = c.Now()

	checksum, err := c.readWord()
	if err != nil {
		return err
	}
	var fields [6]uint16
	n := 5
	if c.colorCoded {
		n = 6
	}
	var sum uint16
	for i := 0; i < n; i++ {
		if fields[i], err = c.readWord(); err != nil {
			return err
		}
		sum += fields[i]
	}
	b := Block{
		Signature:  fields[0],
		X:          fields[1],
		Y:          fields[2],
		Width:      fields[3],
		Height:     fields[4],
		Angle:      int16(fields[5]),
		Area:       uint32(fields[3]) * uint32(fields[4]),
		ColorCoded: c.colorCoded,
	}
	if sum != checksum {
		c.checksumErrors++
		glog.V(2).Infof("pixy: checksum mismatch %04x != %04x: %s", sum, checksum, b)
		return nil
	}
	glog.V(3).Infof("pixy: block %s", b)
	c.blocks.push(b)
	return nil
}

// PopBlock removes the oldest decoded block.
func (c *Camera) PopBlock() (Block, bool) {
	return c.blocks.pop()
}

// BlockCount returns the number of decoded blocks not yet popped.
func (c *Camera) BlockCount() int {
	return c.blocks.len()
}

// Send queues command bytes to be clocked out with the following words.
// It fails if a previous command is not yet fully sent, or data exceeds
// OutQueueSize. Empty data is never sent.
func (c *Camera) Send(data []byte) bool {
	return c.out.enqueue(data)
}

// Pending returns the number of command bytes not yet sent.
func (c *Camera) Pending() int {
	return c.out.pending()
}

// Status returns a snapshot of the link state.
func (c *Camera) Status() Status {
	return Status{
		Synced:         c.synced,
		SyncErrors:     c.syncErrors,
		ChecksumErrors: c.checksumErrors,
		SinceLastBlock: c.Now().Sub(c.lastBlock),
	}
}
