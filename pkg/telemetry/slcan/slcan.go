// Package slcan sends telemetry records through a serial-line CAN adapter
// speaking the Lawicel ASCII protocol.
package slcan

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/golang/glog"
	"go.bug.st/serial"

	"github.com/robotalks/pixy.go/pkg/telemetry"
)

// DefaultBitrate of the CAN bus.
const DefaultBitrate = 500000

var bitrateCodes = map[int]byte{
	10000:   '0',
	20000:   '1',
	50000:   '2',
	100000:  '3',
	125000:  '4',
	250000:  '5',
	500000:  '6',
	800000:  '7',
	1000000: '8',
}

// maxStdID is the largest 11-bit identifier.
const maxStdID = 0x7ff

// Bus implements telemetry.Bus.
type Bus struct {
	w   io.Writer
	buf []byte
}

// New creates a Bus on an adapter stream which is already open.
func New(w io.Writer) *Bus {
	return &Bus{w: w, buf: make([]byte, 0, 32)}
}

// Open opens the adapter, sets the bitrate and opens the CAN channel.
func Open(path string, bitrate int) (*Bus, error) {
	code, ok := bitrateCodes[bitrate]
	if !ok {
		return nil, fmt.Errorf("unsupported CAN bitrate %d", bitrate)
	}
	port, err := serial.Open(path, &serial.Mode{BaudRate: 115200})
	if err != nil {
		return nil, fmt.Errorf("open %s error: %v", path, err)
	}
	// close first in case the channel was left open.
	if _, err = port.Write([]byte{'C', '\r', 'S', code, '\r', 'O', '\r'}); err != nil {
		port.Close()
		return nil, err
	}
	glog.Infof("SLCAN %s opened at %d bit/s", path, bitrate)
	return New(port), nil
}

// Send implements telemetry.Bus.
func (b *Bus) Send(channel uint32, rec telemetry.Record) error {
	b.buf = AppendFrame(b.buf[:0], channel, rec)
	_, err := b.w.Write(b.buf)
	return err
}

// Close closes the CAN channel and the adapter.
func (b *Bus) Close() error {
	closer, ok := b.w.(io.Closer)
	if !ok {
		return nil
	}
	b.w.Write([]byte{'C', '\r'})
	return closer.Close()
}

// AppendFrame appends the ASCII form of a data frame.
func AppendFrame(dst []byte, id uint32, rec telemetry.Record) []byte {
	if id > maxStdID {
		dst = append(dst, 'T')
		dst = appendHex(dst, uint64(id), 8)
	} else {
		dst = append(dst, 't')
		dst = appendHex(dst, uint64(id), 3)
	}
	dst = append(dst, byte('0'+len(rec)))
	for _, b := range rec {
		dst = appendHex(dst, uint64(b), 2)
	}
	return append(dst, '\r')
}

func appendHex(dst []byte, v uint64, digits int) []byte {
	s := strconv.FormatUint(v, 16)
	for i := len(s); i < digits; i++ {
		dst = append(dst, '0')
	}
	for _, c := range []byte(s) {
		if c >= 'a' {
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}

func open(u *url.URL) (telemetry.Bus, error) {
	bitrate := DefaultBitrate
	if val := u.Query().Get("bitrate"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid bitrate %q: %v", val, err)
		}
		bitrate = n
	}
	path := u.Path
	if u.Host != "" {
		path = u.Host + u.Path
	}
	return Open(path, bitrate)
}

func init() {
	telemetry.RegisterBus("slcan", open)
}
