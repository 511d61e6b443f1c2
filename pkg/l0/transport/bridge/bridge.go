// Package bridge exchanges bytes with a Pixy sensor through a serial SPI
// bridge: a microcontroller clocks every byte received over UART onto SPI
// and writes back the byte received from the sensor.
package bridge

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/robotalks/pixy.go/pkg/l0/transport"
)

// Defaults
const (
	DefaultBaudRate = 115200
	DefaultTimeout  = 100 * time.Millisecond
)

var (
	// ErrTimeout indicates the bridge didn't answer a byte in time.
	ErrTimeout = errors.New("bridge timeout")
	// ErrNoPort indicates no USB serial port is detected.
	ErrNoPort = errors.New("no USB serial port found")
)

// Port exchanges bytes over a serial stream.
type Port struct {
	rw  io.ReadWriter
	buf [1]byte
}

// New creates a Port on a stream. Reads on the stream are expected
// to time out by returning 0 bytes.
func New(rw io.ReadWriter) *Port {
	return &Port{rw: rw}
}

// Open opens the serial device, detecting the first USB serial port when
// path is empty.
func Open(path string, baud int) (*Port, error) {
	if path == "" {
		detected, err := Detect()
		if err != nil {
			return nil, err
		}
		path = detected
	}
	port, err := serial.Open(path, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s error: %v", path, err)
	}
	if err = port.SetReadTimeout(DefaultTimeout); err != nil {
		port.Close()
		return nil, err
	}
	if err = port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, err
	}
	glog.Infof("bridge %s opened at %d baud", path, baud)
	return New(port), nil
}

// Detect finds the first USB serial port.
func Detect() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", err
	}
	for _, p := range ports {
		if p.IsUSB {
			glog.V(1).Infof("detected %s (%s:%s %s)", p.Name, p.VID, p.PID, p.SerialNumber)
			return p.Name, nil
		}
	}
	return "", ErrNoPort
}

// Exchange implements Exchanger.
func (p *Port) Exchange(out byte) (byte, error) {
	p.buf[0] = out
	if _, err := p.rw.Write(p.buf[:]); err != nil {
		return 0, err
	}
	n, err := p.rw.Read(p.buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrTimeout
	}
	return p.buf[0], nil
}

// Close implements io.Closer.
func (p *Port) Close() error {
	if closer, ok := p.rw.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func open(u *url.URL) (transport.Link, error) {
	baud, err := transport.IntParam(u, "baud", DefaultBaudRate)
	if err != nil {
		return nil, err
	}
	return Open(transport.DeviceName(u), baud)
}

func init() {
	transport.Register("bridge", open)
}
