// Package spi exchanges bytes with a Pixy sensor on a host SPI port.
package spi

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/robotalks/pixy.go/pkg/l0/transport"
)

// Defaults
const (
	DefaultFrequency = 1 * physic.MegaHertz
	DefaultMode      = spi.Mode0
)

var (
	hostOnce sync.Once
	hostErr  error
)

func initHost() error {
	hostOnce.Do(func() {
		_, hostErr = host.Init()
	})
	return hostErr
}

// Port is an opened SPI connection.
type Port struct {
	port spi.PortCloser
	conn spi.Conn
	tx   [1]byte
	rx   [1]byte
}

// Open opens the SPI port by name, empty name for the first available.
func Open(name string, freq physic.Frequency, mode spi.Mode) (*Port, error) {
	if err := initHost(); err != nil {
		return nil, fmt.Errorf("host init error: %v", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open SPI %q error: %v", name, err)
	}
	conn, err := port.Connect(freq, mode, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect SPI %q error: %v", name, err)
	}
	glog.Infof("SPI %q opened at %s, mode %d", name, freq, mode)
	return &Port{port: port, conn: conn}, nil
}

// Exchange implements Exchanger.
func (p *Port) Exchange(out byte) (byte, error) {
	p.tx[0] = out
	if err := p.conn.Tx(p.tx[:], p.rx[:]); err != nil {
		return 0, err
	}
	return p.rx[0], nil
}

// Close implements io.Closer.
func (p *Port) Close() error {
	return p.port.Close()
}

func open(u *url.URL) (transport.Link, error) {
	hz, err := transport.IntParam(u, "hz", int(DefaultFrequency/physic.Hertz))
	if err != nil {
		return nil, err
	}
	mode, err := transport.IntParam(u, "mode", int(DefaultMode))
	if err != nil {
		return nil, err
	}
	if mode < 0 || mode > 3 {
		return nil, fmt.Errorf("invalid SPI mode %d", mode)
	}
	return Open(transport.DeviceName(u), physic.Frequency(hz)*physic.Hertz, spi.Mode(mode))
}

func init() {
	transport.Register("spi", open)
}
