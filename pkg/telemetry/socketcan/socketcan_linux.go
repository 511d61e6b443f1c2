package socketcan

import (
	"fmt"
	"net"
	"net/url"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"

	"github.com/robotalks/pixy.go/pkg/telemetry"
)

// Bus implements telemetry.Bus with a raw CAN socket.
type Bus struct {
	fd int
}

// Open binds a raw CAN socket to the interface, e.g. can0.
func Open(ifname string) (*Bus, error) {
	ifi, err := net.InterfaceByName(ifname)
	if err != nil {
		return nil, fmt.Errorf("CAN interface %q: %v", ifname, err)
	}
	fd, err := unix.Socket(unix.AF_CAN, unix.SOCK_RAW, unix.CAN_RAW)
	if err != nil {
		return nil, fmt.Errorf("CAN socket: %v", err)
	}
	if err = unix.Bind(fd, &unix.SockaddrCAN{Ifindex: ifi.Index}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("bind %q: %v", ifname, err)
	}
	glog.Infof("CAN %s opened", ifname)
	return &Bus{fd: fd}, nil
}

// Send implements telemetry.Bus.
func (b *Bus) Send(channel uint32, rec telemetry.Record) error {
	frame := encodeFrame(channel, rec)
	_, err := unix.Write(b.fd, frame[:])
	return err
}

// Close implements io.Closer.
func (b *Bus) Close() error {
	return unix.Close(b.fd)
}

func open(u *url.URL) (telemetry.Bus, error) {
	name := u.Host
	if name == "" {
		name = u.Opaque
	}
	return Open(name)
}

func init() {
	telemetry.RegisterBus("can", open)
}
