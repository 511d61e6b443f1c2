//go:build linux

package device

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

type device struct {
	file        *os.File
	index       int
	name        string
	axisCount   uint8
	buttonCount uint8
}

// Open opens /dev/input/js<index>.
func Open(index int) (Device, error) {
	f, err := os.OpenFile(fmt.Sprintf("/dev/input/js%d", index), os.O_RDONLY, 0666)
	if err != nil {
		return nil, err
	}
	d := &device{file: f, index: index}
	err = d.ioctl(iocGAXES, unsafe.Pointer(&d.axisCount))
	if err == nil {
		err = d.ioctl(iocGBUTTONS, unsafe.Pointer(&d.buttonCount))
	}
	if err == nil {
		var buf [128]byte
		if err = d.ioctl(iocGNAME, unsafe.Pointer(&buf[0])); err == nil {
			d.name = unix.ByteSliceToString(buf[:])
		}
	}
	if err != nil {
		d.file.Close()
		return nil, err
	}
	return d, nil
}

// DetectAndOpen detects a next available device from startIndex and opens it.
func DetectAndOpen(startIndex int) (Device, error) {
	for index := startIndex; index < 32; index++ {
		d, err := Open(index)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		return d, nil
	}
	return nil, nil
}

// Close implements Device.
func (d *device) Close() error {
	return d.file.Close()
}

// Index implements Device.
func (d *device) Index() int {
	return d.index
}

// Name implements Device.
func (d *device) Name() string {
	return d.name
}

// AxisCount implements Device.
func (d *device) AxisCount() int {
	return int(d.axisCount)
}

// ButtonCount implements Device.
func (d *device) ButtonCount() int {
	return int(d.buttonCount)
}

// ReadEvent implements Device.
func (d *device) ReadEvent() (Event, error) {
	var buf [eventSize]byte
	if _, err := d.file.Read(buf[:]); err != nil {
		return nil, err
	}
	return decodeEvent(buf), nil
}

// ioctl request numbers from linux/joystick.h.
const (
	iocGAXES    uint = 0x80016a11
	iocGBUTTONS uint = 0x80016a12
	iocGNAME    uint = 0x80806a13 // JSIOCGNAME(128)
)

func (d *device) ioctl(req uint, ptr unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, d.file.Fd(), uintptr(req), uintptr(ptr))
	if errno != 0 {
		return errno
	}
	return nil
}

