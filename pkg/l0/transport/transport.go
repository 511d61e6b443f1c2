// Package transport opens byte exchange links to a Pixy sensor by URL.
package transport

import (
	"fmt"
	"io"
	"net/url"
	"sort"
	"strconv"
	"sync"

	"github.com/robotalks/pixy.go/pkg/l0/pixy"
)

// Link is an opened transport.
type Link interface {
	pixy.Exchanger
	io.Closer
}

// Factory opens a Link from a parsed URL.
type Factory func(*url.URL) (Link, error)

var (
	factories     = make(map[string]Factory)
	factoriesLock sync.RWMutex
)

// Register registers a Factory for the URL scheme.
// It is intended to be called from init of a transport package.
func Register(scheme string, f Factory) {
	factoriesLock.Lock()
	defer factoriesLock.Unlock()
	if _, exist := factories[scheme]; exist {
		panic("transport " + scheme + " already registered")
	}
	factories[scheme] = f
}

// Schemes lists registered URL schemes.
func Schemes() []string {
	factoriesLock.RLock()
	defer factoriesLock.RUnlock()
	schemes := make([]string, 0, len(factories))
	for scheme := range factories {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}

// Open opens a Link, e.g.
//
//	spi://SPI0.0?hz=1000000&mode=0
//	bridge:///dev/ttyUSB0?baud=115200
//	sim://?targets=3
func Open(rawURL string) (Link, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid transport URL: %v", err)
	}
	factoriesLock.RLock()
	f := factories[u.Scheme]
	factoriesLock.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("unknown transport %q, available: %v", u.Scheme, Schemes())
	}
	return f(u)
}

// DeviceName returns the host, or the path when host is empty.
func DeviceName(u *url.URL) string {
	if u.Host != "" {
		return u.Host
	}
	return u.Path
}

// IntParam parses an integer query parameter, returning def when absent.
func IntParam(u *url.URL, name string, def int) (int, error) {
	val := u.Query().Get(name)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %v", name, val, err)
	}
	return n, nil
}
