package telemetry

import (
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/pixy.go/pkg/l0/pixy"
)

// Bus transmits records.
type Bus interface {
	Send(channel uint32, rec Record) error
}

// BusFactory opens a Bus from URL.
type BusFactory func(*url.URL) (Bus, error)

var (
	buses     = map[string]BusFactory{"log": openLogBus}
	busesLock sync.RWMutex
)

// RegisterBus registers a BusFactory for the URL scheme.
func RegisterBus(scheme string, f BusFactory) {
	busesLock.Lock()
	defer busesLock.Unlock()
	if _, exist := buses[scheme]; exist {
		panic("bus " + scheme + " already registered")
	}
	buses[scheme] = f
}

// Open opens a Bus by URL, e.g.
//
//	log:
//	mqtt://localhost:1883/robo/?topic=pixy/bus
//	slcan:///dev/ttyACM0?bitrate=500000
//	can://can0
//
// An empty URL opens a LogBus.
func Open(rawURL string) (Bus, error) {
	if rawURL == "" {
		return openLogBus(nil)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bus URL: %v", err)
	}
	busesLock.RLock()
	f := buses[u.Scheme]
	var schemes []string
	if f == nil {
		for scheme := range buses {
			schemes = append(schemes, scheme)
		}
	}
	busesLock.RUnlock()
	if f == nil {
		sort.Strings(schemes)
		return nil, fmt.Errorf("unknown bus %q, available: %v", u.Scheme, schemes)
	}
	return f(u)
}

// LogBus logs records with glog.
type LogBus struct {
	Channels Channels
}

func openLogBus(*url.URL) (Bus, error) {
	return &LogBus{Channels: DefaultChannels}, nil
}

// Send implements Bus.
func (b *LogBus) Send(channel uint32, rec Record) error {
	if glog.V(1) {
		glog.Infof("BUS %d: %s", channel, b.Channels.Describe(channel, rec))
	}
	return nil
}

// Publisher sends Pixy status and blocks as records.
type Publisher struct {
	Bus      Bus
	Channels Channels
}

// NewPublisher creates a Publisher with DefaultChannels.
func NewPublisher(bus Bus) *Publisher {
	return &Publisher{Bus: bus, Channels: DefaultChannels}
}

// PublishStatus sends the status record.
func (p *Publisher) PublishStatus(st pixy.Status) error {
	return p.Bus.Send(p.Channels.Status, EncodeStatus(st))
}

// PublishBlock sends block record A then B.
func (p *Publisher) PublishBlock(b pixy.Block) error {
	if err := p.Bus.Send(p.Channels.BlockA, EncodeBlockA(b)); err != nil {
		return err
	}
	return p.Bus.Send(p.Channels.BlockB, EncodeBlockB(b))
}
