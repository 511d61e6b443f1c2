// Package mqttbus publishes telemetry records to MQTT topics, one topic
// per channel.
package mqttbus

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/golang/glog"

	"github.com/robotalks/pixy.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/pixy.go/pkg/telemetry"
)

// DefaultTopic is the topic under the prefix that records are published to.
const DefaultTopic = "bus"

// Publisher is the part of mqtt.Queue used by Bus.
type Publisher interface {
	Pub(topic string, payload []byte) error
}

// Bus implements telemetry.Bus.
type Bus struct {
	Publisher Publisher
	Topic     string
}

// queuePublisher publishes with QoS 0 without waiting for completion.
type queuePublisher struct {
	queue *mqtt.Queue
}

func (p *queuePublisher) Pub(topic string, payload []byte) error {
	p.queue.Pub(topic, payload)
	return nil
}

// New creates a Bus on a connected queue.
func New(q *mqtt.Queue, topic string) *Bus {
	return &Bus{Publisher: &queuePublisher{queue: q}, Topic: topic}
}

// ChannelTopic returns the topic of a channel.
func (b *Bus) ChannelTopic(channel uint32) string {
	return b.Topic + "/" + strconv.FormatUint(uint64(channel), 10)
}

// Send implements telemetry.Bus.
func (b *Bus) Send(channel uint32, rec telemetry.Record) error {
	return b.Publisher.Pub(b.ChannelTopic(channel), rec[:])
}

// Close disconnects the queue if it's owned by the bus.
func (b *Bus) Close() error {
	if p, ok := b.Publisher.(*queuePublisher); ok {
		return p.queue.Close()
	}
	return nil
}

// ParseChannelTopic extracts the channel from a topic published by Bus.
func ParseChannelTopic(topic, prefix string) (uint32, bool) {
	if len(topic) <= len(prefix)+1 || topic[:len(prefix)] != prefix || topic[len(prefix)] != '/' {
		return 0, false
	}
	n, err := strconv.ParseUint(topic[len(prefix)+1:], 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func open(u *url.URL) (telemetry.Bus, error) {
	topic := u.Query().Get("topic")
	if topic == "" {
		topic = DefaultTopic
	}
	q := u.Query()
	q.Del("topic")
	u.RawQuery = q.Encode()
	queue, err := mqtt.NewQueueFromURL(u.String())
	if err != nil {
		return nil, err
	}
	token := queue.Connect()
	token.Wait()
	if err = token.Error(); err != nil {
		return nil, fmt.Errorf("MQTT connect error: %v", err)
	}
	glog.Infof("MQTT bus publishing to %s%s/+", queue.TopicPrefix, topic)
	return New(queue, topic), nil
}

func init() {
	telemetry.RegisterBus("mqtt", open)
}
