package mqttbus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pixy.go/pkg/telemetry"
)

type published struct {
	topic   string
	payload []byte
}

type memPublisher struct {
	msgs []published
}

func (p *memPublisher) Pub(topic string, payload []byte) error {
	p.msgs = append(p.msgs, published{topic: topic, payload: append([]byte(nil), payload...)})
	return nil
}

func TestBusSend(t *testing.T) {
	pub := &memPublisher{}
	bus := &Bus{Publisher: pub, Topic: "vision/abc/bus"}
	require.NoError(t, bus.Send(41, telemetry.Record{1, 2, 3, 4, 5, 6, 7, 8}))
	require.Equal(t, []published{
		{topic: "vision/abc/bus/41", payload: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}, pub.msgs)
	require.NoError(t, bus.Close())
}

func TestParseChannelTopic(t *testing.T) {
	ch, ok := ParseChannelTopic("bus/25", "bus")
	require.True(t, ok)
	require.EqualValues(t, 25, ch)

	for _, topic := range []string{"bus", "bus/", "bus/x", "busy/1", "other/9", "bus/1/2"} {
		_, ok = ParseChannelTopic(topic, "bus")
		require.Falsef(t, ok, "topic %q", topic)
	}
}
