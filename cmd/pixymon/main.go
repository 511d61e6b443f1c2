package main

import (
	"flag"
	"os"
	"reflect"
	"strings"

	"github.com/golang/glog"

	"github.com/robotalks/pixy.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/pixy.go/pkg/l1/msgs"
	"github.com/robotalks/pixy.go/pkg/telemetry"
	"github.com/robotalks/pixy.go/pkg/telemetry/mqttbus"

	_ "github.com/robotalks/pixy.go/pkg/gamepad/msgs"
)

var (
	mqttURL  = "mqtt://localhost:1883/robo/"
	busTopic = mqttbus.DefaultTopic
	channels = telemetry.DefaultChannels
)

func init() {
	if val := os.Getenv("ROBO_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&busTopic, "bus-topic", busTopic, "Topic of telemetry records under the prefix.")
}

func main() {
	flag.Set("logtostderr", "true")
	flag.Parse()

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		glog.Fatal(err)
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			glog.Infof("%s: %s", topic, string(payload))
			return
		}
		if channel, ok := mqttbus.ParseChannelTopic(topic, busTopic); ok {
			rec, err := telemetry.RecordFrom(payload)
			if err != nil {
				glog.Warningf("%s: bad record: %v", topic, err)
				return
			}
			glog.Infof("%s: %s", topic, channels.Describe(channel, rec))
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			glog.Warningf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			glog.Warningf("%s: decode error: (type_id=%x) %v", topic, typed.TypeID, err)
			return
		}
		glog.Infof("%s: [%s] %s", topic,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			msg.(msgs.SerializableMessage).Serializable().String())
	}))
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		glog.Fatal(token.Error())
	}
	<-(chan struct{})(nil)
}
