package pixy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robotalks/pixy.go/pkg/l0/pixy"
	"github.com/robotalks/pixy.go/pkg/l0/transport"
)

func drain(t *testing.T, cam *pixy.Camera, steps int) (blocks []pixy.Block) {
	for i := 0; i < steps; i++ {
		require.NoError(t, cam.Process())
		for {
			b, ok := cam.PopBlock()
			if !ok {
				break
			}
			blocks = append(blocks, b)
		}
	}
	return
}

func TestSensorDecodes(t *testing.T) {
	targets := []Target{
		{Signature: 1, X: 10, Y: 20, Width: 3, Height: 4},
		{Signature: 012, X: 100, Y: 50, Width: 8, Height: 8, Angle: -30, ColorCoded: true},
	}
	sensor := NewSensor(targets...)
	cam := pixy.NewCamera(sensor)
	blocks := drain(t, cam, 200)
	require.True(t, len(blocks) >= 4)
	assert.Equal(t, targets[0].Block(), blocks[0])
	assert.Equal(t, targets[1].Block(), blocks[1])
	assert.Equal(t, int16(-30), blocks[1].Angle)
	assert.Equal(t, uint32(12), blocks[0].Area)

	st := cam.Status()
	assert.True(t, st.Synced)
	assert.Zero(t, st.SyncErrors)
	assert.Zero(t, st.ChecksumErrors)
}

func TestSensorSlipRecovers(t *testing.T) {
	sensor := NewSensor(Target{Signature: 3, X: 1, Y: 2, Width: 5, Height: 6})
	sensor.SlipEvery = 3
	cam := pixy.NewCamera(sensor)
	blocks := drain(t, cam, 400)
	require.NotEmpty(t, blocks)
	for _, b := range blocks {
		assert.Equal(t, uint16(3), b.Signature)
		assert.Equal(t, uint32(30), b.Area)
	}
	assert.NotZero(t, cam.Status().SyncErrors)
	assert.True(t, sensor.Frames() > 3)
}

func TestSensorReceivesCommands(t *testing.T) {
	sensor := NewSensor()
	cam := pixy.NewCamera(sensor)
	require.True(t, cam.SetLED(10, 20, 30))
	for cam.Pending() > 0 {
		require.NoError(t, cam.Process())
	}
	r, g, b, ok := sensor.LED()
	require.True(t, ok)
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})

	require.True(t, cam.SetBrightness(77))
	for cam.Pending() > 0 {
		require.NoError(t, cam.Process())
	}
	v, ok := sensor.Brightness()
	require.True(t, ok)
	assert.Equal(t, uint8(77), v)
	assert.Equal(t, 2, sensor.Commands())
}

func TestOpenSim(t *testing.T) {
	link, err := transport.Open("sim://?targets=3&slip=5")
	require.NoError(t, err)
	defer link.Close()
	sensor, ok := link.(*Sensor)
	require.True(t, ok)
	assert.Equal(t, 5, sensor.SlipEvery)
	targets := sensor.Targets()
	require.Len(t, targets, 3)
	assert.False(t, targets[0].ColorCoded)
	assert.True(t, targets[1].ColorCoded)
	assert.Equal(t, uint16(80), targets[0].X)
}
