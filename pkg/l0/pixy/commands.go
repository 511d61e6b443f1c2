package pixy

// Command codes.
const (
	cmdSetLED        byte = 0xfd
	cmdSetBrightness byte = 0xfe
)

// SetLED sets the RGB LED on the sensor.
func (c *Camera) SetLED(r, g, b uint8) bool {
	return c.Send([]byte{0x00, cmdSetLED, r, g, b})
}

// SetBrightness sets the camera exposure brightness.
func (c *Camera) SetBrightness(v uint8) bool {
	return c.Send([]byte{0x00, cmdSetBrightness, v})
}
