package pixy

import "fmt"

// Block is an object detected by the sensor.
// X ranges 0 to 319 and Y ranges 0 to 199.
type Block struct {
	Signature uint16
	X         uint16
	Y         uint16
	Width     uint16
	Height    uint16
	// Angle is only reported for color-coded blocks.
	Angle int16
	// Area is Width * Height.
	Area       uint32
	ColorCoded bool
}

// String implements fmt.Stringer.
func (b Block) String() string {
	if b.ColorCoded {
		return fmt.Sprintf("CC sig=%o x=%d y=%d w=%d h=%d angle=%d area=%d",
			b.Signature, b.X, b.Y, b.Width, b.Height, b.Angle, b.Area)
	}
	return fmt.Sprintf("sig=%d x=%d y=%d w=%d h=%d area=%d",
		b.Signature, b.X, b.Y, b.Width, b.Height, b.Area)
}

// Checksum computes the checksum the sensor sends ahead of the block.
func (b Block) Checksum() uint16 {
	sum := b.Signature + b.X + b.Y + b.Width + b.Height
	if b.ColorCoded {
		sum += uint16(b.Angle)
	}
	return sum
}
