// Package pixy provides the L0 link to a Pixy vision sensor over SPI.
package pixy

// The sensor streams object blocks as 16-bit big-endian words over a
// full-duplex byte channel with no external framing. Every word read
// clocks out two bytes, which the host uses to piggyback commands:
//
//   idle word:      0x5A 0x00
//   data word:      0x5B <command byte>
//
// A frame is two marker words followed by a payload:
//
//   0xAA55 0xAA55 checksum signature x y width height
//   0xAA55 0xAA56 checksum signature x y width height angle
//
// The checksum is the 16-bit wraparound sum of the payload words.
// The decoder resynchronizes by itself: a reversed marker (0x55AA)
// means the stream is off by one byte, and one extra byte is clocked
// to realign. Zero words are the idle line and are not errors.
//
// Producer: Pixy firmware
// Consumer: L1 controller
