package pixy

// Exchanger is a synchronous full-duplex single byte transfer.
type Exchanger interface {
	Exchange(out byte) (in byte, err error)
}

// ExchangeFunc is the func form of Exchanger.
type ExchangeFunc func(out byte) (byte, error)

// Exchange implements Exchanger.
func (f ExchangeFunc) Exchange(out byte) (byte, error) {
	return f(out)
}

// readWord clocks one big-endian word. When a command is pending,
// the first byte announces it with SyncByteData and the second byte
// carries one command byte.
func (c *Camera) readWord() (uint16, error) {
	first, second := SyncByte, byte(0)
	if b, ok := c.out.dequeue(); ok {
		first, second = SyncByteData, b
	}
	hi, err := c.exchange(first)
	if err != nil {
		return 0, err
	}
	lo, err := c.exchange(second)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (c *Camera) exchange(out byte) (byte, error) {
	in, err := c.xfer.Exchange(out)
	if err != nil {
		return 0, &TransportError{Op: "exchange", Err: err}
	}
	return in, nil
}
