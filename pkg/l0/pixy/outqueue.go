package pixy

// outQueue holds command bytes waiting to be clocked out.
// Only one command is accepted until it is fully drained.
type outQueue struct {
	buf    [OutQueueSize]byte
	rd, wr int
	len    int
}

func (q *outQueue) enqueue(data []byte) bool {
	if q.len != 0 || len(data) > OutQueueSize {
		return false
	}
	for _, b := range data {
		q.buf[q.wr] = b
		if q.wr++; q.wr == OutQueueSize {
			q.wr = 0
		}
	}
	q.len = len(data)
	return len(data) > 0
}

func (q *outQueue) dequeue() (b byte, ok bool) {
	if q.len == 0 {
		return
	}
	b, ok = q.buf[q.rd], true
	if q.rd++; q.rd == OutQueueSize {
		q.rd = 0
	}
	q.len--
	return
}

func (q *outQueue) pending() int {
	return q.len
}
