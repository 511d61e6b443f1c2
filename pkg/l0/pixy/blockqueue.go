package pixy

const minBlockQueueSize = 16

// blockQueue is a growable ring of blocks.
type blockQueue struct {
	items []Block
	head  int
	count int
}

func (q *blockQueue) push(b Block) {
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.count)%len(q.items)] = b
	q.count++
}

func (q *blockQueue) pop() (b Block, ok bool) {
	if q.count == 0 {
		return
	}
	b, ok = q.items[q.head], true
	q.items[q.head] = Block{}
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return
}

func (q *blockQueue) len() int {
	return q.count
}

func (q *blockQueue) grow() {
	size := len(q.items) * 2
	if size < minBlockQueueSize {
		size = minBlockQueueSize
	}
	items := make([]Block, size)
	for i := 0; i < q.count; i++ {
		items[i] = q.items[(q.head+i)%len(q.items)]
	}
	q.items, q.head = items, 0
}
