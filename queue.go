package i8088

import (
	"fmt"
	"strings"
)

// QueueOp classifies the prefetch queue activity observed in the last
// clock. The values match the QS0/QS1 queue status encoding the 8088
// drives for external coprocessors, so they can be written to trace
// captures verbatim.
type QueueOp uint8

const (
	QueueIdle       QueueOp = iota // no queue activity
	QueueFirst                     // first opcode byte of a new instruction read
	QueueFlush                     // queue contents discarded
	QueueSubsequent                // non-first instruction byte read
)

// Code returns the 1-char queue activity column.
func (op QueueOp) Code() byte {
	switch op {
	case QueueFirst:
		return 'F'
	case QueueFlush:
		return 'E'
	case QueueSubsequent:
		return 'S'
	default:
		return ' '
	}
}

const queueCapacity = 4

// Queue is the 8088's 4-byte instruction prefetch FIFO.
type Queue struct {
	buf     [queueCapacity]uint8
	len     int
	preload bool
}

func (q *Queue) Len() int {
	return q.len
}

// Push appends a fetched byte. It reports false when the queue is full,
// in which case the byte is dropped; a correct BIU driver never fetches
// into a full queue.
func (q *Queue) Push(b uint8) bool {
	if q.len == queueCapacity {
		return false
	}
	q.buf[q.len] = b
	q.len++
	return true
}

// Pop consumes the oldest byte. Consuming a byte clears the preload
// flag, since any speculatively fetched byte has now been used.
func (q *Queue) Pop() (uint8, bool) {
	if q.len == 0 {
		return 0, false
	}
	b := q.buf[0]
	copy(q.buf[:], q.buf[1:q.len])
	q.len--
	q.preload = false
	return b, true
}

// Flush discards all queued bytes, as on a taken jump.
func (q *Queue) Flush() {
	q.len = 0
	q.preload = false
}

// SetPreload marks the head byte as having been fetched speculatively
// ahead of need.
func (q *Queue) SetPreload() {
	if q.len > 0 {
		q.preload = true
	}
}

func (q *Queue) HasPreload() bool {
	return q.preload
}

// String renders the queued bytes oldest-first as 2-digit hex.
func (q *Queue) String() string {
	var sb strings.Builder
	for i := 0; i < q.len; i++ {
		fmt.Fprintf(&sb, "%02X", q.buf[i])
	}
	return sb.String()
}
