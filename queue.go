package main

import (
	"runtime"
	"sync/atomic"
)

const kbufSize = 256

// inputQueue is the decoded-keystroke ring between interrupt context and
// the foreground loop. The interrupt side is the only writer of head, the
// foreground side the only writer of tail, so no lock is needed; the
// atomics give the store-value-then-advance-index ordering the handoff
// depends on. One slot stays unused, so the ring holds kbufSize-1 bytes.
type inputQueue struct {
	buf  [kbufSize]byte
	head atomic.Uint32
	tail atomic.Uint32
}

// Reset empties the queue. Called once, when the interrupt subsystem is
// (re)installed; must never race with a live producer.
func (q *inputQueue) Reset() {
	q.head.Store(0)
	q.tail.Store(0)
}

// Push deposits one decoded character. Interrupt context only. If the
// ring is full the character is dropped.
func (q *inputQueue) Push(c byte) {
	head := q.head.Load()
	next := (head + 1) % kbufSize
	if next == q.tail.Load() {
		return // full, drop newest
	}
	q.buf[head] = c
	q.head.Store(next)
}

// Pop returns the oldest character, spinning until one arrives.
// Foreground context only.
func (q *inputQueue) Pop() byte {
	tail := q.tail.Load()
	for q.head.Load() == tail {
		runtime.Gosched()
	}
	c := q.buf[tail]
	q.tail.Store((tail + 1) % kbufSize)
	return c
}

// Len reports how many characters are pending. Foreground context only;
// the answer may be stale by the time it is used.
func (q *inputQueue) Len() int {
	head, tail := q.head.Load(), q.tail.Load()
	return int((head + kbufSize - tail) % kbufSize)
}
