// Package telemetry records pipeline stages and commands as OpenTelemetry spans
// and forwards them to a renderer.
package telemetry

import (
	"sync"
	"time"
)

const (
	// DefaultFlushSize is the number of buffered bytes that forces a flush.
	DefaultFlushSize = 4096
	// DefaultFlushDelay is the longest time output stays buffered.
	DefaultFlushDelay = 50 * time.Millisecond
)

// Batcher coalesces small writes from a command into larger chunks.
// A flush happens when the buffer reaches its size limit, when the delay
// since the first unflushed write has passed, or on Close.
type Batcher struct {
	size  int
	delay time.Duration
	sink  func([]byte)

	mu     sync.Mutex
	buf    []byte
	timer  *time.Timer
	closed bool
}

// NewBatcher returns a Batcher delivering chunks to sink.
// Non-positive limits select the defaults.
func NewBatcher(size int, delay time.Duration, sink func([]byte)) *Batcher {
	if size <= 0 {
		size = DefaultFlushSize
	}
	if delay <= 0 {
		delay = DefaultFlushDelay
	}
	return &Batcher{size: size, delay: delay, sink: sink}
}

// Write buffers p. Writes after Close are dropped.
func (b *Batcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return len(p), nil
	}

	b.buf = append(b.buf, p...)
	if len(b.buf) >= b.size {
		b.flushLocked()
		return len(p), nil
	}
	if b.timer == nil {
		b.timer = time.AfterFunc(b.delay, b.Flush)
	}
	return len(p), nil
}

// Flush delivers buffered output immediately.
func (b *Batcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushLocked()
}

// Close flushes and stops accepting output.
func (b *Batcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.flushLocked()
	b.closed = true
	return nil
}

// flushLocked must be called with mu held. The sink runs under the lock so chunks stay ordered.
func (b *Batcher) flushLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if len(b.buf) == 0 {
		return
	}
	data := b.buf
	b.buf = nil
	if b.sink != nil {
		b.sink(data)
	}
}
