package holder

import "sync/atomic"

// Counter tracks how many instances were successfully constructed against it.
//
// It only ever grows. The zero value is ready to use, but a Counter must not
// be copied after first use.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter { return &Counter{} }

// Increment records one successful construction and returns the new count.
func (c *Counter) Increment() int { return int(c.n.Add(1)) }

// Load returns the current count.
func (c *Counter) Load() int { return int(c.n.Load()) }
