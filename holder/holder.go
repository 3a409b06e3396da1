package holder

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// ValueHolder wraps a single integer behind Get and Set.
//
// The value field is unexported, so code outside this package can only change
// it through Set or SetAny. Reads and writes are single atomic operations:
// a caller observes either the old value or the new one.
type ValueHolder struct {
	value   atomic.Int64
	id      int
	counter *Counter
	logger  *log.Logger
}

// Option customizes a ValueHolder at construction time.
type Option func(*options)

type options struct {
	id     int
	hasID  bool
	logger *log.Logger
}

// WithIdentifier sets the holder's identifier. Identifiers are opaque and are
// not required to be unique.
func WithIdentifier(id int) Option {
	return func(o *options) {
		o.id = id
		o.hasID = true
	}
}

// WithLogger makes the holder emit debug records for every access.
// A nil logger keeps the holder silent.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New constructs a holder with the given initial value and increments counter
// exactly once.
//
// Without WithIdentifier the identifier is the counter value after the
// increment. New panics with ErrNilCounter if counter is nil; use FromAny for an
// error instead.
func New(counter *Counter, initial int, opts ...Option) *ValueHolder {
	if counter == nil {
		panic(ErrNilCounter)
	}
	return build(counter, initial, opts)
}

// FromAny constructs a holder from an untyped initial value.
//
// If initial is not an integer it returns an InvalidArgumentError, no holder is
// created and counter is left untouched.
func FromAny(counter *Counter, initial any, opts ...Option) (*ValueHolder, error) {
	if counter == nil {
		return nil, ErrNilCounter
	}
	v, err := AsInt(initial)
	if err != nil {
		return nil, err
	}
	return build(counter, v, opts), nil
}

func build(counter *Counter, initial int, opts []Option) *ValueHolder {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	h := &ValueHolder{counter: counter, logger: o.logger}
	h.value.Store(int64(initial))

	n := counter.Increment()
	h.id = n
	if o.hasID {
		h.id = o.id
	}

	if h.logger != nil {
		h.logger.Debug("holder created", "id", h.id, "value", initial, "instances", n)
	}
	return h
}

// Get returns the current value.
func (h *ValueHolder) Get() int {
	v := int(h.value.Load())
	if h.logger != nil {
		h.logger.Debug("holder get", "id", h.id, "value", v)
	}
	return v
}

// Set replaces the value.
func (h *ValueHolder) Set(v int) {
	old := h.value.Swap(int64(v))
	if h.logger != nil {
		h.logger.Debug("holder set", "id", h.id, "from", old, "to", v)
	}
}

// SetAny replaces the value with v if v is an integer.
//
// Otherwise it returns an InvalidArgumentError and the value is unchanged.
func (h *ValueHolder) SetAny(v any) error {
	n, err := AsInt(v)
	if err != nil {
		if h.logger != nil {
			h.logger.Debug("holder set rejected", "id", h.id, "error", err)
		}
		return err
	}
	h.Set(n)
	return nil
}

// Identifier returns the identifier assigned at construction.
func (h *ValueHolder) Identifier() int { return h.id }

// Counter returns the counter this holder was constructed against.
func (h *ValueHolder) Counter() *Counter { return h.counter }
