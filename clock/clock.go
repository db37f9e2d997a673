// Package clock supplies operation timestamps for lwwgraph replicas.
//
// The graph core never reads time on its own: every mutation carries an int64
// timestamp, and the "Now" convenience methods ask an injected Clock for one.
// Timestamps are opaque, totally ordered integers; the core only compares them.
//
// Implementations:
//
//	Wall     - Unix milliseconds from the system clock (the historical default).
//	Logical  - an atomic counter, strictly increasing, safe for concurrent use.
//	Fixed    - a constant, handy for pinning ties in tests.
//	Func     - adapter for any func() int64.
package clock

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// ErrUnknownKind is returned by Parse for an unrecognized clock name.
var ErrUnknownKind = errors.New("clock: unknown kind")

// Kind names accepted by Parse.
const (
	KindWall    = "wall"
	KindLogical = "logical"
)

// Clock produces timestamps for graph operations.
type Clock interface {
	// Now returns the timestamp for the next operation. Values must be >= 0.
	Now() int64
}

// Wall reads the system clock in Unix milliseconds.
type Wall struct{}

// Now implements Clock.
func (Wall) Now() int64 { return time.Now().UnixMilli() }

// Fixed always returns the same timestamp.
type Fixed int64

// Now implements Clock.
func (f Fixed) Now() int64 { return int64(f) }

// Func adapts a plain function to the Clock interface.
type Func func() int64

// Now implements Clock.
func (f Func) Now() int64 { return f() }

// Logical is a monotonically increasing counter clock.
// The zero value starts at 1 on the first call to Now.
type Logical struct {
	last atomic.Int64
}

// NewLogical returns a Logical clock whose first Now() returns start+1.
func NewLogical(start int64) *Logical {
	l := &Logical{}
	l.last.Store(start)

	return l
}

// Now implements Clock. Every call returns a value strictly greater than the previous one.
func (l *Logical) Now() int64 { return l.last.Add(1) }

// Observe raises the counter to at least ts, so the next Now() is > ts.
// Replicas call it after a merge to keep local writes ahead of what they have seen.
func (l *Logical) Observe(ts int64) {
	for {
		cur := l.last.Load()
		if ts <= cur || l.last.CompareAndSwap(cur, ts) {
			return
		}
	}
}

// Parse maps a configuration name to a Clock. An empty name selects Wall.
func Parse(kind string) (Clock, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindWall:
		return Wall{}, nil
	case KindLogical:
		return NewLogical(0), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
