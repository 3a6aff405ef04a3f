// Package names provides the fresh-name service used by the substitution
// engine. A Supply hands out names guaranteed distinct from every name it has
// produced before; substitution relies on this to rename binders without
// introducing new collisions.
package names

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Supply generates fresh names from a monotonic counter. The zero value is
// ready to use. The counter is atomic so a Supply can be shared across
// goroutines, although the core itself is single-threaded.
type Supply struct {
	counter atomic.Uint64
	runID   string
}

// Option configures a Supply.
type Option func(*Supply)

// WithRunID salts every generated name with a random run identifier, making
// names unique across processes as well as within one. Deterministic tests
// should not use it.
func WithRunID() Option {
	return func(s *Supply) {
		s.runID = strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
}

// NewSupply returns a Supply starting at zero.
func NewSupply(opts ...Option) *Supply {
	s := &Supply{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fresh returns a name derived from base that is distinct from every name
// this Supply has returned before. Any trailing digits of base are stripped
// first, so Fresh("x12") and Fresh("x") draw from the same family.
func (s *Supply) Fresh(base string) string {
	n := s.counter.Add(1)
	stem := strings.TrimRight(base, "0123456789")
	if stem == "" {
		stem = "v"
	}
	if s.runID != "" {
		return stem + "_" + s.runID + "_" + strconv.FormatUint(n, 10)
	}
	return stem + strconv.FormatUint(n, 10)
}

// Reset restarts the counter at zero. Used by tests that compare expressions
// containing generated names.
func (s *Supply) Reset() {
	s.counter.Store(0)
}

// The default process-wide supply.
var std = NewSupply()

// Fresh returns a fresh name from the default supply.
func Fresh(base string) string { return std.Fresh(base) }

// Reset restarts the default supply at zero.
func Reset() { std.Reset() }
