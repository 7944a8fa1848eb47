// Package idgen mints identifiers for orders and products.
package idgen

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Next() string
}

// TimeGenerator issues millisecond timestamps as decimal strings. Successive
// calls never repeat a value within one process, even inside the same
// millisecond or if the clock steps backwards.
type TimeGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTimeGenerator() *TimeGenerator {
	return &TimeGenerator{now: time.Now}
}

func (g *TimeGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return uuid.NewString()
}

// New returns the generator for scheme ("uuid" or "time"). Unknown schemes get
// the time generator.
func New(scheme string) Generator {
	if scheme == "uuid" {
		return UUIDGenerator{}
	}
	return NewTimeGenerator()
}
