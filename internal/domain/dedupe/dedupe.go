// Package dedupe tracks which games a feed has already produced, so a
// scrape that overlaps an earlier one cannot replay the same game twice.
package dedupe

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/okian/hoopelo/internal/domain/model"
)

// Deduper records seen game keys.
type Deduper interface {
	// SeenAndRecord reports whether key was already seen and records it
	// if not.
	SeenAndRecord(ctx context.Context, key string) bool

	Size() int64
}

// inMemoryDeduper keeps keys in a map. When maxSize > 0 the oldest key
// is evicted once the set is full; otherwise it grows without bound.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	order   []string // insertion ring, bounded mode only
	next    int
	maxSize int
	size    atomic.Int64
}

// NewInMemoryDeduper creates an unbounded deduper unless WithMaxSize says otherwise.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{})
	if d.maxSize > 0 {
		d.order = make([]string, 0, d.maxSize)
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}

	if d.maxSize > 0 {
		if len(d.order) < d.maxSize {
			d.order = append(d.order, key)
		} else {
			delete(d.seen, d.order[d.next])
			d.size.Add(-1)
			d.order[d.next] = key
			d.next = (d.next + 1) % d.maxSize
		}
	}
	d.seen[key] = struct{}{}
	d.size.Add(1)
	return false
}

func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}

// Key identifies the game m describes. The box score link is unique per
// game; without one the date and both team names are used. ok is false
// when m carries neither, since the same pairing may meet many times.
func Key(m model.Match) (key string, ok bool) {
	if m.BoxScore != "" {
		return m.BoxScore, true
	}
	if m.Date.IsZero() {
		return "", false
	}
	return strings.Join([]string{m.Date.Format("2006-01-02"), m.Visitor, m.Home}, "|"), true
}
