package datescan

import (
	"sync"
	"time"
)

// Profile accumulates cumulative scan time per format. Attach one to a
// Finder to see which catalog entries dominate scanning cost. Safe for
// concurrent use.
type Profile struct {
	mu     sync.Mutex
	totals map[FormatID]time.Duration
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{totals: make(map[FormatID]time.Duration)}
}

func (p *Profile) add(id FormatID, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.totals == nil {
		p.totals = make(map[FormatID]time.Duration)
	}
	p.totals[id] += d
}

// Total returns the accumulated scan time of one format.
func (p *Profile) Total(id FormatID) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totals[id]
}

// Snapshot returns a copy of all accumulated totals.
func (p *Profile) Snapshot() map[FormatID]time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[FormatID]time.Duration, len(p.totals))
	for id, d := range p.totals {
		out[id] = d
	}
	return out
}
