package core

import "time"

// Pacer decides when an engine auto-advances. It remembers the time of the
// previous advance; while the game is not running it follows the clock so a
// resumed game never advances in a burst.
type Pacer struct {
	last time.Time
}

// Due reports whether interval has elapsed since the previous advance and,
// if so, records now as the new reference.
func (p *Pacer) Due(now time.Time, interval time.Duration, running bool) bool {
	if !running || p.last.IsZero() {
		p.last = now
		return false
	}
	if now.Sub(p.last) < interval {
		return false
	}
	p.last = now
	return true
}

// Reset forgets the previous advance.
func (p *Pacer) Reset() {
	p.last = time.Time{}
}
