package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPacerDue(t *testing.T) {
	var p Pacer
	t0 := time.Unix(1000, 0)
	interval := 100 * time.Millisecond

	assert.False(t, p.Due(t0, interval, true), "first call only records the reference")
	assert.False(t, p.Due(t0.Add(99*time.Millisecond), interval, true))
	assert.True(t, p.Due(t0.Add(100*time.Millisecond), interval, true))
	assert.False(t, p.Due(t0.Add(150*time.Millisecond), interval, true), "reference moved to the last advance")
	assert.True(t, p.Due(t0.Add(200*time.Millisecond), interval, true))
}

func TestPacerFollowsClockWhileStopped(t *testing.T) {
	var p Pacer
	t0 := time.Unix(1000, 0)
	interval := 100 * time.Millisecond

	p.Due(t0, interval, true)
	assert.False(t, p.Due(t0.Add(10*time.Second), interval, false))
	assert.False(t, p.Due(t0.Add(10*time.Second+50*time.Millisecond), interval, true), "no burst after resuming")
	assert.True(t, p.Due(t0.Add(10*time.Second+100*time.Millisecond), interval, true))

	p.Reset()
	assert.False(t, p.Due(t0.Add(time.Hour), interval, true))
}
