package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testPolicy = IntervalPolicy{Base: 500 * time.Millisecond, Step: 50 * time.Millisecond, Min: 20 * time.Millisecond}

func TestLinePoints(t *testing.T) {
	tests := []struct {
		rows int
		want int
	}{
		{0, 0},
		{1, 100},
		{2, 300},
		{3, 700},
		{4, 1500},
		{5, 0},
		{-1, 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, LinePoints(tc.rows), "LinePoints(%d)", tc.rows)
	}
}

func TestIntervalPolicyFor(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, testPolicy.For(0))
	assert.Equal(t, 450*time.Millisecond, testPolicy.For(1))
	assert.Equal(t, 50*time.Millisecond, testPolicy.For(9))

	// Clamped at the floor.
	assert.Equal(t, 20*time.Millisecond, testPolicy.For(10))
	assert.Equal(t, 20*time.Millisecond, testPolicy.For(100))

	// A zero floor still yields a positive interval.
	p := IntervalPolicy{Base: 10 * time.Millisecond, Step: 10 * time.Millisecond}
	assert.Positive(t, p.For(5))
}

func TestScoreApple(t *testing.T) {
	s := NewSession(0, testPolicy)

	for i := 0; i < 4; i++ {
		s.ScoreApple(testPolicy)
	}
	assert.Equal(t, 4, s.Score)
	assert.Equal(t, 0, s.Level)
	assert.Equal(t, 500*time.Millisecond, s.Interval)

	raised := s.ScoreApple(testPolicy)
	assert.True(t, raised)
	assert.Equal(t, 5, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 450*time.Millisecond, s.Interval)
	assert.Equal(t, 5, s.HighScore)
}

func TestScoreAppleLevelCap(t *testing.T) {
	s := NewSession(0, testPolicy)
	for i := 0; i < 100; i++ {
		s.ScoreApple(testPolicy)
	}
	assert.Equal(t, LevelMax, s.Level)
	assert.Equal(t, testPolicy.For(LevelMax), s.Interval)
}

func TestScoreLines(t *testing.T) {
	s := NewSession(1000, testPolicy)

	assert.True(t, s.ScoreLines(4, testPolicy), "1500 beats 1000")
	assert.Equal(t, 1500, s.HighScore)
	assert.Equal(t, 2, s.Level)

	s.ScoreLines(0, testPolicy)
	assert.Equal(t, 1500, s.Score)

	for i := 0; i < 10; i++ {
		s.ScoreLines(4, testPolicy)
	}
	assert.Equal(t, LevelMax, s.Level, "level never exceeds the maximum")
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(7, testPolicy)
	assert.Equal(t, StateNotStarted, s.State)
	assert.Equal(t, 7, s.HighScore)

	s.TogglePause()
	assert.Equal(t, StateNotStarted, s.State, "pause before start is a no-op")

	assert.True(t, s.Start())
	assert.False(t, s.Start())
	assert.Equal(t, StateRunning, s.State)

	s.TogglePause()
	assert.Equal(t, StatePaused, s.State)
	s.TogglePause()
	assert.Equal(t, StateRunning, s.State)

	s.State = StateLost
	assert.True(t, s.State.Over())
	s.TogglePause()
	assert.Equal(t, StateLost, s.State)
}
