package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRepeatFires(t *testing.T) {
	r := KeyRepeat{Delay: 12, Interval: 4}

	tests := []struct {
		frames int
		want   bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{11, false},
		{12, true},
		{13, false},
		{16, true},
		{20, true},
		{21, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, r.Fires(tc.frames), "frames=%d", tc.frames)
	}

	assert.False(t, KeyRepeat{Delay: 2}.Fires(5), "no interval means no repeats")
}

func TestKeyRepeatAction(t *testing.T) {
	r := KeyRepeat{Delay: 12, Interval: 4}

	tests := []struct {
		name     string
		frames   int
		holdable bool
		fire     bool
		held     bool
	}{
		{"released", 0, true, false, false},
		{"first press", 1, true, true, false},
		{"first press one-shot", 1, false, true, false},
		{"before delay", 5, true, false, false},
		{"repeat", 12, true, true, true},
		{"repeat one-shot", 12, false, false, false},
		{"between repeats", 14, true, false, false},
		{"later repeat one-shot", 40, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fire, held := r.Action(tc.frames, tc.holdable)
			assert.Equal(t, tc.fire, fire)
			assert.Equal(t, tc.held, held)
		})
	}
}
