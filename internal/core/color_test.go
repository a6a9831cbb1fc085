package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorANSI(t *testing.T) {
	assert.Equal(t, "", ColorDefault.ANSI())
	assert.Equal(t, "10", ColorBrightGreen.ANSI())
	assert.Equal(t, "245", ColorGray.ANSI())
	assert.Equal(t, "", Color(200).ANSI(), "out of palette falls back to default")

	for c := ColorGreen; c <= ColorGray; c++ {
		assert.NotEmpty(t, c.ANSI(), "colour %d has no code", c)
	}
}
