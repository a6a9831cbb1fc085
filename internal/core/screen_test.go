package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, ColorDefault, s.GetCell(5, 5).Color)

	s.SetColor(6, 5, '#', ColorBrightRed)
	assert.Equal(t, ScreenCell{Rune: '#', Color: ColorBrightRed}, s.GetCell(6, 5))

	// Out of bounds writes are ignored.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawTextColor(0, 0, "XXXX", ColorGreen)

	s.Clear()

	for x := 0; x < 4; x++ {
		assert.Equal(t, ScreenCell{Rune: ' '}, s.GetCell(x, 0))
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "Hello")

	assert.Equal(t, "       Hel", s.Row(0), "text beyond the right edge is clipped")

	s.DrawTextColor(0, 1, "Lvl ─", ColorCyan)
	assert.Equal(t, '─', s.Get(4, 1), "multi-byte runes occupy one cell")
	assert.Equal(t, ColorCyan, s.GetCell(0, 1).Color)
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")
	assert.Equal(t, "    ab    ", s.Row(0))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	assert.Equal(t, '┌', s.Get(1, 1))
	assert.Equal(t, '┐', s.Get(5, 1))
	assert.Equal(t, '└', s.Get(1, 4))
	assert.Equal(t, '┘', s.Get(5, 4))
	assert.Equal(t, ColorGray, s.GetCell(1, 1).Color)

	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1), "top edge at x=%d", x)
		assert.Equal(t, '─', s.Get(x, 4), "bottom edge at x=%d", x)
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y), "left edge at y=%d", y)
		assert.Equal(t, '│', s.Get(5, y), "right edge at y=%d", y)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawTextColor(0, 2, "CCCCC", ColorBrightRed)

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	require.Equal(t, 8, s.Width())
	require.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"))
	assert.Equal(t, strings.Repeat(" ", 15), s.Row(5), "rows cut by the shrink stay blank")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	assert.True(t, strings.HasPrefix(row, "Test"))
	assert.Len(t, row, 10)
	assert.Equal(t, "          ", s.Row(-1))
}
