package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFieldIsEmpty(t *testing.T) {
	f := NewField(FieldWidth, FieldHeight)

	require.Equal(t, FieldWidth, f.Width())
	require.Equal(t, FieldHeight, f.Height())
	assert.Equal(t, FieldWidth*FieldHeight, f.Count(CellEmpty))
}

func TestFieldBounds(t *testing.T) {
	f := NewField(10, 20)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 9, 19, true},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x at width", 10, 0, false},
		{"y at height", 0, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, f.InBounds(tc.x, tc.y))
		})
	}

	f.Set(10, 0, CellBlock)
	f.Set(-1, 5, CellBlock)
	assert.Equal(t, 0, f.Count(CellBlock), "out-of-bounds writes are ignored")
	assert.Equal(t, CellEmpty, f.At(42, 42))
}

func TestFieldRowOps(t *testing.T) {
	f := NewField(4, 3)
	for x := 0; x < 4; x++ {
		f.Set(x, 2, CellBlock)
	}
	f.Set(1, 1, CellBlock)

	assert.True(t, f.RowFull(2))
	assert.False(t, f.RowFull(1))
	assert.True(t, f.RowEmpty(0))
	assert.False(t, f.RowEmpty(1))
	assert.False(t, f.RowFull(7), "rows outside the field are never full")

	f.CopyRow(0, 1)
	assert.Equal(t, CellBlock, f.At(1, 0))

	f.ClearRow(2)
	assert.True(t, f.RowEmpty(2))
}

func TestFieldCloneIsIndependent(t *testing.T) {
	f := NewField(3, 3)
	f.Set(1, 1, CellHead)

	c := f.Clone()
	c.Set(1, 1, CellEmpty)
	c.Set(0, 0, CellApple)

	assert.Equal(t, CellHead, f.At(1, 1))
	assert.Equal(t, CellEmpty, f.At(0, 0))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "Apple", CellApple.String())
	assert.Equal(t, "Unknown", Cell(99).String())
}
