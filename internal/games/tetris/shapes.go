package tetris

import "github.com/vovakirdan/brickgame/internal/core"

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindO Kind = iota
	KindI
	KindZ
	KindS
	KindL
	KindJ
	KindT
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindI:
		return "I"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindT:
		return "T"
	default:
		return "?"
	}
}

// Shape is a 4x4 occupancy matrix indexed [row][column].
type Shape [4][4]bool

// catalog holds the spawn orientation of every kind. Row 0 is always empty.
var catalog = [kindCount]Shape{
	KindO: parseShape("....", ".##.", ".##.", "...."),
	KindI: parseShape("....", "####", "....", "...."),
	KindZ: parseShape("....", "##..", ".##.", "...."),
	KindS: parseShape("....", ".##.", "##..", "...."),
	KindL: parseShape("....", "###.", "#...", "...."),
	KindJ: parseShape("....", "###.", "..#.", "...."),
	KindT: parseShape("....", "###.", ".#..", "...."),
}

func parseShape(rows ...string) Shape {
	var s Shape
	for y, row := range rows {
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// ShapeOf returns the spawn orientation of k.
func ShapeOf(k Kind) Shape {
	return catalog[k]
}

// Rotate returns the shape turned a quarter turn: rotated[y][x] = s[3-x][y].
func (s Shape) Rotate() Shape {
	var r Shape
	for y := range 4 {
		for x := range 4 {
			r[y][x] = s[3-x][y]
		}
	}
	return r
}

// Cells returns the field coordinates the shape covers at origin.
func (s Shape) Cells(origin core.Point) []core.Point {
	cells := make([]core.Point, 0, 4)
	for y := range 4 {
		for x := range 4 {
			if s[y][x] {
				cells = append(cells, core.Point{X: origin.X + x, Y: origin.Y + y})
			}
		}
	}
	return cells
}

// Piece is the falling tetromino: a shape placed at a field origin.
type Piece struct {
	Kind   Kind
	Shape  Shape
	Origin core.Point
}
