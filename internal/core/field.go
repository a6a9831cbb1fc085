package core

// Field dimensions shared by both games.
const (
	FieldWidth  = 10
	FieldHeight = 20
)

// Cell is the tag stored in one field cell.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBody       // snake body segment
	CellHead       // snake head
	CellApple      // snake food
	CellBlock      // locked tetromino block
	CellPiece      // falling tetromino, only present in render frames
)

// String returns a short name for the cell tag.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellBody:
		return "Body"
	case CellHead:
		return "Head"
	case CellApple:
		return "Apple"
	case CellBlock:
		return "Block"
	case CellPiece:
		return "Piece"
	default:
		return "Unknown"
	}
}

// Field is a fixed-size grid of cells stored row-major in a flat buffer.
// The owning engine is the only writer.
type Field struct {
	width  int
	height int
	cells  []Cell
}

// NewField creates an empty field of the given size.
func NewField(width, height int) Field {
	return Field{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (f Field) Width() int { return f.width }

// Height returns the number of rows.
func (f Field) Height() int { return f.height }

// InBounds reports whether (x, y) lies inside the field.
func (f Field) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// At returns the cell at (x, y), or CellEmpty outside the field.
func (f Field) At(x, y int) Cell {
	if !f.InBounds(x, y) {
		return CellEmpty
	}
	return f.cells[y*f.width+x]
}

// Set stores c at (x, y). Out-of-bounds writes are ignored.
func (f Field) Set(x, y int, c Cell) {
	if !f.InBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = c
}

// Fill sets every cell to c.
func (f Field) Fill(c Cell) {
	for i := range f.cells {
		f.cells[i] = c
	}
}

// Clone returns an independent copy of the field.
func (f Field) Clone() Field {
	clone := Field{width: f.width, height: f.height, cells: make([]Cell, len(f.cells))}
	copy(clone.cells, f.cells)
	return clone
}

// RowFull reports whether every cell of row y is occupied.
func (f Field) RowFull(y int) bool {
	row := f.row(y)
	if row == nil {
		return false
	}
	for _, c := range row {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every cell of row y is empty.
func (f Field) RowEmpty(y int) bool {
	for _, c := range f.row(y) {
		if c != CellEmpty {
			return false
		}
	}
	return true
}

// ClearRow empties row y.
func (f Field) ClearRow(y int) {
	row := f.row(y)
	for i := range row {
		row[i] = CellEmpty
	}
}

// CopyRow overwrites row dst with the contents of row src.
func (f Field) CopyRow(dst, src int) {
	if dst == src {
		return
	}
	copy(f.row(dst), f.row(src))
}

// Count returns how many cells hold c.
func (f Field) Count(c Cell) int {
	n := 0
	for _, v := range f.cells {
		if v == c {
			n++
		}
	}
	return n
}

func (f Field) row(y int) []Cell {
	if y < 0 || y >= f.height {
		return nil
	}
	return f.cells[y*f.width : (y+1)*f.width]
}
