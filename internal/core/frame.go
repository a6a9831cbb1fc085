package core

// Preview is a 4x4 occupancy mask, used for the next-piece preview.
type Preview [4][4]bool

// Frame is a read-only copy of everything a presentation adapter draws.
type Frame struct {
	Field   Field    // Cells to paint; tetromino frames include the falling piece as CellPiece
	Next    *Preview // Next tetromino, nil for snake
	Session Session
}
