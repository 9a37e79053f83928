package chess

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square

	// The cell captured by the move (Empty if none). Filled in when the
	// move is applied or generated.
	Captured Cell
}

// NewMove returns a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsCapture reports whether the move took a piece.
func (m Move) IsCapture() bool {
	return m.Captured.IsPiece()
}

// String returns long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
