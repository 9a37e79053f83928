package chess

// Board is a mailbox board: the 8x8 playable area surrounded by a
// sentinel border two cells wide so that knight jumps and ray scans can step
// off the edge without bounds checks.
type Board struct {
	// Squares is indexed [col][rank], both 0 to GridSize-1 including the
	// border.
	Squares [GridSize][GridSize]Cell
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for col := 0; col < GridSize; col++ {
		for rank := 0; rank < GridSize; rank++ {
			if (Square{Col: col, Rank: rank}).OnBoard() {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(Sq(file, 0), W(backRank[file]))
		b.Set(Sq(file, 1), W(Pawn))
		b.Set(Sq(file, 6), B(Pawn))
		b.Set(Sq(file, 7), B(backRank[file]))
	}
}

// Clear empties every playable square. The border is left untouched.
func (b *Board) Clear() {
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}
}

// Get returns the cell at sq. Squares outside the grid read as Off.
func (b *Board) Get(sq Square) Cell {
	if !sq.InGrid() {
		return Off
	}
	return b.Squares[sq.Col][sq.Rank]
}

// Set places a cell value at sq. Writes outside the playable area are
// ignored so the border never changes.
func (b *Board) Set(sq Square, cell Cell) {
	if sq.OnBoard() {
		b.Squares[sq.Col][sq.Rank] = cell
	}
}

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (ColouredPiece, bool) {
	return b.Get(sq).Coloured()
}

// Put places a coloured piece on sq.
func (b *Board) Put(sq Square, piece ColouredPiece) {
	b.Set(sq, piece.Cell())
}

// FindKing returns the first king of the given colour in a1..h8 scan order.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeCell(colour, King)
	for col := Hedge; col < Hedge+BoardSize; col++ {
		for rank := Hedge; rank < Hedge+BoardSize; rank++ {
			if b.Squares[col][rank] == king {
				return Square{Col: col, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
