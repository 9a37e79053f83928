// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White, -1 for Black, the sign used in the cell encoding.
func (c Colour) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// PawnDirection returns the rank step a pawn of this colour advances by.
func (c Colour) PawnDirection() int {
	return c.Sign()
}

// PawnStartRank returns the grid rank index pawns of this colour start on.
func (c Colour) PawnStartRank() int {
	if c == White {
		return Hedge + 1
	}
	return Hedge + BoardSize - 2
}

// Piece represents a chess piece type. The value doubles as the magnitude
// of the compact cell encoding.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Cell is the compact encoding of one grid cell: 0 is empty, Off marks the
// sentinel border and any other value is a piece whose sign gives the colour
// (positive White) and whose magnitude gives the Piece.
type Cell int8

const (
	Empty Cell = 0
	Off   Cell = 7
)

// MakeCell encodes a coloured piece.
func MakeCell(colour Colour, piece Piece) Cell {
	return Cell(colour.Sign() * int(piece))
}

// W creates a white piece.
func W(piece Piece) Cell {
	return MakeCell(White, piece)
}

// B creates a black piece.
func B(piece Piece) Cell {
	return MakeCell(Black, piece)
}

// IsEmpty reports whether the cell is a vacant playable square.
func (c Cell) IsEmpty() bool { return c == Empty }

// IsOff reports whether the cell belongs to the sentinel border.
func (c Cell) IsOff() bool { return c == Off }

// IsPiece reports whether the cell holds a piece.
func (c Cell) IsPiece() bool { return c != Empty && c != Off }

// Colour returns the colour of the piece in the cell. Only meaningful when
// IsPiece is true.
func (c Cell) Colour() Colour {
	if c < 0 {
		return Black
	}
	return White
}

// Piece returns the piece type held by the cell, or NoPiece.
func (c Cell) Piece() Piece {
	if !c.IsPiece() {
		return NoPiece
	}
	if c < 0 {
		return Piece(-c)
	}
	return Piece(c)
}

// Is reports whether the cell holds the given piece of the given colour.
func (c Cell) Is(colour Colour, piece Piece) bool {
	return c == MakeCell(colour, piece)
}

// Coloured converts the cell to its explicit form.
func (c Cell) Coloured() (ColouredPiece, bool) {
	if !c.IsPiece() {
		return ColouredPiece{}, false
	}
	return ColouredPiece{Colour: c.Colour(), Piece: c.Piece()}, true
}

// ColouredPiece is the explicit colour and type pair of a piece.
type ColouredPiece struct {
	Colour Colour
	Piece  Piece
}

// Cell returns the compact encoding of the piece.
func (p ColouredPiece) Cell() Cell {
	return MakeCell(p.Colour, p.Piece)
}

// String returns e.g. "White Knight".
func (p ColouredPiece) String() string {
	return p.Colour.String() + " " + p.Piece.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8
	Hedge     = 2 // Sentinel border wide enough for knight jumps
	GridSize  = Hedge + BoardSize + Hedge
)
