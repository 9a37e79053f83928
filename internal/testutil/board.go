package testutil

import (
	"testing"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

var pieceLetters = map[byte]chess.Piece{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// NewBoard returns an otherwise empty board holding the listed pieces.
// Each placement is a colour letter, a piece letter and a square, e.g.
// "wKe1" or "bQh4". It calls t.Fatal on a malformed placement.
func NewBoard(t *testing.T, placements ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, p := range placements {
		if len(p) != 4 {
			t.Fatalf("bad placement %q: want e.g. wKe1", p)
		}

		var colour chess.Colour
		switch p[0] {
		case 'w':
			colour = chess.White
		case 'b':
			colour = chess.Black
		default:
			t.Fatalf("bad placement %q: colour must be w or b", p)
		}

		piece, ok := pieceLetters[p[1]]
		if !ok {
			t.Fatalf("bad placement %q: unknown piece %c", p, p[1])
		}

		sq, err := chess.ParseSquare(p[2:])
		if err != nil {
			t.Fatalf("bad placement %q: %v", p, err)
		}
		b.Set(sq, chess.MakeCell(colour, piece))
	}
	return b
}

// Squares parses square names, calling t.Fatal on bad input.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("Squares(%q): %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}
