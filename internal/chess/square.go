package chess

import (
	"strings"

	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// Square is a pair of grid coordinates, including the sentinel border.
// Col 2 is the a-file and Rank 2 is the first rank.
type Square struct {
	Col  int
	Rank int
}

// Sq returns the square for a 0-based file and rank (0,0 is a1).
func Sq(file, rank int) Square {
	return Square{Col: file + Hedge, Rank: rank + Hedge}
}

// Offset returns the square dc columns and dr ranks away.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: s.Col + dc, Rank: s.Rank + dr}
}

// OnBoard reports whether the square lies in the playable 8x8 region.
func (s Square) OnBoard() bool {
	return s.Col >= Hedge && s.Col < Hedge+BoardSize &&
		s.Rank >= Hedge && s.Rank < Hedge+BoardSize
}

// InGrid reports whether the square lies anywhere in the bordered grid.
func (s Square) InGrid() bool {
	return s.Col >= 0 && s.Col < GridSize && s.Rank >= 0 && s.Rank < GridSize
}

// String returns lowercase notation such as "e4", or "-" off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col - Hedge), byte('1' + s.Rank - Hedge)})
}

// ParseSquare converts notation such as "e4" (file case-insensitive) to a
// square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &errors.NotationError{Input: text, Reason: "square must be two characters"}
	}
	file := text[0]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	rank := text[1]
	if file < 'a' || file > 'h' {
		return Square{}, &errors.NotationError{Input: text, Reason: "file must be a letter a-h"}
	}
	if rank < '1' || rank > '8' {
		return Square{}, &errors.NotationError{Input: text, Reason: "rank must be a digit 1-8"}
	}
	return Square{Col: int(file-'a') + Hedge, Rank: int(rank-'1') + Hedge}, nil
}

// MustParseSquare is like ParseSquare but panics on bad input. Intended for
// tests and constant tables.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseMove parses a square pair written as "e2e4", "e2-e4" or "e2 e4".
func ParseMove(text string) (from, to Square, err error) {
	fields := strings.Fields(strings.TrimSpace(text))
	var fromText, toText string
	switch {
	case len(fields) == 2:
		fromText, toText = fields[0], fields[1]
	case len(fields) == 1 && len(fields[0]) == 4:
		fromText, toText = fields[0][:2], fields[0][2:]
	case len(fields) == 1 && len(fields[0]) == 5 && fields[0][2] == '-':
		fromText, toText = fields[0][:2], fields[0][3:]
	default:
		return Square{}, Square{}, &errors.NotationError{Input: text, Reason: "expected a square pair such as e2e4"}
	}

	if from, err = ParseSquare(fromText); err != nil {
		return Square{}, Square{}, err
	}
	if to, err = ParseSquare(toText); err != nil {
		return Square{}, Square{}, err
	}
	return from, to, nil
}
