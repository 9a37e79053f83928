package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

// Direction vectors shared by the attack scanner and the move generator.
var (
	knightOffsets  = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	straightDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	kingOffsets    = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	pawnCaptureDcs = [2]int{-1, 1}
)

// Checks holds the independent check status of both sides.
type Checks struct {
	White bool
	Black bool
}

// Any reports whether either side is in check.
func (c Checks) Any() bool {
	return c.White || c.Black
}

// For returns the check status of one side.
func (c Checks) For(colour chess.Colour) bool {
	if colour == chess.White {
		return c.White
	}
	return c.Black
}

// IsInCheck returns true if the given colour's king is attacked. A board
// without a king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// CheckStatus reports, for each side separately, whether its king is in
// check.
func CheckStatus(board *chess.Board) Checks {
	return Checks{
		White: IsInCheck(board, chess.White),
		Black: IsInCheck(board, chess.Black),
	}
}

// IsSquareAttacked returns true if a piece of byColour attacks sq.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	return scanAttackers(board, sq, byColour, nil)
}

// Attackers returns every square holding a piece of byColour that attacks sq,
// in a1..h8 order.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var found []chess.Square
	scanAttackers(board, sq, byColour, func(from chess.Square) {
		found = append(found, from)
	})
	slices.SortFunc(found, compareSquares)
	return found
}

// scanAttackers walks the knight offsets and the eight rays from sq. When
// report is nil it returns on the first attacker found; otherwise every
// attacker is passed to report.
func scanAttackers(board *chess.Board, sq chess.Square, byColour chess.Colour, report func(chess.Square)) bool {
	found := false
	hit := func(from chess.Square) bool {
		found = true
		if report == nil {
			return true
		}
		report(from)
		return false
	}

	// Knights
	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if board.Get(from).Is(byColour, chess.Knight) && hit(from) {
			return true
		}
	}

	// Rooks and queens along ranks and files; an adjacent king also counts.
	for _, dir := range straightDirs {
		from, cell, dist := firstOccupied(board, sq, dir)
		if !cell.IsPiece() || cell.Colour() != byColour {
			continue
		}
		switch cell.Piece() {
		case chess.Rook, chess.Queen:
			if hit(from) {
				return true
			}
		case chess.King:
			if dist == 1 && hit(from) {
				return true
			}
		}
	}

	// Bishops and queens along diagonals; at distance one a king, or a pawn
	// that captures toward sq, also counts.
	for _, dir := range diagonalDirs {
		from, cell, dist := firstOccupied(board, sq, dir)
		if !cell.IsPiece() || cell.Colour() != byColour {
			continue
		}
		switch cell.Piece() {
		case chess.Bishop, chess.Queen:
			if hit(from) {
				return true
			}
		case chess.King:
			if dist == 1 && hit(from) {
				return true
			}
		case chess.Pawn:
			// The pawn must sit one rank behind sq relative to its advance.
			if dist == 1 && dir[1] == -byColour.PawnDirection() && hit(from) {
				return true
			}
		}
	}

	return found
}

// firstOccupied steps from sq along dir and returns the first non-empty cell,
// which may be the border sentinel, with its distance in steps.
func firstOccupied(board *chess.Board, sq chess.Square, dir [2]int) (chess.Square, chess.Cell, int) {
	cur := sq
	for dist := 1; ; dist++ {
		cur = cur.Offset(dir[0], dir[1])
		if cell := board.Get(cur); !cell.IsEmpty() {
			return cur, cell, dist
		}
	}
}

// compareSquares orders squares a1, a2, ..., a8, b1, ... h8.
func compareSquares(a, b chess.Square) int {
	if a.Col != b.Col {
		return a.Col - b.Col
	}
	return a.Rank - b.Rank
}
