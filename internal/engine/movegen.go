package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mailbox-chess/internal/chess"
)

// Destinations holds the legal target squares of one piece, split into
// moves onto empty squares and captures.
type Destinations struct {
	Quiet    []chess.Square
	Captures []chess.Square
}

// Len returns the total number of destinations.
func (d Destinations) Len() int {
	return len(d.Quiet) + len(d.Captures)
}

// All returns the quiet destinations followed by the captures.
func (d Destinations) All() []chess.Square {
	all := make([]chess.Square, 0, d.Len())
	all = append(all, d.Quiet...)
	return append(all, d.Captures...)
}

// Contains reports whether sq is one of the destinations.
func (d Destinations) Contains(sq chess.Square) bool {
	return slices.Contains(d.Quiet, sq) || slices.Contains(d.Captures, sq)
}

// add records a candidate by its classification and reports whether a
// sliding scan may continue beyond it.
func (d *Destinations) add(to chess.Square, result MoveResult) bool {
	switch result {
	case Quiet:
		d.Quiet = append(d.Quiet, to)
	case Capture:
		d.Captures = append(d.Captures, to)
	}
	return result.Continues()
}

// LegalDestinations returns the legal destinations of the piece on from.
// An empty or off-board square yields no destinations.
func LegalDestinations(board *chess.Board, from chess.Square) Destinations {
	var dest Destinations
	cell := board.Get(from)
	if !cell.IsPiece() {
		return dest
	}

	switch cell.Piece() {
	case chess.Pawn:
		pawnDestinations(board, from, cell.Colour(), &dest)
	case chess.Knight:
		stepDestinations(board, from, knightOffsets[:], &dest)
	case chess.Bishop:
		slidingDestinations(board, from, diagonalDirs[:], &dest)
	case chess.Rook:
		slidingDestinations(board, from, straightDirs[:], &dest)
	case chess.Queen:
		slidingDestinations(board, from, diagonalDirs[:], &dest)
		slidingDestinations(board, from, straightDirs[:], &dest)
	case chess.King:
		stepDestinations(board, from, kingOffsets[:], &dest)
	}
	return dest
}

// stepDestinations tests each offset once, for knights and kings.
func stepDestinations(board *chess.Board, from chess.Square, offsets [][2]int, dest *Destinations) {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		dest.add(to, Classify(board, from, to))
	}
}

// slidingDestinations walks each direction until the ray is blocked.
// An empty square that is illegal for self-check does not block the ray.
func slidingDestinations(board *chess.Board, from chess.Square, dirs [][2]int, dest *Destinations) {
	for _, dir := range dirs {
		to := from
		for {
			to = to.Offset(dir[0], dir[1])
			if !dest.add(to, Classify(board, from, to)) {
				break
			}
		}
	}
}

// pawnDestinations handles single and double pushes and diagonal captures.
func pawnDestinations(board *chess.Board, from chess.Square, colour chess.Colour, dest *Destinations) {
	dir := colour.PawnDirection()

	// Pushes only ever land on empty squares.
	one := from.Offset(0, dir)
	if board.Get(one).IsEmpty() {
		dest.add(one, Classify(board, from, one))

		if from.Rank == colour.PawnStartRank() {
			two := from.Offset(0, 2*dir)
			if board.Get(two).IsEmpty() {
				dest.add(two, Classify(board, from, two))
			}
		}
	}

	// Diagonals only ever capture.
	for _, dc := range pawnCaptureDcs {
		to := from.Offset(dc, dir)
		if target := board.Get(to); target.IsPiece() && target.Colour() != colour {
			dest.add(to, Classify(board, from, to))
		}
	}
}

// LegalMoves returns every legal move for colour. Sources are visited in
// a1..h8 order and each piece's quiet moves precede its captures.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forEachPiece(board, colour, func(from chess.Square) bool {
		dest := LegalDestinations(board, from)
		for _, to := range dest.Quiet {
			moves = append(moves, chess.NewMove(from, to))
		}
		for _, to := range dest.Captures {
			moves = append(moves, chess.Move{From: from, To: to, Captured: board.Get(to)})
		}
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachPiece(board, colour, func(from chess.Square) bool {
		found = LegalDestinations(board, from).Len() > 0
		return !found
	})
	return found
}

// forEachPiece calls fn with the square of every piece of colour until fn
// returns false.
func forEachPiece(board *chess.Board, colour chess.Colour, fn func(chess.Square) bool) {
	for col := chess.Hedge; col < chess.Hedge+chess.BoardSize; col++ {
		for rank := chess.Hedge; rank < chess.Hedge+chess.BoardSize; rank++ {
			cell := board.Squares[col][rank]
			if !cell.IsPiece() || cell.Colour() != colour {
				continue
			}
			if !fn(chess.Square{Col: col, Rank: rank}) {
				return
			}
		}
	}
}
