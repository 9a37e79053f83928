package engine

import "github.com/lgbarn/mailbox-chess/internal/chess"

// Status is the classification of a position after a move.
type Status int

const (
	InProgress Status = iota
	WhiteInCheck
	BlackInCheck
	WhiteCheckmated
	BlackCheckmated
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"InProgress", "WhiteInCheck", "BlackInCheck", "WhiteCheckmated", "BlackCheckmated"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal reports whether the game has ended.
func (s Status) IsTerminal() bool {
	return s == WhiteCheckmated || s == BlackCheckmated
}

// InCheck returns the side whose king is attacked, if any. A checkmated side
// counts as in check.
func (s Status) InCheck() (chess.Colour, bool) {
	switch s {
	case WhiteInCheck, WhiteCheckmated:
		return chess.White, true
	case BlackInCheck, BlackCheckmated:
		return chess.Black, true
	}
	return chess.White, false
}

func checkStatus(colour chess.Colour, mated bool) Status {
	switch {
	case colour == chess.White && mated:
		return WhiteCheckmated
	case colour == chess.White:
		return WhiteInCheck
	case mated:
		return BlackCheckmated
	default:
		return BlackInCheck
	}
}

// ApplyMove overwrites the destination with the moving piece and empties the
// source. The move is trusted: no legality checks are made. The returned move
// records what was captured.
func ApplyMove(board *chess.Board, move chess.Move) chess.Move {
	piece := board.Get(move.From)
	move.Captured = board.Get(move.To)
	if !move.Captured.IsPiece() {
		move.Captured = chess.Empty
	}

	board.Set(move.From, chess.Empty)
	board.Set(move.To, piece)
	return move
}

// Evaluate classifies the position. The side to move is examined first: if
// its king is attacked it is in check, or checkmated when it has no legal
// move. Otherwise the other side is examined the same way. A side with no
// legal moves that is not in check is reported as InProgress.
func Evaluate(board *chess.Board, toMove chess.Colour) Status {
	for _, colour := range [2]chess.Colour{toMove, toMove.Opposite()} {
		if IsInCheck(board, colour) {
			return checkStatus(colour, !HasLegalMoves(board, colour))
		}
	}
	return InProgress
}

// Play applies a trusted move and classifies the resulting position from the
// point of view of the moving piece's opponent.
func Play(board *chess.Board, from, to chess.Square) Status {
	mover := board.Get(from)
	ApplyMove(board, chess.NewMove(from, to))
	return Evaluate(board, mover.Colour().Opposite())
}
