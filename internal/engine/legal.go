package engine

import "github.com/lgbarn/mailbox-chess/internal/chess"

// MoveResult classifies a single candidate move.
type MoveResult int

const (
	OffBoard         MoveResult = iota // Destination is a border sentinel
	OwnPiece                           // Destination holds a piece of the mover's colour
	Quiet                              // Destination is empty and the move is legal
	Capture                            // Destination holds an opposing piece and the move is legal
	SelfCheckQuiet                     // Would be Quiet, but leaves the mover's king attacked
	SelfCheckCapture                   // Would be Capture, but leaves the mover's king attacked
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	names := []string{"OffBoard", "OwnPiece", "Quiet", "Capture", "SelfCheckQuiet", "SelfCheckCapture"}
	if r >= 0 && int(r) < len(names) {
		return names[r]
	}
	return "Unknown"
}

// Legal reports whether the move may be played.
func (r MoveResult) Legal() bool {
	return r == Quiet || r == Capture
}

// Continues reports whether a sliding piece may keep scanning past the
// destination, i.e. the destination was empty.
func (r MoveResult) Continues() bool {
	return r == Quiet || r == SelfCheckQuiet
}

// Classify decides what moving the piece on from to the square to would do.
// It checks the destination only; piece geometry is the caller's business.
func Classify(board *chess.Board, from, to chess.Square) MoveResult {
	mover := board.Get(from)
	target := board.Get(to)

	if target.IsOff() {
		return OffBoard
	}
	if target.IsPiece() && target.Colour() == mover.Colour() {
		return OwnPiece
	}

	if target.IsEmpty() {
		if LeavesKingInCheck(board, from, to) {
			return SelfCheckQuiet
		}
		return Quiet
	}
	if LeavesKingInCheck(board, from, to) {
		return SelfCheckCapture
	}
	return Capture
}

// LeavesKingInCheck makes the move on a copy of the board and reports
// whether the mover's own king is attacked afterwards.
func LeavesKingInCheck(board *chess.Board, from, to chess.Square) bool {
	mover := board.Get(from)
	if !mover.IsPiece() {
		return false
	}

	testBoard := board.Clone()
	testBoard.Set(to, mover)
	testBoard.Set(from, chess.Empty)

	return IsInCheck(testBoard, mover.Colour())
}
