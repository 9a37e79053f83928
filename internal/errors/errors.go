// Package errors provides sentinel errors and error types for mailbox-chess.
// It defines the failures that surface at the program boundary and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
//
// Move generation never returns these: a rejected candidate move is simply
// left out of the results.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed square or move string.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates there is no piece on the source square.
	ErrNoPiece = errors.New("no piece on source square")

	// ErrWrongTurn indicates a piece of the side not to move was selected.
	ErrWrongTurn = errors.New("not that side's turn")

	// ErrGameOver indicates a move was attempted after checkmate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// NotationError reports a square or move string that could not be parsed.
// It unwraps to ErrInvalidNotation.
type NotationError struct {
	Input  string // The text that was rejected
	Reason string // Why it was rejected
}

// Error returns a formatted error message.
func (e *NotationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v %q: %s", ErrInvalidNotation, e.Input, e.Reason)
	}
	return fmt.Sprintf("%v %q", ErrInvalidNotation, e.Input)
}

// Unwrap returns ErrInvalidNotation.
func (e *NotationError) Unwrap() error {
	return ErrInvalidNotation
}

// MoveError wraps errors with move context: the game, the ply and the
// squares involved.
type MoveError struct {
	Err    error  // The underlying error
	GameID string // Game identifier (if known)
	PlyNum int    // 1-based ply the move would have been (0 if not applicable)
	From   string // Source square in notation
	To     string // Destination square in notation
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
