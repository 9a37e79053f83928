// Package output renders positions, statuses and move lists as text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/engine"
)

// DefaultLineLength is the wrap column for move and square lists.
const DefaultLineLength = 80

// cellWidth is the printed width of one board cell, wide enough for "-6".
const cellWidth = 3

// LineWriter writes space-separated words, wrapping before maxLineLength.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard prints the playable 8x8 region as raw cell values, eighth rank
// first. Values are printed as stored: positive for White, negative for
// Black, 0 for an empty square.
func WriteBoard(w io.Writer, board *chess.Board) {
	separator := "  +" + strings.Repeat("-", chess.BoardSize*cellWidth+1) + "+"

	fmt.Fprintln(w, separator)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d |", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(w, "%*d", cellWidth, board.Get(chess.Sq(file, rank)))
		}
		fmt.Fprintln(w, " |")
	}
	fmt.Fprintln(w, separator)

	fmt.Fprint(w, "   ")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(w, "%*c", cellWidth, 'a'+file)
	}
	fmt.Fprintln(w)
}

// StatusLine describes a status for the console.
func StatusLine(status engine.Status) string {
	switch status {
	case engine.WhiteInCheck:
		return "WhiteInCheck: White is in check"
	case engine.BlackInCheck:
		return "BlackInCheck: Black is in check"
	case engine.WhiteCheckmated:
		return "WhiteCheckmated: checkmate, Black wins"
	case engine.BlackCheckmated:
		return "BlackCheckmated: checkmate, White wins"
	default:
		return status.String()
	}
}

// WriteDestinations lists the legal destinations of the piece on from.
// Captures are marked with an "x".
func WriteDestinations(w io.Writer, from chess.Square, dest engine.Destinations) {
	if dest.Len() == 0 {
		fmt.Fprintf(w, "%s: no legal moves\n", from)
		return
	}

	lw := NewLineWriter(w, DefaultLineLength)
	lw.Write(from.String() + ":")
	for _, to := range dest.Quiet {
		lw.Write(to.String())
	}
	for _, to := range dest.Captures {
		lw.Write("x" + to.String())
	}
	lw.NewLine()
}

// WriteAttackers lists the squares attacking sq.
func WriteAttackers(w io.Writer, sq chess.Square, attackers []chess.Square) {
	if len(attackers) == 0 {
		fmt.Fprintf(w, "%s: not attacked\n", sq)
		return
	}

	lw := NewLineWriter(w, DefaultLineLength)
	lw.Write(sq.String() + " attacked from")
	for _, from := range attackers {
		lw.Write(from.String())
	}
	lw.NewLine()
}
