package engine

import (
	"testing"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/errors"
	"github.com/lgbarn/mailbox-chess/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	sq := chess.MustParseSquare

	tests := []struct {
		name    string
		fen     string
		toMove  chess.Colour
		checkFn func(*chess.Board) bool
	}{
		{
			name:   "initial position",
			fen:    InitialFEN,
			toMove: chess.White,
			checkFn: func(b *chess.Board) bool {
				return *b == *chess.NewInitialBoard()
			},
		},
		{
			name:   "after 1.e4 with castling and en passant fields",
			fen:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			toMove: chess.Black,
			checkFn: func(b *chess.Board) bool {
				return b.Get(sq("e4")) == chess.W(chess.Pawn) &&
					b.Get(sq("e2")) == chess.Empty
			},
		},
		{
			name:   "sicilian defense",
			fen:    "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			toMove: chess.White,
			checkFn: func(b *chess.Board) bool {
				return b.Get(sq("c5")) == chess.B(chess.Pawn) &&
					b.Get(sq("e4")) == chess.W(chess.Pawn)
			},
		},
		{
			name:   "placement only",
			fen:    "4k3/8/8/8/8/8/8/4K3",
			toMove: chess.White,
			checkFn: func(b *chess.Board) bool {
				return b.Get(sq("e1")) == chess.W(chess.King) &&
					b.Get(sq("e8")) == chess.B(chess.King)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, toMove, tt.toMove)
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) produced an unexpected board", tt.fen)
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"too many ranks", "8/8/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w - - 0 1"},
		{"rank overflow", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"rank too short", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"empty squares overflow", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x - - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	testutil.AssertEqual(t, BoardToFEN(chess.NewInitialBoard(), chess.White), InitialFEN)

	board := testutil.NewBoard(t, "wKe1", "bKe8", "bQh4", "wPf3")
	testutil.AssertEqual(t, BoardToFEN(board, chess.Black), "4k3/8/8/8/7q/5P2/8/4K3 b - - 0 1")
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, BoardToFEN(board, toMove), fen)
		})
	}
}

func TestCellToFENLetter(t *testing.T) {
	testutil.AssertEqual(t, CellToFENLetter(chess.W(chess.Knight)), byte('N'))
	testutil.AssertEqual(t, CellToFENLetter(chess.B(chess.Knight)), byte('n'))
	testutil.AssertEqual(t, CellToFENLetter(chess.Empty), byte('?'))
}
