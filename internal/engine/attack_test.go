package engine

import (
	"testing"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/testutil"
)

func TestCheckStatus_InitialBoard(t *testing.T) {
	board := chess.NewInitialBoard()
	testutil.AssertEqual(t, CheckStatus(board), Checks{})
	testutil.AssertFalse(t, CheckStatus(board).Any())
}

func TestIsInCheck_RookOnOpenFile(t *testing.T) {
	board := testutil.NewBoard(t, "bKe8", "wRe1", "wKa1")
	testutil.AssertTrue(t, IsInCheck(board, chess.Black), "rook on open e-file")
	testutil.AssertFalse(t, IsInCheck(board, chess.White))

	// Any piece of either colour between rook and king removes the check.
	for _, between := range []string{"e2", "e3", "e4", "e5", "e6", "e7"} {
		for _, blocker := range []chess.Cell{chess.W(chess.Pawn), chess.B(chess.Knight)} {
			blocked := board.Clone()
			blocked.Set(chess.MustParseSquare(between), blocker)
			testutil.AssertFalse(t, IsInCheck(blocked, chess.Black), "blocker %d on %s", blocker, between)
		}
	}
}

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name       string
		placements []string
		target     string
		by         chess.Colour
		want       bool
	}{
		{"knight attacks", []string{"wNf6"}, "e8", chess.White, true},
		{"knight does not attack", []string{"wNe6"}, "e8", chess.White, false},
		{"own knight ignored", []string{"bNf6"}, "e8", chess.White, false},

		{"white pawn attacks up", []string{"wPd4"}, "e5", chess.White, true},
		{"white pawn does not attack down", []string{"wPd6"}, "e5", chess.White, false},
		{"black pawn attacks down", []string{"bPd6"}, "e5", chess.Black, true},
		{"black pawn does not attack up", []string{"bPd4"}, "e5", chess.Black, false},
		{"pawn does not attack ahead", []string{"wPe4"}, "e5", chess.White, false},
		{"pawn does not attack at distance", []string{"wPc3"}, "e5", chess.White, false},

		{"adjacent king orthogonal", []string{"wKe4"}, "e5", chess.White, true},
		{"adjacent king diagonal", []string{"wKd4"}, "e5", chess.White, true},
		{"distant king", []string{"wKe3"}, "e5", chess.White, false},

		{"bishop on diagonal", []string{"bBa7"}, "g1", chess.Black, true},
		{"bishop blocked by own piece", []string{"bBa7", "bPd4"}, "g1", chess.Black, false},
		{"bishop blocked by target's piece", []string{"bBa7", "wPf2"}, "g1", chess.Black, false},
		{"bishop on file", []string{"bBg8"}, "g1", chess.Black, false},

		{"rook on rank", []string{"wRa5"}, "h5", chess.White, true},
		{"rook on diagonal", []string{"wRa1"}, "h8", chess.White, false},
		{"queen on rank", []string{"wQa5"}, "h5", chess.White, true},
		{"queen on diagonal", []string{"wQa1"}, "h8", chess.White, true},
		{"queen blocked", []string{"wQa1", "bNd4"}, "h8", chess.White, false},
		{"queen knight-jump away", []string{"wQf7"}, "h8", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.NewBoard(t, tt.placements...)
			got := IsSquareAttacked(board, chess.MustParseSquare(tt.target), tt.by)
			if got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.target, tt.by, got, tt.want)
			}
		})
	}
}

func TestCheckStatus_BothSides(t *testing.T) {
	// Kings side by side: an illegal position, but neither side is hidden.
	board := testutil.NewBoard(t, "wKe4", "bKe5")
	testutil.AssertEqual(t, CheckStatus(board), Checks{White: true, Black: true})
	testutil.AssertTrue(t, CheckStatus(board).For(chess.Black))
}

func TestIsInCheck_NoKing(t *testing.T) {
	board := testutil.NewBoard(t, "wQe1")
	testutil.AssertFalse(t, IsInCheck(board, chess.Black))
}

func TestAttackers(t *testing.T) {
	board := testutil.NewBoard(t,
		"wQa4", "wPd3", "wRe1", "wNf2", "wKd5", "wBh7", // attackers of e4
		"wBc1", "wNa1", "bPe3", // not attacking e4
	)
	got := Attackers(board, chess.MustParseSquare("e4"), chess.White)
	testutil.AssertEqual(t, testutil.SquareList(got), "a4 d3 d5 f2 h7")

	// The black pawn on e3 blocks the rook; remove it and the rook joins in.
	board.Set(chess.MustParseSquare("e3"), chess.Empty)
	got = Attackers(board, chess.MustParseSquare("e4"), chess.White)
	testutil.AssertEqual(t, testutil.SquareList(got), "a4 d3 d5 e1 f2 h7")

	testutil.AssertEqual(t, len(Attackers(board, chess.MustParseSquare("e4"), chess.Black)), 0)
}
