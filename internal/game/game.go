// Package game holds the state a caller keeps around the rules engine:
// whose turn it is, the last status and whether the game has ended. It is
// also where user-supplied moves are checked before they reach the engine.
package game

import (
	"github.com/google/uuid"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/config"
	"github.com/lgbarn/mailbox-chess/internal/engine"
	"github.com/lgbarn/mailbox-chess/internal/errors"
)

// Game is one game in progress.
type Game struct {
	ID     string
	Board  *chess.Board
	ToMove chess.Colour
	Status engine.Status
	Plies  int

	cfg *config.Config
}

// New starts a game from cfg.Game.StartFEN, or from the standard position
// when that is empty.
func New(cfg *config.Config) (*Game, error) {
	if cfg.Game.StartFEN != "" {
		return NewFromFEN(cfg, cfg.Game.StartFEN)
	}
	return start(cfg, chess.NewInitialBoard(), chess.White), nil
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return start(cfg, board, toMove), nil
}

func start(cfg *config.Config, board *chess.Board, toMove chess.Colour) *Game {
	g := &Game{
		ID:     uuid.NewString(),
		Board:  board,
		ToMove: toMove,
		cfg:    cfg,
	}
	g.Status = engine.Evaluate(board, toMove)
	cfg.Logf(config.Summary, "game %s: started, %v to move, %v\n", g.ID, toMove, g.Status)
	return g
}

// Over reports whether the game has reached checkmate.
func (g *Game) Over() bool {
	return g.Status.IsTerminal()
}

// Destinations returns the legal destinations of the piece on sq.
func (g *Game) Destinations(sq chess.Square) engine.Destinations {
	return engine.LegalDestinations(g.Board, sq)
}

// Play validates and applies a move for the side to move and returns the
// new status. Rejected moves leave the game unchanged and return an error
// wrapping ErrGameOver, ErrNoPiece, ErrWrongTurn or ErrIllegalMove.
func (g *Game) Play(from, to chess.Square) (engine.Status, error) {
	if err := g.validate(from, to); err != nil {
		g.cfg.Logf(config.Commentary, "game %s: rejected %s%s: %v\n", g.ID, from, to, err)
		return g.Status, &errors.MoveError{
			Err:    err,
			GameID: g.ID,
			PlyNum: g.Plies + 1,
			From:   from.String(),
			To:     to.String(),
		}
	}

	g.Status = engine.Play(g.Board, from, to)
	g.Plies++
	g.ToMove = g.ToMove.Opposite()

	g.cfg.Logf(config.Commentary, "game %s: ply %d %s%s, %v\n", g.ID, g.Plies, from, to, g.Status)
	if g.Over() {
		g.cfg.Logf(config.Summary, "game %s: %v after %d plies\n", g.ID, g.Status, g.Plies)
	}
	return g.Status, nil
}

// PlayNotation parses a square pair such as "e2e4" and plays it.
func (g *Game) PlayNotation(text string) (engine.Status, error) {
	from, to, err := chess.ParseMove(text)
	if err != nil {
		return g.Status, err
	}
	return g.Play(from, to)
}

func (g *Game) validate(from, to chess.Square) error {
	if g.Over() {
		return errors.ErrGameOver
	}
	piece, ok := g.Board.PieceAt(from)
	if !ok {
		return errors.ErrNoPiece
	}
	if piece.Colour != g.ToMove {
		return errors.ErrWrongTurn
	}
	if !g.Destinations(from).Contains(to) {
		return errors.ErrIllegalMove
	}
	return nil
}

// FEN returns the current position with the side to move.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.Board, g.ToMove)
}
