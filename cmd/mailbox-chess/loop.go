package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/mailbox-chess/internal/chess"
	"github.com/lgbarn/mailbox-chess/internal/config"
	"github.com/lgbarn/mailbox-chess/internal/engine"
	"github.com/lgbarn/mailbox-chess/internal/game"
	"github.com/lgbarn/mailbox-chess/internal/output"
)

// console reads commands for one game and writes replies to cfg.OutputFile.
type console struct {
	cfg  *config.Config
	game *game.Game
	out  io.Writer
}

// Run plays one game, reading a command per line from in. It returns when
// the game reaches checkmate, a quit command is read or input ends.
// Malformed or illegal input is reported and the loop continues.
func Run(cfg *config.Config, in io.Reader) error {
	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	c := &console{cfg: cfg, game: g, out: cfg.OutputFile}
	c.showPosition()

	scanner := bufio.NewScanner(in)
	for !g.Over() {
		c.prompt()
		if !scanner.Scan() {
			break
		}
		if quit := c.handle(scanner.Text()); quit {
			break
		}
	}
	return scanner.Err()
}

// handle runs one command and reports whether the loop should stop.
func (c *console) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help":
		writeCommands(c.out)
	case "board":
		output.WriteBoard(c.out, c.game.Board)
	case "fen":
		fmt.Fprintln(c.out, c.game.FEN())
	case "moves":
		if sq, ok := c.squareArg(fields); ok {
			output.WriteDestinations(c.out, sq, c.game.Destinations(sq))
		}
	case "attackers":
		if sq, ok := c.squareArg(fields); ok {
			by := c.game.ToMove.Opposite()
			output.WriteAttackers(c.out, sq, engine.Attackers(c.game.Board, sq, by))
		}
	default:
		c.move(line)
	}
	return false
}

func (c *console) move(text string) {
	if _, err := c.game.PlayNotation(text); err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	c.showPosition()
}

// squareArg parses the single square argument of a command.
func (c *console) squareArg(fields []string) (chess.Square, bool) {
	if len(fields) != 2 {
		fmt.Fprintf(c.out, "Error: %s takes one square, e.g. %s e2\n", fields[0], fields[0])
		return chess.Square{}, false
	}
	sq, err := chess.ParseSquare(fields[1])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return chess.Square{}, false
	}
	return sq, true
}

func (c *console) showPosition() {
	if c.cfg.Output.ShowBoard {
		output.WriteBoard(c.out, c.game.Board)
	}
	if c.cfg.Output.ShowFEN {
		fmt.Fprintln(c.out, c.game.FEN())
	}
	fmt.Fprintln(c.out, output.StatusLine(c.game.Status))
}

func (c *console) prompt() {
	if c.cfg.Output.Prompt {
		fmt.Fprintf(c.out, "%v to move> ", c.game.ToMove)
	}
}

func writeCommands(w io.Writer) {
	fmt.Fprintf(w, "  e2e4, e2-e4     Move the piece on e2 to e4\n")
	fmt.Fprintf(w, "  moves <sq>      List legal destinations of the piece on <sq>\n")
	fmt.Fprintf(w, "  attackers <sq>  List pieces of the side not to move attacking <sq>\n")
	fmt.Fprintf(w, "  board           Print the board\n")
	fmt.Fprintf(w, "  fen             Print the position as FEN\n")
	fmt.Fprintf(w, "  help            Show this list\n")
	fmt.Fprintf(w, "  quit            Leave the game\n")
}
