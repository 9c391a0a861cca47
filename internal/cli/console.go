// Package cli is the line-oriented hot-seat front end: it prompts every
// remaining player for orders in turn, then resolves the turn and narrates
// the outcome.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/message"

	"github.com/louisbranch/starhold/internal/galaxy/domain"
	apperrors "github.com/louisbranch/starhold/internal/platform/errors"
)

// Console runs one game over a line-based reader and writer. Players share
// the same terminal: each is prompted in ascending id order, and the turn
// resolves once the last of them finishes.
type Console struct {
	game    *domain.Game
	in      *bufio.Scanner
	out     io.Writer
	printer *message.Printer
	log     zerolog.Logger

	current domain.PlayerID
	toMove  []domain.PlayerID
}

// NewConsole wires a console around an existing game. Construction never
// advances a turn: the first prompt goes to the lowest remaining player id,
// and a game with nobody left to prompt stays untouched until Play.
func NewConsole(game *domain.Game, in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	c := &Console{
		game:    game,
		in:      bufio.NewScanner(in),
		out:     out,
		printer: Printer(),
		log:     log,
	}
	c.resetMoves()
	if len(c.toMove) > 0 {
		c.current = c.toMove[0]
		c.toMove = c.toMove[1:]
	}
	return c
}

// Play prompts until the game produces a winner or input runs out. A closed
// input stream ends the session without error; context cancellation wins
// over further prompting.
func (c *Console) Play(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(c.game.RemainingPlayers()) == 0 {
			return nil
		}
		if winner, ok := c.game.Winner(); ok {
			player, err := c.game.Player(winner)
			if err != nil {
				return err
			}
			c.printer.Fprintf(c.out, "game.winner", player.Name)
			fmt.Fprintln(c.out)
			c.log.Info().Str("player", player.Name).Msg("game over")
			return nil
		}
		if err := c.promptOnce(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// promptOnce shows the map and help, reads one command line from the
// current player, and applies it. Command failures are reported to the
// player, not returned.
func (c *Console) promptOnce() error {
	renderMap(c.out, c.game)
	c.printer.Fprintf(c.out, "turn.help")

	player, err := c.game.Player(c.current)
	if err != nil {
		return err
	}
	c.printer.Fprintf(c.out, "turn.prompt", player.Name)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return err
		}
		return io.EOF
	}
	if err := c.command(strings.Fields(c.in.Text())); err != nil {
		fmt.Fprintln(c.out, describeError(c.printer, err))
	}
	return nil
}

func (c *Console) command(tokens []string) error {
	if len(tokens) == 0 {
		return apperrors.New(apperrors.CodeUnknown, c.printer.Sprintf("error.no_command"))
	}
	switch tokens[0] {
	case "n":
		c.advance()
		return nil
	case "i":
		renderInfo(c.printer, c.out, c.game, tokens[1:])
		return nil
	case "d":
		c.showDistances(tokens[1:])
		return nil
	case "s":
		return c.send(tokens[1:])
	default:
		return apperrors.New(apperrors.CodeUnknown, c.printer.Sprintf("error.unknown_command"))
	}
}

// send queues an order from the current player: s SOURCE DESTINATION COUNT.
func (c *Console) send(args []string) error {
	if len(args) != 3 {
		return apperrors.New(apperrors.CodeUnknown, c.printer.Sprintf("error.send_usage"))
	}
	source, err := c.game.ResolveBody(args[0])
	if err != nil {
		return err
	}
	destination, err := c.game.ResolveBody(args[1])
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(args[2])
	if err != nil {
		return apperrors.New(apperrors.CodeUnknown, c.printer.Sprintf("error.invalid_number"))
	}
	return c.game.SubmitOrder(c.current, source, destination, count)
}

// showDistances prints the travel-time matrix for the named bodies, or for
// all of them when no names are given. Unknown names are reported and
// skipped.
func (c *Console) showDistances(names []string) {
	bodies := c.game.Bodies()
	selected := bodies
	if len(names) > 0 {
		selected = selected[:0:0]
		for _, name := range names {
			id, err := c.game.ResolveBody(name)
			if err != nil {
				c.printer.Fprintf(c.out, "error.body_skipped", name, describeError(c.printer, err))
				fmt.Fprintln(c.out)
				continue
			}
			selected = append(selected, bodies[id])
		}
	}
	renderDistances(c.out, selected)
}

// advance hands the prompt to the next player still owed a move this turn,
// or resolves the turn when everyone has moved.
func (c *Console) advance() {
	if len(c.toMove) == 0 {
		c.completeTurn()
		c.resetMoves()
		if len(c.toMove) == 0 {
			return
		}
	}
	c.current = c.toMove[0]
	c.toMove = c.toMove[1:]
}

func (c *Console) completeTurn() {
	fmt.Fprint(c.out, "\n\n\n")
	c.printer.Fprintf(c.out, "turn.ended")
	fmt.Fprintln(c.out)

	for _, event := range c.game.EndTurn() {
		c.narrate(event)
	}
}

// narrate prints one resolution event and mirrors it to the log.
func (c *Console) narrate(event domain.Event) {
	switch event.Type {
	case domain.EventAttackFailed, domain.EventAttackSucceeded:
		owner := c.playerName(event.Force.Owner)
		body := c.bodyName(event.Force.Destination)
		key := "event.attack_failed"
		if event.Type == domain.EventAttackSucceeded {
			key = "event.attack_succeeded"
		}
		c.printer.Fprintf(c.out, key, owner, body)
		fmt.Fprintln(c.out)
		c.log.Info().
			Str("event", string(event.Type)).
			Str("player", owner).
			Str("body", body).
			Int("units", event.Force.Units).
			Msg("attack resolved")
	case domain.EventReinforcementsArrived:
		body := c.bodyName(event.Force.Destination)
		c.printer.Fprintf(c.out, "event.reinforced", event.Force.Units, body)
		fmt.Fprintln(c.out)
		c.log.Info().
			Str("event", string(event.Type)).
			Str("body", body).
			Int("units", event.Force.Units).
			Msg("reinforcements arrived")
	case domain.EventPlayerEliminated:
		c.printer.Fprintf(c.out, "event.eliminated", event.Player.Name)
		fmt.Fprintln(c.out)
		c.log.Info().
			Str("event", string(event.Type)).
			Str("player", event.Player.Name).
			Msg("player eliminated")
	}
}

func (c *Console) resetMoves() {
	c.toMove = c.game.RemainingPlayers()
}

func (c *Console) playerName(id domain.PlayerID) string {
	player, err := c.game.Player(id)
	if err != nil {
		return "<unknown>"
	}
	return player.Name
}

func (c *Console) bodyName(id domain.BodyID) string {
	body, err := c.game.Body(id)
	if err != nil {
		return "<unknown>"
	}
	return body.Name
}

// describeError maps engine error codes to player-facing copy, falling back
// to the raw message for anything unmapped.
func describeError(p *message.Printer, err error) string {
	switch apperrors.GetCode(err) {
	case apperrors.CodeOrderNotEnoughUnits:
		return p.Sprintf("error.order.not_enough_units")
	case apperrors.CodeOrderNotYourBody:
		return p.Sprintf("error.order.not_your_body")
	case apperrors.CodeOrderSameBody:
		return p.Sprintf("error.order.same_body")
	case apperrors.CodeOrderInvalidCount:
		return p.Sprintf("error.order.invalid_count")
	case apperrors.CodeOrderNoSuchBody, apperrors.CodeNameUnknownBody:
		return p.Sprintf("error.name.unknown")
	case apperrors.CodeNameNotSingleCharacter:
		return p.Sprintf("error.name.not_single_character")
	default:
		return err.Error()
	}
}
