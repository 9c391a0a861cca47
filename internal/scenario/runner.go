package scenario

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/starhold/internal/galaxy/domain"
	apperrors "github.com/louisbranch/starhold/internal/platform/errors"
	"github.com/louisbranch/starhold/internal/platform/random"
)

// defaultTurnLimit caps a scenario that never names one.
const defaultTurnLimit = 100

// Result summarizes a finished replay.
type Result struct {
	Scenario string
	Seed     int64
	Turns    int
	Winner   string
	Won      bool
	Events   []domain.Event
}

// Run replays a scenario to its conclusion: the game advances turn by turn,
// submitting each scripted turn's orders first and empty turns once the
// script runs out, until a winner emerges or the turn limit is reached.
// The scenario is validated in full before the first turn runs.
func Run(ctx context.Context, scenario *Scenario, log zerolog.Logger) (*Result, error) {
	ctx, span := otel.Tracer("starhold/scenario").Start(ctx, "scenario.replay",
		trace.WithAttributes(attribute.String("scenario", scenario.Name)))
	defer span.End()

	players, byName, err := scenarioPlayers(scenario)
	if err != nil {
		return nil, err
	}
	if err := validateOrders(scenario, byName); err != nil {
		return nil, err
	}

	rng, seed, err := random.NewSeededRNG(scenario.Seed)
	if err != nil {
		return nil, err
	}

	bodies := make([]domain.Body, len(scenario.Bodies))
	for i, decl := range scenario.Bodies {
		body := domain.Body{
			Units:      decl.Units,
			Power:      decl.Power,
			Production: decl.Production,
			Position:   domain.Position{X: decl.X, Y: decl.Y},
		}
		if decl.Owner != "" {
			body.Owner = byName[decl.Owner]
			body.Owned = true
		}
		bodies[i] = body
	}

	game, err := domain.NewGame(scenario.Width, scenario.Height, players, bodies, rng)
	if err != nil {
		return nil, err
	}

	limit := scenario.TurnLimit
	if limit <= 0 {
		limit = defaultTurnLimit
	}

	result := &Result{Scenario: scenario.Name, Seed: seed}
	log.Info().
		Str("scenario", scenario.Name).
		Int64("seed", seed).
		Int("players", len(players)).
		Int("bodies", len(bodies)).
		Msg("replay started")

	for turn := 0; turn < limit; turn++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if turn < len(scenario.Turns) {
			for _, order := range scenario.Turns[turn].Orders {
				if err := submit(game, byName, order); err != nil {
					return nil, apperrors.Wrap(apperrors.CodeScenarioInvalid,
						"turn "+strconv.Itoa(turn+1)+": order rejected", err)
				}
			}
		}

		events := game.EndTurn()
		result.Turns = turn + 1
		result.Events = append(result.Events, events...)
		for _, event := range events {
			logEvent(log, game, turn+1, event)
		}

		if winner, ok := game.Winner(); ok {
			player, err := game.Player(winner)
			if err != nil {
				return nil, err
			}
			result.Winner = player.Name
			result.Won = true
			log.Info().
				Str("scenario", scenario.Name).
				Str("player", player.Name).
				Int("turns", result.Turns).
				Msg("replay finished")
			return result, nil
		}
	}

	log.Info().
		Str("scenario", scenario.Name).
		Int("turns", result.Turns).
		Msg("replay hit turn limit")
	return result, nil
}

func scenarioPlayers(scenario *Scenario) ([]domain.Player, map[string]domain.PlayerID, error) {
	if scenario.Width <= 0 || scenario.Height <= 0 {
		return nil, nil, apperrors.New(apperrors.CodeScenarioInvalid, "grid size is required")
	}
	players := make([]domain.Player, len(scenario.Players))
	byName := make(map[string]domain.PlayerID, len(scenario.Players))
	for i, name := range scenario.Players {
		if name == "" {
			return nil, nil, apperrors.New(apperrors.CodeScenarioInvalid, "player name is required")
		}
		if _, dup := byName[name]; dup {
			return nil, nil, apperrors.WithMetadata(apperrors.CodeScenarioInvalid,
				"duplicate player name", map[string]string{"player": name})
		}
		players[i] = domain.Player{Name: name}
		byName[name] = domain.PlayerID(i)
	}
	for _, decl := range scenario.Bodies {
		if decl.Owner == "" {
			continue
		}
		if _, ok := byName[decl.Owner]; !ok {
			return nil, nil, apperrors.WithMetadata(apperrors.CodeScenarioUnknownPlayer,
				"body owner is not a declared player", map[string]string{"player": decl.Owner})
		}
	}
	return players, byName, nil
}

// validateOrders checks every scripted order against the declared players
// and bodies. Body names follow the engine's assignment: one character from
// the display alphabet per declared body, in order.
func validateOrders(scenario *Scenario, byName map[string]domain.PlayerID) error {
	for _, turn := range scenario.Turns {
		for _, order := range turn.Orders {
			if _, ok := byName[order.Player]; !ok {
				return apperrors.WithMetadata(apperrors.CodeScenarioUnknownPlayer,
					"order names an unknown player", map[string]string{"player": order.Player})
			}
			for _, name := range []string{order.From, order.To} {
				if _, err := declaredBody(scenario, name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func declaredBody(scenario *Scenario, name string) (domain.BodyID, error) {
	if len(name) != 1 {
		return 0, apperrors.WithMetadata(apperrors.CodeScenarioUnknownBody,
			"body names are a single character", map[string]string{"body": name})
	}
	for i := 0; i < len(scenario.Bodies) && i < domain.MaxBodies; i++ {
		if displayName(i) == name {
			return domain.BodyID(i), nil
		}
	}
	return 0, apperrors.WithMetadata(apperrors.CodeScenarioUnknownBody,
		"order names an undeclared body", map[string]string{"body": name})
}

func displayName(index int) string {
	return string(rune('A' + index))
}

func submit(game *domain.Game, byName map[string]domain.PlayerID, order OrderDecl) error {
	source, err := game.ResolveBody(order.From)
	if err != nil {
		return err
	}
	destination, err := game.ResolveBody(order.To)
	if err != nil {
		return err
	}
	return game.SubmitOrder(byName[order.Player], source, destination, order.Units)
}

func logEvent(log zerolog.Logger, game *domain.Game, turn int, event domain.Event) {
	entry := log.Info().Int("turn", turn).Str("event", string(event.Type))
	switch event.Type {
	case domain.EventPlayerEliminated:
		entry = entry.Str("player", event.Player.Name)
	default:
		if body, err := game.Body(event.Force.Destination); err == nil {
			entry = entry.Str("body", body.Name)
		}
		entry = entry.Int("units", event.Force.Units)
	}
	entry.Msg("turn resolved")
}
