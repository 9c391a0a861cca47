// Package domain implements the turn-resolution and combat engine: bodies
// on a grid produce units, queued orders become in-flight forces, and
// arrivals resolve stochastically until one player remains.
package domain

import (
	"math/rand"
	"sort"
	"strconv"

	apperrors "github.com/louisbranch/starhold/internal/platform/errors"
)

var (
	// ErrTooManyBodies indicates the grid or the display alphabet cannot hold
	// the requested number of bodies.
	ErrTooManyBodies = apperrors.New(apperrors.CodeGameTooManyBodies, "too many bodies for grid")
	// ErrNoPlayers indicates a game was created without players.
	ErrNoPlayers = apperrors.New(apperrors.CodeGameNoPlayers, "at least one player is required")
	// ErrMissingRNG indicates a game was created without a random source.
	ErrMissingRNG = apperrors.New(apperrors.CodeGameMissingRNG, "random source is required")
	// ErrInvalidBody indicates a body with an off-grid or duplicate position,
	// a negative stat, or an unknown owner.
	ErrInvalidBody = apperrors.New(apperrors.CodeGameInvalidBody, "invalid body")
	// ErrBodyNotFound indicates a lookup with a stale or out-of-range body id.
	ErrBodyNotFound = apperrors.New(apperrors.CodeBodyNotFound, "body not found")
	// ErrPlayerNotFound indicates a lookup with a stale or out-of-range player id.
	ErrPlayerNotFound = apperrors.New(apperrors.CodePlayerNotFound, "player not found")
)

// Game owns the authoritative collections for one match: bodies and players
// (fixed after creation), in-flight forces and pending orders (churned every
// turn). It is the only entry point for mutating them.
//
// A Game is not safe for concurrent use. Submission order matters — earlier
// orders reduce what later orders from the same source may take — so any
// concurrent front end must funnel submissions through a single owner.
type Game struct {
	width, height int
	players       []Player
	bodies        []Body
	forces        []Force
	pending       []Order

	rng         *rand.Rand
	nextForceID ForceID
}

// NewGame assembles a game from explicit starting state. Body display names
// are assigned from the fixed alphabet in slice order, replacing whatever
// name the caller set. Randomized maps come from the setup package; tests
// and the scenario runner pass exact bodies.
func NewGame(width, height int, players []Player, bodies []Body, rng *rand.Rand) (*Game, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if rng == nil {
		return nil, ErrMissingRNG
	}
	if len(bodies) > width*height || len(bodies) > MaxBodies {
		return nil, ErrTooManyBodies
	}

	seen := make(map[Position]bool, len(bodies))
	owned := append([]Body(nil), bodies...)
	for i := range owned {
		body := &owned[i]
		if body.Position.X < 0 || body.Position.X >= width ||
			body.Position.Y < 0 || body.Position.Y >= height {
			return nil, invalidBody(i, "position outside grid")
		}
		if seen[body.Position] {
			return nil, invalidBody(i, "duplicate position")
		}
		seen[body.Position] = true
		if body.Units < 0 || body.Production < 0 {
			return nil, invalidBody(i, "negative unit or production count")
		}
		if body.Power < 0 || body.Power > 100 {
			return nil, invalidBody(i, "power outside 0-100")
		}
		if body.Owned && (body.Owner < 0 || int(body.Owner) >= len(players)) {
			return nil, invalidBody(i, "unknown owner")
		}
		body.Name = displayName(BodyID(i))
	}

	return &Game{
		width:   width,
		height:  height,
		players: append([]Player(nil), players...),
		bodies:  owned,
		rng:     rng,
	}, nil
}

func invalidBody(index int, reason string) error {
	return apperrors.WithMetadata(apperrors.CodeGameInvalidBody, "invalid body: "+reason,
		map[string]string{"body": strconv.Itoa(index)})
}

// Size returns the grid dimensions.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

// Body returns a snapshot of the body with the given id.
func (g *Game) Body(id BodyID) (Body, error) {
	if !g.validBody(id) {
		return Body{}, ErrBodyNotFound
	}
	return g.bodies[id], nil
}

// Bodies returns snapshots of every body, indexed by BodyID.
func (g *Game) Bodies() []Body {
	return append([]Body(nil), g.bodies...)
}

// Player returns a snapshot of the player with the given id.
func (g *Game) Player(id PlayerID) (Player, error) {
	if id < 0 || int(id) >= len(g.players) {
		return Player{}, ErrPlayerNotFound
	}
	return g.players[id], nil
}

// Players returns snapshots of every player, indexed by PlayerID.
func (g *Game) Players() []Player {
	return append([]Player(nil), g.players...)
}

// Forces returns snapshots of every in-flight force.
func (g *Game) Forces() []Force {
	return append([]Force(nil), g.forces...)
}

// RemainingPlayers returns, in ascending id order, every player who owns at
// least one body or has at least one force in flight.
func (g *Game) RemainingPlayers() []PlayerID {
	remaining := g.remainingSet()
	ids := make([]PlayerID, 0, len(remaining))
	for id := range remaining {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Winner returns the sole remaining player. There is no winner while two or
// more players remain, nor when nobody does.
func (g *Game) Winner() (PlayerID, bool) {
	remaining := g.RemainingPlayers()
	if len(remaining) != 1 {
		return 0, false
	}
	return remaining[0], true
}

// EndTurn advances the game by exactly one turn and returns the events the
// resolution produced, in order.
//
// The steps run in a fixed sequence: production for owned bodies, order
// materialization (units leave their sources and become forces), advancement
// of every force including the fresh ones, arrival resolution (reinforcement
// or combat), cleanup of spent forces, and elimination detection against the
// set of players remaining before the turn started.
func (g *Game) EndTurn() []Event {
	var events []Event
	before := g.remainingSet()

	for i := range g.bodies {
		if g.bodies[i].Owned {
			g.bodies[i].Units += g.bodies[i].Production
		}
	}

	for _, order := range g.pending {
		g.bodies[order.Source].Units -= order.Count
		source := g.bodies[order.Source]
		destination := g.bodies[order.Destination]
		g.forces = append(g.forces, Force{
			ID:             g.nextForceID,
			Units:          order.Count,
			Power:          source.Power,
			TurnsToArrival: TravelTime(source.Position, destination.Position),
			Destination:    order.Destination,
			Owner:          order.Player,
		})
		g.nextForceID++
	}
	g.pending = g.pending[:0]

	for i := range g.forces {
		force := &g.forces[i]
		force.TurnsToArrival--
		if force.TurnsToArrival > 0 {
			continue
		}
		destination := &g.bodies[force.Destination]
		if destination.OwnedBy(force.Owner) {
			destination.Units += force.Units
			events = append(events, Event{Type: EventReinforcementsArrived, Force: *force})
			continue
		}
		events = append(events, g.resolveCombat(force, destination))
	}

	live := g.forces[:0]
	for _, force := range g.forces {
		if force.TurnsToArrival > 0 && force.Units > 0 {
			live = append(live, force)
		}
	}
	g.forces = live

	after := g.remainingSet()
	for id := range g.players {
		pid := PlayerID(id)
		if before[pid] && !after[pid] {
			events = append(events, Event{Type: EventPlayerEliminated, PlayerID: pid, Player: g.players[id]})
		}
	}
	return events
}

func (g *Game) remainingSet() map[PlayerID]bool {
	remaining := make(map[PlayerID]bool)
	for _, body := range g.bodies {
		if body.Owned {
			remaining[body.Owner] = true
		}
	}
	for _, force := range g.forces {
		remaining[force.Owner] = true
	}
	return remaining
}

func (g *Game) validBody(id BodyID) bool {
	return id >= 0 && int(id) < len(g.bodies)
}
