package domain

import apperrors "github.com/louisbranch/starhold/internal/platform/errors"

var (
	// ErrNoSuchBody indicates an order names a body id outside the game.
	ErrNoSuchBody = apperrors.New(apperrors.CodeOrderNoSuchBody, "no such body")
	// ErrSameBody indicates an order names the same body as source and destination.
	ErrSameBody = apperrors.New(apperrors.CodeOrderSameBody, "source and destination are the same body")
	// ErrNotYourBody indicates the order's source is not owned by the player.
	ErrNotYourBody = apperrors.New(apperrors.CodeOrderNotYourBody, "source body is not owned by player")
	// ErrInvalidCount indicates a non-positive unit count.
	ErrInvalidCount = apperrors.New(apperrors.CodeOrderInvalidCount, "unit count must be greater than zero")
	// ErrNotEnoughUnits indicates the source lacks unqueued units to cover the order.
	ErrNotEnoughUnits = apperrors.New(apperrors.CodeOrderNotEnoughUnits, "not enough unqueued units at source")
)

// Order is a queued intent to move units between bodies. Orders accumulate
// during a turn and are materialized into forces when the turn ends; no
// units move before then.
type Order struct {
	Player      PlayerID
	Source      BodyID
	Destination BodyID
	Count       int
}

// SubmitOrder queues an order for the next turn resolution.
//
// Validation runs before any mutation, in a fixed sequence: both bodies must
// exist, the source and destination must differ, the source must be owned by
// player, the count must be positive, and the count must fit within the
// source's unqueued units (current units minus all orders already queued
// against that source this turn). A failed submission leaves the queue and
// every body untouched.
//
// Units are not deducted on submission; deduction happens when the order
// materializes at turn end. Queued counts still reduce what later orders
// from the same source may take, so a body's units can be split across
// several orders without ever over-committing.
func (g *Game) SubmitOrder(player PlayerID, source, destination BodyID, count int) error {
	if !g.validBody(source) || !g.validBody(destination) {
		return ErrNoSuchBody
	}
	if source == destination {
		return ErrSameBody
	}
	if !g.bodies[source].OwnedBy(player) {
		return ErrNotYourBody
	}
	if count <= 0 {
		return ErrInvalidCount
	}
	if count > g.bodies[source].Units-g.queuedUnits(source) {
		return ErrNotEnoughUnits
	}

	g.pending = append(g.pending, Order{
		Player:      player,
		Source:      source,
		Destination: destination,
		Count:       count,
	})
	return nil
}

// queuedUnits sums the counts of all pending orders against a source body.
func (g *Game) queuedUnits(source BodyID) int {
	total := 0
	for _, order := range g.pending {
		if order.Source == source {
			total += order.Count
		}
	}
	return total
}
