package domain

import (
	"errors"
	"testing"
)

func TestSubmitOrderValidation(t *testing.T) {
	tests := []struct {
		name        string
		player      PlayerID
		source      BodyID
		destination BodyID
		count       int
		want        error
	}{
		{"unknown source", 0, 9, 1, 1, ErrNoSuchBody},
		{"unknown destination", 0, 0, 9, 1, ErrNoSuchBody},
		{"source equals destination", 0, 0, 0, 1, ErrSameBody},
		{"not the owner", 1, 0, 1, 1, ErrNotYourBody},
		{"zero count", 0, 0, 1, 0, ErrInvalidCount},
		{"negative count", 0, 0, 1, -3, ErrInvalidCount},
		{"more than stationed", 0, 0, 1, 11, ErrNotEnoughUnits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := newDuelGame(t, 1)
			err := game.SubmitOrder(tt.player, tt.source, tt.destination, tt.count)
			if !errors.Is(err, tt.want) {
				t.Fatalf("SubmitOrder = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestQueuedOrdersReserveUnits verifies that earlier orders in the same turn
// reduce what later orders from the same source may take.
func TestQueuedOrdersReserveUnits(t *testing.T) {
	game := newDuelGame(t, 1)

	if err := game.SubmitOrder(0, 0, 1, 6); err != nil {
		t.Fatalf("first order: %v", err)
	}
	if err := game.SubmitOrder(0, 0, 1, 4); err != nil {
		t.Fatalf("second order should exhaust the stock exactly: %v", err)
	}
	if err := game.SubmitOrder(0, 0, 1, 1); !errors.Is(err, ErrNotEnoughUnits) {
		t.Fatalf("expected ErrNotEnoughUnits once the stock is reserved, got %v", err)
	}
}

// TestRejectedOrdersLeaveNoTrace checks that a failed submission queues
// nothing and costs nothing.
func TestRejectedOrdersLeaveNoTrace(t *testing.T) {
	game := newDuelGame(t, 1)

	if err := game.SubmitOrder(0, 0, 1, 99); !errors.Is(err, ErrNotEnoughUnits) {
		t.Fatalf("expected ErrNotEnoughUnits, got %v", err)
	}
	game.EndTurn()

	if forces := game.Forces(); len(forces) != 0 {
		t.Fatalf("rejected order produced a force: %+v", forces)
	}
	body, err := game.Body(0)
	if err != nil {
		t.Fatalf("lookup body: %v", err)
	}
	if body.Units != 20 {
		t.Fatalf("source units = %d, want 10 + production 10", body.Units)
	}
}
