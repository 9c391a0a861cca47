package domain

import "testing"

// TestFullPowerDefenderStopsPowerlessAttacker pins the degenerate matchup:
// a defender that hits every round against an attacker that never hits must
// always win, whatever the seed.
func TestFullPowerDefenderStopsPowerlessAttacker(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		players := []Player{{Name: "Ada"}, {Name: "Grace"}}
		bodies := []Body{
			{Units: 5, Power: 0, Production: 0, Position: Position{0, 0}, Owner: 0, Owned: true},
			{Units: 3, Power: 100, Production: 0, Position: Position{1, 0}, Owner: 1, Owned: true},
		}
		game := newTestGame(t, 2, 1, players, bodies, seed)

		if err := game.SubmitOrder(0, 0, 1, 5); err != nil {
			t.Fatalf("seed %d: submit: %v", seed, err)
		}
		events := game.EndTurn()

		if len(events) != 1 || events[0].Type != EventAttackFailed {
			t.Fatalf("seed %d: expected attack.failed, got %+v", seed, events)
		}
		if events[0].Force.Units != 0 {
			t.Fatalf("seed %d: failed force should be empty, has %d units", seed, events[0].Force.Units)
		}
		destination, err := game.Body(1)
		if err != nil {
			t.Fatalf("seed %d: lookup body: %v", seed, err)
		}
		if !destination.OwnedBy(1) || destination.Units != 3 {
			t.Fatalf("seed %d: defender should hold untouched, got %+v", seed, destination)
		}
	}
}

// TestPowerlessDuelDecidedByNumbers covers the matchup where neither side
// can ever land a hit: the attacker captures only with strictly more units.
func TestPowerlessDuelDecidedByNumbers(t *testing.T) {
	run := func(t *testing.T, count int) []Event {
		t.Helper()
		players := []Player{{Name: "Ada"}}
		bodies := []Body{
			{Units: 10, Power: 0, Production: 0, Position: Position{0, 0}, Owner: 0, Owned: true},
			{Units: 3, Power: 0, Position: Position{1, 0}},
		}
		game := newTestGame(t, 2, 1, players, bodies, 1)
		if err := game.SubmitOrder(0, 0, 1, count); err != nil {
			t.Fatalf("submit: %v", err)
		}
		return game.EndTurn()
	}

	t.Run("more units capture", func(t *testing.T) {
		events := run(t, 5)
		if len(events) != 1 || events[0].Type != EventAttackSucceeded {
			t.Fatalf("expected attack.succeeded, got %+v", events)
		}
		if events[0].Force.Units != 5 {
			t.Fatalf("capturing force should keep its 5 units, got %d", events[0].Force.Units)
		}
	})

	t.Run("equal units fail", func(t *testing.T) {
		events := run(t, 3)
		if len(events) != 1 || events[0].Type != EventAttackFailed {
			t.Fatalf("expected attack.failed, got %+v", events)
		}
	})
}

// TestCaptureTransfersOwnershipAndGarrison verifies what a successful attack
// leaves behind: the body belongs to the attacker and holds exactly the
// force's surviving units.
func TestCaptureTransfersOwnershipAndGarrison(t *testing.T) {
	players := []Player{{Name: "Ada"}, {Name: "Grace"}}
	bodies := []Body{
		{Units: 20, Power: 100, Production: 0, Position: Position{0, 0}, Owner: 0, Owned: true},
		{Units: 0, Power: 0, Production: 0, Position: Position{1, 0}, Owner: 1, Owned: true},
	}
	game := newTestGame(t, 2, 1, players, bodies, 9)

	if err := game.SubmitOrder(0, 0, 1, 8); err != nil {
		t.Fatalf("submit: %v", err)
	}
	events := game.EndTurn()

	if events[0].Type != EventAttackSucceeded {
		t.Fatalf("expected attack.succeeded, got %+v", events)
	}
	destination, err := game.Body(1)
	if err != nil {
		t.Fatalf("lookup body: %v", err)
	}
	if !destination.OwnedBy(0) {
		t.Fatalf("captured body should belong to the attacker, got %+v", destination)
	}
	if destination.Units != events[0].Force.Units {
		t.Fatalf("garrison = %d, want the force's surviving %d", destination.Units, events[0].Force.Units)
	}
	if destination.Units < 1 || destination.Units > 8 {
		t.Fatalf("surviving units %d outside the possible 1..8", destination.Units)
	}
	if destination.Power != 0 {
		t.Fatalf("capture must not change the body's power, got %d", destination.Power)
	}
}

// TestNeutralBodiesDefendThemselves sends a weak force against a strong
// neutral and checks that ownership requires winning the duel, not just
// arriving.
func TestNeutralBodiesDefendThemselves(t *testing.T) {
	players := []Player{{Name: "Ada"}}
	bodies := []Body{
		{Units: 2, Power: 0, Production: 0, Position: Position{0, 0}, Owner: 0, Owned: true},
		{Units: 50, Power: 100, Position: Position{1, 0}},
	}
	game := newTestGame(t, 2, 1, players, bodies, 3)

	if err := game.SubmitOrder(0, 0, 1, 2); err != nil {
		t.Fatalf("submit: %v", err)
	}
	events := game.EndTurn()

	if len(events) != 1 || events[0].Type != EventAttackFailed {
		t.Fatalf("expected attack.failed, got %+v", events)
	}
	neutral, err := game.Body(1)
	if err != nil {
		t.Fatalf("lookup body: %v", err)
	}
	if neutral.Owned {
		t.Fatalf("neutral body should stay unowned, got %+v", neutral)
	}
}
