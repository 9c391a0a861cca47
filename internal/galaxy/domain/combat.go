package domain

// resolveCombat runs the round-based duel between an arriving force and a
// non-friendly destination body. Each round the defender fires first: a hit
// removes one attacking unit, and an emptied force means the attack failed.
// Then the attacker fires: if the defender is already out of units the body
// changes hands and holds the force's remaining units, otherwise a hit
// removes one defending unit. Power ratings never change; only unit counts
// do. A body keeps firing even with zero units — capture requires the
// attacker to land a hit of its own.
func (g *Game) resolveCombat(force *Force, destination *Body) Event {
	// Two zero-power combatants would never land a hit, so that duel is
	// decided by weight of numbers instead of rolls: the attacker captures
	// only by bringing strictly more units than the defender holds.
	if force.Power == 0 && destination.Power == 0 {
		if force.Units > destination.Units {
			return Event{Type: EventAttackSucceeded, Force: g.capture(force, destination)}
		}
		force.Units = 0
		return Event{Type: EventAttackFailed, Force: *force}
	}

	for {
		if g.roll(destination.Power) {
			force.Units--
			if force.Units <= 0 {
				force.Units = 0
				return Event{Type: EventAttackFailed, Force: *force}
			}
		}
		if g.roll(force.Power) {
			if destination.Units <= 0 {
				return Event{Type: EventAttackSucceeded, Force: g.capture(force, destination)}
			}
			destination.Units--
		}
	}
}

// capture transfers the destination to the force's owner with the force's
// remaining units and returns the force snapshot for the event.
func (g *Game) capture(force *Force, destination *Body) Force {
	destination.Owner = force.Owner
	destination.Owned = true
	destination.Units = force.Units
	return *force
}

// roll reports a hit for a power rating interpreted as a percentage.
func (g *Game) roll(power int) bool {
	return g.rng.Intn(100) < power
}
