package domain

// EventType identifies what happened during turn resolution.
type EventType string

const (
	// EventAttackFailed records a force destroyed by the defending body.
	EventAttackFailed EventType = "attack.failed"
	// EventAttackSucceeded records a body captured by an arriving force.
	EventAttackSucceeded EventType = "attack.succeeded"
	// EventReinforcementsArrived records a force merging into a friendly body.
	EventReinforcementsArrived EventType = "force.reinforced"
	// EventPlayerEliminated records a player losing their last body and force.
	EventPlayerEliminated EventType = "player.eliminated"
)

// Event is one fact produced by turn resolution. Events represent what
// happened, not requests: the engine returns them as an ordered slice and
// has no listener machinery. Eliminations always come after all arrival
// events of the same turn.
type Event struct {
	Type EventType

	// Force is a snapshot taken at resolution time. For attack.failed the
	// snapshot shows zero units; for attack.succeeded and force.reinforced
	// it shows the units that arrived. Unset for eliminations.
	Force Force

	// PlayerID and Player are set only for player.eliminated.
	PlayerID PlayerID
	Player   Player
}
