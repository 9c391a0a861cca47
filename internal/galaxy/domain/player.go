package domain

// Player is a participant in the game. Players are immutable after creation;
// elimination is derived from body ownership and in-flight forces, not
// recorded on the player itself.
type Player struct {
	Name string
}
