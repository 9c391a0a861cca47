package domain

// Body is a position-anchored entity holding units. A body without an owner
// is neutral: it defends itself in combat but never produces.
type Body struct {
	Name       string
	Units      int
	Power      int // 0-100, per-round hit probability in combat
	Production int // units gained per turn while owned
	Position   Position
	Owner      PlayerID
	Owned      bool
}

// OwnedBy reports whether the body currently belongs to the given player.
func (b Body) OwnedBy(player PlayerID) bool {
	return b.Owned && b.Owner == player
}
