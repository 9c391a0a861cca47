package domain

import "math"

// paceFactor scales travel time down; full Euclidean distance makes the
// game pace too slow.
const paceFactor = 0.5

// Position is a location on the game grid.
type Position struct {
	X, Y int
}

// TravelTime returns the number of turns a force needs between two
// positions: Euclidean distance scaled by the pace factor, rounded up.
// It is symmetric and zero only for identical positions.
func TravelTime(a, b Position) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Ceil(math.Sqrt(dx*dx+dy*dy) * paceFactor))
}
