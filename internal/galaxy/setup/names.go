package setup

import (
	"math/rand"

	"github.com/louisbranch/starhold/internal/galaxy/domain"
)

// Commander names - globally diverse defaults for unnamed players.
var commanderNames = []string{
	"Sarah", "Alex", "Yuki", "Priya", "Amara",
	"Diego", "Layla", "Kofi", "Morgan", "Mei",
	"Ravi", "Sofia", "Kenji", "Zara", "Jordan",
	"Aisha", "Marcus", "Elena", "Tariq", "Nia",
	"Chris", "Luna", "Omar", "Maya", "Sam",
	"Kai", "Jasmine", "Andre", "Isla", "Leo",
}

// Commanders returns n players with default names, drawn without repeats
// while the list lasts. The display alphabet caps a game well below the
// list's length, so in practice every player gets a distinct name.
func Commanders(rng *rand.Rand, n int) []domain.Player {
	order := rng.Perm(len(commanderNames))
	players := make([]domain.Player, n)
	for i := range players {
		players[i] = domain.Player{Name: commanderNames[order[i%len(order)]]}
	}
	return players
}
