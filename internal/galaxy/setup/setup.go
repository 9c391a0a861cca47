// Package setup builds randomized starting maps for the engine: one home
// body per player plus a configurable number of neutral bodies, scattered
// over distinct grid cells.
package setup

import (
	"math/rand"

	"github.com/louisbranch/starhold/internal/galaxy/domain"
)

// Home body stats are fixed; neutral stats are sampled per body.
const (
	homeUnits      = 10
	homePower      = 40
	homeProduction = 10

	neutralPowerTrials    = 100
	neutralPowerChance    = 0.55
	neutralProductionBase = 5
	neutralProductionSpan = 10
	neutralProductionOdds = 0.5
)

// Config describes the map to generate.
type Config struct {
	Width         int
	Height        int
	Players       []domain.Player
	NeutralBodies int
}

// NewGame generates a randomized map from cfg and assembles a game around
// it. Each player gets one home body; neutral bodies start empty of units
// but defend with a sampled power rating. All bodies land on distinct cells,
// drawn from a shuffle of the whole grid.
func NewGame(cfg Config, rng *rand.Rand) (*domain.Game, error) {
	if rng == nil {
		return nil, domain.ErrMissingRNG
	}
	total := len(cfg.Players) + cfg.NeutralBodies
	if total > cfg.Width*cfg.Height || total > domain.MaxBodies {
		return nil, domain.ErrTooManyBodies
	}

	positions := samplePositions(rng, cfg.Width, cfg.Height, total)
	bodies := make([]domain.Body, 0, total)
	for i := range cfg.Players {
		bodies = append(bodies, domain.Body{
			Units:      homeUnits,
			Power:      homePower,
			Production: homeProduction,
			Position:   positions[i],
			Owner:      domain.PlayerID(i),
			Owned:      true,
		})
	}
	for i := 0; i < cfg.NeutralBodies; i++ {
		bodies = append(bodies, domain.Body{
			Power:      binomial(rng, neutralPowerTrials, neutralPowerChance),
			Production: neutralProductionBase + binomial(rng, neutralProductionSpan, neutralProductionOdds),
			Position:   positions[len(cfg.Players)+i],
		})
	}

	return domain.NewGame(cfg.Width, cfg.Height, cfg.Players, bodies, rng)
}

// samplePositions draws n distinct cells by shuffling the grid's cell
// indices and decoding the first n.
func samplePositions(rng *rand.Rand, width, height, n int) []domain.Position {
	cells := rng.Perm(width * height)
	positions := make([]domain.Position, n)
	for i := 0; i < n; i++ {
		positions[i] = domain.Position{X: cells[i] % width, Y: cells[i] / width}
	}
	return positions
}

// binomial counts successes over independent trials with the given chance.
func binomial(rng *rand.Rand, trials int, chance float64) int {
	count := 0
	for i := 0; i < trials; i++ {
		if rng.Float64() < chance {
			count++
		}
	}
	return count
}
