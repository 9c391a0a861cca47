// Package random provides seed generation and seeded generators.
//
// It uses crypto/rand to generate high-entropy seeds suitable for
// initializing pseudo-random number generators in deterministic systems.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewSeededRNG creates a seeded random number generator.
//
// A zero seed means "pick one": a high-entropy seed is drawn from
// crypto/rand so the caller can log the effective seed for replay.
// The effective seed is always returned alongside the generator.
func NewSeededRNG(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		generated, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = generated
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
