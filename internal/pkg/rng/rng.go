// Package rng provides seedable dice.Roller implementations.
//
// Every probabilistic decision in the engine draws through a dice.Roller so
// that a battle run against a seeded roller is fully reproducible.
package rng

import (
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/coachfight/arena-api/internal/errors"
)

// unitDieSize is the die used to synthesize uniform draws in [0,1)
const unitDieSize = 10000

// Seeded implements dice.Roller backed by a seeded math/rand source
type Seeded struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeeded creates a roller whose entire output stream is determined by seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // game randomness, not security
}

var _ dice.Roller = (*Seeded)(nil)

// Roll returns a uniform value in [1, size]
func (r *Seeded) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(size) + 1, nil
}

// RollN returns count uniform values in [1, size]
func (r *Seeded) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("roll count must be positive, got %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Scripted implements dice.Roller returning a fixed sequence, for tests.
// When the sequence is exhausted it wraps around.
type Scripted struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewScripted creates a roller that replays values in order. Values larger
// than the requested die size are clamped to the die size.
func NewScripted(values ...int) *Scripted {
	if len(values) == 0 {
		values = []int{1}
	}
	return &Scripted{values: values}
}

var _ dice.Roller = (*Scripted)(nil)

// Roll returns the next scripted value
func (r *Scripted) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.values[r.next%len(r.values)]
	r.next++
	if v > size {
		v = size
	}
	if v < 1 {
		v = 1
	}
	return v, nil
}

// RollN returns the next count scripted values
func (r *Scripted) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("roll count must be positive, got %d", count)
	}

	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// UnitInterval draws a uniform value in [0,1) from the roller
func UnitInterval(roller dice.Roller) (float64, error) {
	v, err := roller.Roll(unitDieSize)
	if err != nil {
		return 0, err
	}
	return float64(v-1) / float64(unitDieSize), nil
}

// IntBetween draws a uniform value in [low, high]. Returns low when the
// range is empty or inverted.
func IntBetween(roller dice.Roller, low, high int) (int, error) {
	if high <= low {
		return low, nil
	}
	v, err := roller.Roll(high - low + 1)
	if err != nil {
		return 0, err
	}
	return low + v - 1, nil
}

// WeightedIndex picks an index from weights proportionally to their values.
// Zero and negative weights are never selected. Returns an error when no
// weight is positive.
func WeightedIndex(roller dice.Roller, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, errors.InvalidArgument("weighted selection requires at least one positive weight")
	}

	v, err := roller.Roll(total)
	if err != nil {
		return 0, err
	}

	for i, w := range weights {
		if w <= 0 {
			continue
		}
		v -= w
		if v <= 0 {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}
