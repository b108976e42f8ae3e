// Package entities defines the combat-facing domain types for the arena.
// NOTE: These are data-only structs. All battle math lives in the engine
// packages; entities carry state and clamping helpers only.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Characters and teams ride the event bus as entities
var (
	_ core.Entity = (*Character)(nil)
	_ core.Entity = (*Team)(nil)
)

// Character is the combat-facing projection of a roster character.
// Owned by a Team; HP is mutated only by round resolution.
type Character struct {
	ID        string
	Name      string
	Archetype Archetype
	Attack    int32
	Defense   int32
	Speed     int32
	CurrentHP int32
	MaxHP     int32
	Abilities []Ability
}

// Ability is a named special move a coach can call for
type Ability struct {
	ID    string
	Name  string
	Power int32
}

// GetID returns the character's ID, satisfying core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for the event bus
func (c *Character) GetType() string {
	return "character"
}

// Alive reports whether the character can still fight
func (c *Character) Alive() bool {
	return c.CurrentHP > 0
}

// HPFraction returns remaining HP as a fraction of max, in [0,1]
func (c *Character) HPFraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.CurrentHP) / float64(c.MaxHP)
}

// ApplyDamage reduces CurrentHP by amount, clamped to [0, MaxHP].
// Negative amounts heal.
func (c *Character) ApplyDamage(amount int32) {
	c.CurrentHP = ClampHP(c.CurrentHP-amount, c.MaxHP)
}

// AbilityByID looks up an ability on the character
func (c *Character) AbilityByID(id string) *Ability {
	for i := range c.Abilities {
		if c.Abilities[i].ID == id {
			return &c.Abilities[i]
		}
	}
	return nil
}

// ClampHP clamps hp into [0, maxHP]
func ClampHP(hp, maxHP int32) int32 {
	if hp < 0 {
		return 0
	}
	if hp > maxHP {
		return maxHP
	}
	return hp
}

// ClampScore clamps a 0-100 scale value (morale, chemistry, stability factors)
func ClampScore(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampUnit clamps a float into [0,1]
func ClampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
