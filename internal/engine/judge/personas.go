package judge

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/rng"
)

// Persona is one judging ruleset/personality. A battle is assigned a
// single persona at start and keeps it throughout so adjudication style
// stays consistent.
type Persona struct {
	Name string
	// Leniency scales damage awarded for rogue actions; 1.0 is neutral
	Leniency float64
	// Harshness scales backlash dealt to the acting fighter
	Harshness float64
	// PayoffChance is the percent chance an audacious action is ruled
	// to have paid off, flipping the morale penalty into a reward
	PayoffChance int
	// VarianceDie sizes the random damage swing in the ruling
	VarianceDie int
	// Catchphrase opens every ruling narrative
	Catchphrase string
}

// roster is the fixed set of judge personas
var roster = []Persona{
	{
		Name:         "The Iron Magistrate",
		Leniency:     0.7,
		Harshness:    1.4,
		PayoffChance: 10,
		VarianceDie:  4,
		Catchphrase:  "Order must be kept.",
	},
	{
		Name:         "Madame Spectacle",
		Leniency:     1.2,
		Harshness:    0.8,
		PayoffChance: 35,
		VarianceDie:  8,
		Catchphrase:  "Now THAT is entertainment!",
	},
	{
		Name:         "Doctor Protocol",
		Leniency:     0.9,
		Harshness:    1.0,
		PayoffChance: 15,
		VarianceDie:  2,
		Catchphrase:  "Noted. Assessed. Ruled.",
	},
	{
		Name:         "Old Growler",
		Leniency:     1.0,
		Harshness:    1.1,
		PayoffChance: 25,
		VarianceDie:  10,
		Catchphrase:  "Hrmph. Let's see about that.",
	},
	{
		Name:         "The People's Voice",
		Leniency:     1.1,
		Harshness:    0.9,
		PayoffChance: 30,
		VarianceDie:  6,
		Catchphrase:  "The crowd has spoken!",
	},
}

// Roster returns a copy of the fixed persona roster
func Roster() []Persona {
	out := make([]Persona, len(roster))
	copy(out, roster)
	return out
}

// PersonaByName finds a persona on the roster
func PersonaByName(name string) (Persona, bool) {
	for _, p := range roster {
		if p.Name == name {
			return p, true
		}
	}
	return Persona{}, false
}

// PickPersona selects a battle's judge persona from the roster
func PickPersona(roller dice.Roller) (Persona, error) {
	idx, err := rng.IntBetween(roller, 0, len(roster)-1)
	if err != nil {
		return Persona{}, errors.Wrap(err, "failed to pick judge persona")
	}
	return roster[idx], nil
}

// payoffBonus adds to PayoffChance for action types an audience loves
func payoffBonus(actionType entities.RogueActionType) int {
	switch actionType {
	case entities.RogueGrandstanding:
		return 15
	case entities.RogueReckless:
		return 5
	default:
		return 0
	}
}
