// Package rogue produces off-script action candidates when a fighter
// deviates. The generator assigns intent only; damage numbers belong to
// the judge.
package rogue

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/rng"
)

// rogueTypes fixes the selection order for the weight tables
var rogueTypes = []entities.RogueActionType{
	entities.RogueReckless,
	entities.RogueGrandstanding,
	entities.RogueEvasive,
	entities.RogueSelfSabotaging,
	entities.RogueDefiant,
}

// archetypeWeights biases rogue-type selection by archetype. Index order
// matches rogueTypes.
var archetypeWeights = map[entities.Archetype][]int{
	entities.ArchetypeBrawler:   {50, 10, 5, 15, 20},
	entities.ArchetypeTactician: {10, 5, 45, 10, 30},
	entities.ArchetypeTrickster: {15, 25, 30, 10, 20},
	entities.ArchetypeGuardian:  {10, 5, 50, 10, 25},
	entities.ArchetypeShowman:   {15, 50, 5, 10, 20},
	entities.ArchetypeZealot:    {40, 10, 5, 25, 20},
}

var flatWeights = []int{20, 20, 20, 20, 20}

// Bias values applied to the weight table before selection
const (
	winningGrandstandBonus = 30
	losingDesperateBonus   = 25
	lowMoraleThreshold     = 35
)

// templates keyed by rogue type, filled with actor and target names
var descriptions = map[entities.RogueActionType][]string{
	entities.RogueReckless: {
		"%s abandons the plan and charges %s head-on",
		"%s throws caution aside and swings wildly at %s",
	},
	entities.RogueGrandstanding: {
		"%s turns to the crowd mid-exchange, taunting %s",
		"%s showboats through an elaborate flourish aimed at %s",
	},
	entities.RogueEvasive: {
		"%s backs off entirely, circling away from %s",
		"%s ignores the call and shells up against %s",
	},
	entities.RogueSelfSabotaging: {
		"%s lashes out desperately, leaving an opening %s can't miss",
		"%s overcommits to a hopeless gambit against %s",
	},
	entities.RogueDefiant: {
		"%s waves off the corner and picks a fight with %s on their own terms",
		"%s tears up the script and goes after %s directly",
	},
}

// Generator produces rogue actions
type Generator struct {
	roller dice.Roller
}

// Config holds the dependencies for the generator
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// New creates a generator with the provided dependencies
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Generator{roller: cfg.Roller}, nil
}

// Generate builds a rogue action for character against opponent. Momentum
// and team morale bias both the action type and its severity: a losing,
// demoralized fighter trends desperate; a winning one trends theatrical.
func (g *Generator) Generate(
	character *entities.Character,
	opponent *entities.Character,
	teamMorale int32,
	momentum entities.Momentum,
) (*entities.RogueAction, error) {
	if character == nil || opponent == nil {
		return nil, errors.InvalidArgument("character and opponent are required")
	}

	weights := g.biasedWeights(character.Archetype, teamMorale, momentum)

	idx, err := rng.WeightedIndex(g.roller, weights)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select rogue action type")
	}
	actionType := rogueTypes[idx]

	severity, err := g.rollSeverity(actionType, teamMorale, momentum)
	if err != nil {
		return nil, err
	}

	intensity, err := rng.IntBetween(g.roller, 40, 100)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll intensity")
	}

	desc, err := g.describe(actionType, character, opponent)
	if err != nil {
		return nil, err
	}

	return &entities.RogueAction{
		ActorID:     character.ID,
		TargetID:    opponent.ID,
		Type:        actionType,
		Description: desc,
		Intensity:   int32(intensity),
		Severity:    severity,
	}, nil
}

func (g *Generator) biasedWeights(archetype entities.Archetype, teamMorale int32, momentum entities.Momentum) []int {
	base, ok := archetypeWeights[archetype]
	if !ok {
		base = flatWeights
	}

	weights := make([]int, len(base))
	copy(weights, base)

	if momentum == entities.MomentumWinning {
		weights[1] += winningGrandstandBonus // grandstanding
	}
	if momentum == entities.MomentumLosing && teamMorale < lowMoraleThreshold {
		weights[3] += losingDesperateBonus // self-sabotaging
	}
	return weights
}

func (g *Generator) rollSeverity(actionType entities.RogueActionType, teamMorale int32, momentum entities.Momentum) (int32, error) {
	roll, err := g.roller.Roll(3)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll severity")
	}

	severity := int32(roll)
	if momentum == entities.MomentumLosing {
		severity++
	}
	if teamMorale < lowMoraleThreshold {
		severity++
	}
	if actionType == entities.RogueSelfSabotaging && severity < 3 {
		severity = 3
	}

	if severity < entities.RogueSeverityMin {
		severity = entities.RogueSeverityMin
	}
	if severity > entities.RogueSeverityMax {
		severity = entities.RogueSeverityMax
	}
	return severity, nil
}

func (g *Generator) describe(actionType entities.RogueActionType, character, opponent *entities.Character) (string, error) {
	lines := descriptions[actionType]
	idx, err := rng.IntBetween(g.roller, 0, len(lines)-1)
	if err != nil {
		return "", errors.Wrap(err, "failed to pick description")
	}
	return fmt.Sprintf(lines[idx], character.Name, opponent.Name), nil
}
