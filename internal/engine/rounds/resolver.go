// Package rounds executes a single battle round: adherence check, then
// either planned-action damage or a judge ruling, then HP, morale, and
// psychology updates.
package rounds

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/coachfight/arena-api/internal/engine/adherence"
	"github.com/coachfight/arena-api/internal/engine/judge"
	"github.com/coachfight/arena-api/internal/engine/psychology"
	"github.com/coachfight/arena-api/internal/engine/rogue"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/rng"
)

// Damage model constants
const (
	damageFloor        = 1 // every plan-adherent round makes progress
	defenseMitigation  = 2 // defender blocks Defense/defenseMitigation
	speedBonusDivisor  = 10
	varianceSpread     = 4 // damage swings +/- varianceSpread around the base
	improvisePercent   = 60
	followMoraleGain   = 2
	improviseAlterNote = " — but not quite the move the corner called for"
)

// Resolver executes rounds
type Resolver struct {
	evaluator *adherence.Evaluator
	rogueGen  *rogue.Generator
	judge     *judge.Adjudicator
	psych     *psychology.Manager
	roller    dice.Roller
}

// Config holds the dependencies for the resolver
type Config struct {
	Evaluator  *adherence.Evaluator
	RogueGen   *rogue.Generator
	Judge      *judge.Adjudicator
	Psychology *psychology.Manager
	Roller     dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}
	if c.RogueGen == nil {
		vb.RequiredField("RogueGen")
	}
	if c.Judge == nil {
		vb.RequiredField("Judge")
	}
	if c.Psychology == nil {
		vb.RequiredField("Psychology")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// New creates a resolver with the provided dependencies
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{
		evaluator: cfg.Evaluator,
		rogueGen:  cfg.RogueGen,
		judge:     cfg.Judge,
		psych:     cfg.Psychology,
		roller:    cfg.Roller,
	}, nil
}

// Input carries everything one round needs. The resolver mutates the
// fighters' HP and the acting team's morale; psychology states are
// returned as new values.
type Input struct {
	Round         int32
	Attacker      *entities.Character
	Defender      *entities.Character
	AttackerTeam  *entities.Team
	DefenderTeam  *entities.Team
	AttackerState entities.PsychologyState
	DefenderState entities.PsychologyState
	Planned       entities.PlannedAction
	Momentum      entities.Momentum
}

// Output is the round result plus the advanced psychology states
type Output struct {
	Result        *entities.RoundResult
	AttackerState entities.PsychologyState
	DefenderState entities.PsychologyState
}

// ResolveRound runs one round to completion. Invalid planned actions
// degrade to a basic attack on the defender rather than failing the
// round.
func (r *Resolver) ResolveRound(input *Input) (*Output, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Attacker == nil || input.Defender == nil {
		return nil, errors.InvalidArgument("attacker and defender are required")
	}

	planned := r.sanitizePlan(input)

	verdict, err := r.evaluator.Evaluate(input.AttackerState, planned)
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate adherence")
	}

	var result *entities.RoundResult
	switch verdict.Outcome {
	case entities.OutcomeGoesRogue:
		result, err = r.resolveRogue(input, verdict)
	default:
		result, err = r.resolvePlanned(input, planned, verdict)
	}
	if err != nil {
		return nil, err
	}

	result.AttackerHP = input.Attacker.CurrentHP
	result.DefenderHP = input.Defender.CurrentHP

	attackerState := r.psych.Update(input.AttackerState, result)
	attackerState.DeviationRisk = verdict.RiskUsed

	return &Output{
		Result:        result,
		AttackerState: attackerState,
		DefenderState: r.psych.Update(input.DefenderState, result),
	}, nil
}

// sanitizePlan substitutes safe defaults for invalid plans: a missing or
// unknown ability becomes a basic attack, a missing target becomes the
// defender.
func (r *Resolver) sanitizePlan(input *Input) entities.PlannedAction {
	planned := input.Planned

	if planned.Kind == "" {
		planned.Kind = entities.ActionKindBasic
	}
	if planned.Kind == entities.ActionKindAbility && input.Attacker.AbilityByID(planned.AbilityID) == nil {
		planned.Kind = entities.ActionKindBasic
		planned.AbilityID = ""
	}
	if planned.TargetID == "" {
		planned.TargetID = input.Defender.ID
	}
	planned.CoachingInfluence = entities.ClampUnit(planned.CoachingInfluence)

	return planned
}

func (r *Resolver) resolvePlanned(
	input *Input,
	planned entities.PlannedAction,
	verdict adherence.Result,
) (*entities.RoundResult, error) {
	damage, actionName, err := r.rollPlannedDamage(input, planned)
	if err != nil {
		return nil, err
	}

	moraleDelta := int32(0)
	if verdict.Outcome == entities.OutcomeImprovises {
		damage = damage * improvisePercent / 100
		if damage < damageFloor {
			damage = damageFloor
		}
	} else if input.AttackerTeam != nil {
		moraleDelta = input.AttackerTeam.AdjustMorale(input.Round, followMoraleGain, "plan executed")
	}

	narrative := fmt.Sprintf("%s hits %s with %s for %d",
		input.Attacker.Name, input.Defender.Name, actionName, damage)
	if verdict.Outcome == entities.OutcomeImprovises {
		narrative += improviseAlterNote
	}

	input.Defender.ApplyDamage(damage)

	return &entities.RoundResult{
		Round:        input.Round,
		AttackerID:   input.Attacker.ID,
		DefenderID:   input.Defender.ID,
		Outcome:      verdict.Outcome,
		RiskUsed:     verdict.RiskUsed,
		ActionTaken:  actionName,
		Damage:       damage,
		PlanAdherent: verdict.Outcome == entities.OutcomeFollowsPlan,
		MoraleDelta:  moraleDelta,
		Narrative:    narrative,
	}, nil
}

func (r *Resolver) rollPlannedDamage(input *Input, planned entities.PlannedAction) (int32, string, error) {
	base := input.Attacker.Attack
	actionName := "a basic attack"

	if planned.Kind == entities.ActionKindAbility {
		ability := input.Attacker.AbilityByID(planned.AbilityID)
		base += ability.Power
		actionName = ability.Name
	}

	base -= input.Defender.Defense / defenseMitigation
	base += (input.Attacker.Speed - input.Defender.Speed) / speedBonusDivisor

	variance, err := rng.IntBetween(r.roller, -varianceSpread, varianceSpread)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to roll damage variance")
	}

	damage := base + int32(variance)
	if damage < damageFloor {
		damage = damageFloor
	}
	return damage, actionName, nil
}

func (r *Resolver) resolveRogue(input *Input, verdict adherence.Result) (*entities.RoundResult, error) {
	teamMorale := int32(50)
	if input.AttackerTeam != nil {
		teamMorale = input.AttackerTeam.Morale
	}

	action, err := r.rogueGen.Generate(input.Attacker, input.Defender, teamMorale, input.Momentum)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate rogue action")
	}

	ruling, err := r.judge.Rule(action, input.Defender, teamMorale)
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjudicate rogue action")
	}

	input.Defender.ApplyDamage(ruling.DamageToTarget)
	input.Attacker.ApplyDamage(ruling.BacklashToActor)

	moraleDelta := int32(0)
	if input.AttackerTeam != nil {
		moraleDelta = input.AttackerTeam.AdjustMorale(input.Round, ruling.MoraleDelta, "judge ruling")
	}

	return &entities.RoundResult{
		Round:        input.Round,
		AttackerID:   input.Attacker.ID,
		DefenderID:   input.Defender.ID,
		Outcome:      entities.OutcomeGoesRogue,
		RiskUsed:     verdict.RiskUsed,
		ActionTaken:  action.Description,
		Damage:       ruling.DamageToTarget,
		Backlash:     ruling.BacklashToActor,
		PlanAdherent: false,
		MoraleDelta:  moraleDelta,
		Narrative:    ruling.Narrative,
		RogueAction:  action,
		Ruling:       ruling,
	}, nil
}
