package rounds_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfight/arena-api/internal/engine/adherence"
	"github.com/coachfight/arena-api/internal/engine/judge"
	"github.com/coachfight/arena-api/internal/engine/psychology"
	"github.com/coachfight/arena-api/internal/engine/rogue"
	"github.com/coachfight/arena-api/internal/engine/rounds"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/pkg/rng"
)

func newResolver(t *testing.T, roller dice.Roller) *rounds.Resolver {
	t.Helper()

	evaluator, err := adherence.New(&adherence.Config{
		Weights: adherence.DefaultWeights(),
		Roller:  roller,
	})
	require.NoError(t, err)

	rogueGen, err := rogue.New(&rogue.Config{Roller: roller})
	require.NoError(t, err)

	persona, ok := judge.PersonaByName("Doctor Protocol")
	require.True(t, ok)
	adjudicator, err := judge.New(&judge.Config{Persona: persona, Roller: roller})
	require.NoError(t, err)

	resolver, err := rounds.New(&rounds.Config{
		Evaluator:  evaluator,
		RogueGen:   rogueGen,
		Judge:      adjudicator,
		Psychology: psychology.NewDefault(),
		Roller:     roller,
	})
	require.NoError(t, err)
	return resolver
}

func roundInput() *rounds.Input {
	attacker := &entities.Character{
		ID:        "char_1",
		Name:      "Achilles",
		Archetype: entities.ArchetypeBrawler,
		Attack:    20,
		Defense:   10,
		Speed:     15,
		CurrentHP: 100,
		MaxHP:     100,
		Abilities: []entities.Ability{{ID: "ab_spear", Name: "Spear Lunge", Power: 10}},
	}
	defender := &entities.Character{
		ID:        "opp_1",
		Name:      "Hector",
		Archetype: entities.ArchetypeGuardian,
		Attack:    16,
		Defense:   14,
		Speed:     12,
		CurrentHP: 100,
		MaxHP:     100,
	}

	return &rounds.Input{
		Round:        1,
		Attacker:     attacker,
		Defender:     defender,
		AttackerTeam: &entities.Team{ID: "team_1", Morale: 60, Fighters: []*entities.Character{attacker}},
		DefenderTeam: &entities.Team{ID: "team_2", Morale: 60, Fighters: []*entities.Character{defender}},
		AttackerState: entities.PsychologyState{
			CharacterID: "char_1", TrustInCoach: 90, Ego: 20, Stress: 5, Fatigue: 5,
		},
		DefenderState: entities.PsychologyState{
			CharacterID: "opp_1", TrustInCoach: 70, Ego: 30, Stress: 20, Fatigue: 10,
		},
		Planned: entities.PlannedAction{
			Kind:              entities.ActionKindBasic,
			TargetID:          "opp_1",
			CoachingInfluence: 0.9,
		},
		Momentum: entities.MomentumWinning,
	}
}

func TestResolveRound_FollowsPlan(t *testing.T) {
	resolver := newResolver(t, rng.NewSeeded(1))
	input := roundInput()

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)

	result := out.Result
	assert.Equal(t, entities.OutcomeFollowsPlan, result.Outcome)
	assert.True(t, result.PlanAdherent)
	assert.GreaterOrEqual(t, result.Damage, int32(1), "damage floor guarantees progress")
	assert.Nil(t, result.RogueAction)
	assert.Nil(t, result.Ruling)
	assert.Equal(t, input.Defender.CurrentHP, result.DefenderHP)
	assert.Equal(t, int32(100)-result.Damage, result.DefenderHP)
	assert.NotEmpty(t, result.Narrative)
	// morale ticked up for the acting team
	assert.Equal(t, int32(62), input.AttackerTeam.Morale)
}

func TestResolveRound_AbilityUsesPower(t *testing.T) {
	resolver := newResolver(t, rng.NewScripted(1, 5))
	input := roundInput()
	input.Planned.Kind = entities.ActionKindAbility
	input.Planned.AbilityID = "ab_spear"

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)
	assert.Equal(t, "Spear Lunge", out.Result.ActionTaken)
	assert.Contains(t, out.Result.Narrative, "Spear Lunge")
}

func TestResolveRound_UnknownAbilityDegradesToBasic(t *testing.T) {
	resolver := newResolver(t, rng.NewScripted(1, 5))
	input := roundInput()
	input.Planned.Kind = entities.ActionKindAbility
	input.Planned.AbilityID = "ab_missing"

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)
	assert.Equal(t, "a basic attack", out.Result.ActionTaken)
}

func TestResolveRound_GoesRogueProducesRulingPair(t *testing.T) {
	// force the rogue branch with a volatile state and a top adherence draw
	resolver := newResolver(t, rng.NewScripted(10000, 2, 3, 50, 1, 1, 100))
	input := roundInput()
	input.AttackerState = entities.PsychologyState{
		CharacterID: "char_1", TrustInCoach: 0, Ego: 100, Stress: 100, Fatigue: 100,
	}
	input.Planned.CoachingInfluence = 0

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)

	result := out.Result
	assert.Equal(t, entities.OutcomeGoesRogue, result.Outcome)
	assert.False(t, result.PlanAdherent)
	require.NotNil(t, result.RogueAction, "rogue rounds carry the action")
	require.NotNil(t, result.Ruling, "rogue rounds carry exactly one ruling")
	assert.Equal(t, result.Damage, result.Ruling.DamageToTarget)
	assert.Equal(t, result.Backlash, result.Ruling.BacklashToActor)
}

func TestResolveRound_HPStaysInBounds(t *testing.T) {
	resolver := newResolver(t, rng.NewSeeded(99))
	input := roundInput()
	input.Defender.CurrentHP = 3

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, out.Result.DefenderHP, int32(0))
	assert.LessOrEqual(t, out.Result.DefenderHP, input.Defender.MaxHP)
}

func TestResolveRound_PsychologyAdvances(t *testing.T) {
	resolver := newResolver(t, rng.NewScripted(1, 5))
	input := roundInput()

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)

	// plan landed: attacker destresses, defender absorbs stress
	assert.Less(t, out.AttackerState.Stress, input.AttackerState.Stress+1)
	assert.GreaterOrEqual(t, out.DefenderState.Stress, input.DefenderState.Stress)
}

func TestResolveRound_AttackerStateCarriesRisk(t *testing.T) {
	resolver := newResolver(t, rng.NewScripted(1, 5))
	input := roundInput()
	input.AttackerState = entities.PsychologyState{
		CharacterID: "char_1", TrustInCoach: 10, Ego: 80, Stress: 90, Fatigue: 60,
	}

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)

	assert.Greater(t, out.Result.RiskUsed, 0.0)
	assert.Equal(t, out.Result.RiskUsed, out.AttackerState.DeviationRisk)
	assert.LessOrEqual(t, out.AttackerState.DeviationRisk, 1.0)
}

func TestResolveRound_ImproviseNarrativeMatchesDamage(t *testing.T) {
	// volatile state puts risk at 0.39, so a 0.70 draw lands in the
	// improvise band; Roll(9)=5 zeroes the variance
	resolver := newResolver(t, rng.NewScripted(7001, 5))
	input := roundInput()
	input.AttackerState = entities.PsychologyState{
		CharacterID: "char_1", TrustInCoach: 10, Ego: 80, Stress: 90, Fatigue: 60,
	}

	out, err := resolver.ResolveRound(input)
	require.NoError(t, err)

	result := out.Result
	require.Equal(t, entities.OutcomeImprovises, result.Outcome)
	assert.Equal(t, int32(9), result.Damage)
	assert.Contains(t, result.Narrative, "for 9 —")
}

func TestResolveRound_Deterministic(t *testing.T) {
	run := func() *entities.RoundResult {
		resolver := newResolver(t, rng.NewSeeded(1234))
		input := roundInput()
		out, err := resolver.ResolveRound(input)
		require.NoError(t, err)
		return out.Result
	}

	assert.Equal(t, run(), run())
}

func TestResolveRound_NilInputs(t *testing.T) {
	resolver := newResolver(t, rng.NewSeeded(1))

	_, err := resolver.ResolveRound(nil)
	assert.Error(t, err)

	input := roundInput()
	input.Defender = nil
	_, err = resolver.ResolveRound(input)
	assert.Error(t, err)
}
