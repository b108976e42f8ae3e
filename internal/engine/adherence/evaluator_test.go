package adherence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfight/arena-api/internal/engine/adherence"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/pkg/rng"
)

func newEvaluator(t *testing.T, seed int64) *adherence.Evaluator {
	t.Helper()
	e, err := adherence.New(&adherence.Config{
		Weights: adherence.DefaultWeights(),
		Roller:  rng.NewSeeded(seed),
	})
	require.NoError(t, err)
	return e
}

func calmState() entities.PsychologyState {
	return entities.PsychologyState{
		CharacterID:  "char_1",
		TrustInCoach: 80,
		Ego:          30,
		Stress:       10,
		Fatigue:      10,
	}
}

func volatileState() entities.PsychologyState {
	return entities.PsychologyState{
		CharacterID:  "char_1",
		TrustInCoach: 5,
		Ego:          100,
		Stress:       95,
		Fatigue:      100,
	}
}

func TestNew_RequiresRoller(t *testing.T) {
	_, err := adherence.New(&adherence.Config{Weights: adherence.DefaultWeights()})
	assert.Error(t, err)
}

func TestRisk_Clamped(t *testing.T) {
	e := newEvaluator(t, 1)

	risk := e.Risk(volatileState(), entities.PlannedAction{})
	assert.LessOrEqual(t, risk, 1.0)
	assert.GreaterOrEqual(t, risk, 0.0)

	risk = e.Risk(calmState(), entities.PlannedAction{CoachingInfluence: 1})
	assert.GreaterOrEqual(t, risk, 0.0)
}

func TestRisk_MonotoneInStress(t *testing.T) {
	e := newEvaluator(t, 1)

	prev := -1.0
	for stress := int32(0); stress <= 100; stress += 10 {
		state := calmState()
		state.Stress = stress
		risk := e.Risk(state, entities.PlannedAction{})
		assert.GreaterOrEqual(t, risk, prev, "risk must not decrease as stress rises")
		prev = risk
	}
}

func TestRisk_MonotoneInCoachingInfluence(t *testing.T) {
	e := newEvaluator(t, 1)
	state := volatileState()

	prev := 2.0
	for _, influence := range []float64{0, 0.25, 0.5, 0.75, 1} {
		risk := e.Risk(state, entities.PlannedAction{CoachingInfluence: influence})
		assert.LessOrEqual(t, risk, prev, "risk must not increase with coaching influence")
		prev = risk
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	state := volatileState()
	planned := entities.PlannedAction{Kind: entities.ActionKindBasic, TargetID: "opp_1"}

	a := newEvaluator(t, 42)
	b := newEvaluator(t, 42)

	for i := 0; i < 100; i++ {
		ra, err := a.Evaluate(state, planned)
		require.NoError(t, err)
		rb, err := b.Evaluate(state, planned)
		require.NoError(t, err)
		assert.Equal(t, ra, rb)
	}
}

func TestEvaluate_CalmFighterFollowsPlan(t *testing.T) {
	e := newEvaluator(t, 7)
	state := calmState()
	planned := entities.PlannedAction{Kind: entities.ActionKindBasic, CoachingInfluence: 0.8}

	follows := 0
	for i := 0; i < 1000; i++ {
		res, err := e.Evaluate(state, planned)
		require.NoError(t, err)
		if res.Outcome == entities.OutcomeFollowsPlan {
			follows++
		}
	}
	// risk is clamped at zero for this profile, so every round complies
	assert.Equal(t, 1000, follows)
}

func TestEvaluate_VolatileFighterRogueRate(t *testing.T) {
	e := newEvaluator(t, 99)
	state := volatileState()
	planned := entities.PlannedAction{Kind: entities.ActionKindBasic}

	risk := e.Risk(state, planned)
	require.Greater(t, risk, 0.5)

	rogue := 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		res, err := e.Evaluate(state, planned)
		require.NoError(t, err)
		assert.Equal(t, risk, res.RiskUsed)
		if res.Outcome == entities.OutcomeGoesRogue {
			rogue++
		}
	}

	expected := risk * adherence.DefaultWeights().RogueShare
	assert.InDelta(t, expected, float64(rogue)/draws, 0.03,
		"rogue rate should converge to risk * rogue share")
}

func TestEvaluate_ScriptedThresholds(t *testing.T) {
	state := volatileState()
	planned := entities.PlannedAction{}

	// Unit draws come from a d10000: value v maps to (v-1)/10000.
	tests := []struct {
		name string
		roll int
		want entities.DeviationOutcome
	}{
		{"low draw follows", 1, entities.OutcomeFollowsPlan},
		{"top draw goes rogue", 10000, entities.OutcomeGoesRogue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := adherence.New(&adherence.Config{
				Weights: adherence.DefaultWeights(),
				Roller:  rng.NewScripted(tt.roll),
			})
			require.NoError(t, err)

			res, err := e.Evaluate(state, planned)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Outcome)
		})
	}
}
