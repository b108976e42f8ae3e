package judge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfight/arena-api/internal/engine/judge"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/pkg/rng"
)

func strictPersona(t *testing.T) judge.Persona {
	t.Helper()
	p, ok := judge.PersonaByName("The Iron Magistrate")
	require.True(t, ok)
	return p
}

func testAction(actionType entities.RogueActionType, severity int32) *entities.RogueAction {
	return &entities.RogueAction{
		ActorID:     "char_1",
		TargetID:    "opp_1",
		Type:        actionType,
		Description: "Blackbeard charges Napoleon head-on",
		Intensity:   80,
		Severity:    severity,
	}
}

func testOpponent() *entities.Character {
	return &entities.Character{ID: "opp_1", Name: "Napoleon", CurrentHP: 70, MaxHP: 100}
}

func TestNew_Validation(t *testing.T) {
	t.Run("missing roller", func(t *testing.T) {
		_, err := judge.New(&judge.Config{Persona: strictPersona(t)})
		assert.Error(t, err)
	})

	t.Run("missing persona", func(t *testing.T) {
		_, err := judge.New(&judge.Config{Roller: rng.NewSeeded(1)})
		assert.Error(t, err)
	})
}

func TestPickPersona_FromRoster(t *testing.T) {
	roller := rng.NewSeeded(9)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p, err := judge.PickPersona(roller)
		require.NoError(t, err)
		_, onRoster := judge.PersonaByName(p.Name)
		assert.True(t, onRoster)
		seen[p.Name] = true
	}
	assert.Len(t, seen, len(judge.Roster()), "every persona should come up over enough picks")
}

func TestRule_NeverVetoes(t *testing.T) {
	a, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewSeeded(3)})
	require.NoError(t, err)

	for _, actionType := range []entities.RogueActionType{
		entities.RogueReckless,
		entities.RogueGrandstanding,
		entities.RogueEvasive,
		entities.RogueSelfSabotaging,
		entities.RogueDefiant,
	} {
		ruling, err := a.Rule(testAction(actionType, 3), testOpponent(), 50)
		require.NoError(t, err)
		require.NotNil(t, ruling, "every rogue action gets a ruling")
		assert.GreaterOrEqual(t, ruling.DamageToTarget, int32(0))
		assert.NotEmpty(t, ruling.Narrative)
		assert.NotEmpty(t, ruling.CoachExplanation)
	}
}

func TestRule_EvasiveDealsLess(t *testing.T) {
	avg := func(actionType entities.RogueActionType) float64 {
		a, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewSeeded(13)})
		require.NoError(t, err)

		total := int32(0)
		const n = 500
		for i := 0; i < n; i++ {
			ruling, err := a.Rule(testAction(actionType, 2), testOpponent(), 50)
			require.NoError(t, err)
			total += ruling.DamageToTarget
		}
		return float64(total) / n
	}

	assert.Greater(t, avg(entities.RogueReckless), avg(entities.RogueEvasive))
}

func TestRule_SeverityDrivesBacklash(t *testing.T) {
	a, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewScripted(1, 100)})
	require.NoError(t, err)

	// scripted: variance roll 1, payoff roll 100 (always fails)
	mild, err := a.Rule(testAction(entities.RogueReckless, 1), testOpponent(), 50)
	require.NoError(t, err)
	severe, err := a.Rule(testAction(entities.RogueReckless, 5), testOpponent(), 50)
	require.NoError(t, err)

	assert.Equal(t, int32(0), mild.BacklashToActor)
	assert.Greater(t, severe.BacklashToActor, int32(0))
}

func TestRule_SelfSabotagingAlwaysBacklashes(t *testing.T) {
	a, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewScripted(1, 100)})
	require.NoError(t, err)

	ruling, err := a.Rule(testAction(entities.RogueSelfSabotaging, 1), testOpponent(), 50)
	require.NoError(t, err)
	assert.Greater(t, ruling.BacklashToActor, int32(0))
}

func TestRule_MoraleDelta(t *testing.T) {
	t.Run("failed payoff penalizes morale by severity", func(t *testing.T) {
		a, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewScripted(1, 100)})
		require.NoError(t, err)

		ruling, err := a.Rule(testAction(entities.RogueReckless, 4), testOpponent(), 50)
		require.NoError(t, err)
		assert.Equal(t, int32(-8), ruling.MoraleDelta)
	})

	t.Run("payoff flips morale positive and clears backlash", func(t *testing.T) {
		// payoff roll of 1 always succeeds
		a, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewScripted(1, 1)})
		require.NoError(t, err)

		ruling, err := a.Rule(testAction(entities.RogueReckless, 4), testOpponent(), 50)
		require.NoError(t, err)
		assert.Equal(t, int32(4), ruling.MoraleDelta)
		assert.Equal(t, int32(0), ruling.BacklashToActor)
	})
}

func TestRule_LenientPersonaRewardsAudacity(t *testing.T) {
	payoffRate := func(name string) float64 {
		p, ok := judge.PersonaByName(name)
		require.True(t, ok)
		a, err := judge.New(&judge.Config{Persona: p, Roller: rng.NewSeeded(21)})
		require.NoError(t, err)

		positive := 0
		const n = 1000
		for i := 0; i < n; i++ {
			ruling, err := a.Rule(testAction(entities.RogueGrandstanding, 3), testOpponent(), 50)
			require.NoError(t, err)
			if ruling.MoraleDelta > 0 {
				positive++
			}
		}
		return float64(positive) / n
	}

	assert.Greater(t, payoffRate("Madame Spectacle"), payoffRate("The Iron Magistrate"))
}

func TestRule_Deterministic(t *testing.T) {
	action := testAction(entities.RogueDefiant, 3)

	a, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewSeeded(77)})
	require.NoError(t, err)
	b, err := judge.New(&judge.Config{Persona: strictPersona(t), Roller: rng.NewSeeded(77)})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		ra, err := a.Rule(action, testOpponent(), 50)
		require.NoError(t, err)
		rb, err := b.Rule(action, testOpponent(), 50)
		require.NoError(t, err)
		assert.Equal(t, ra, rb)
	}
}
