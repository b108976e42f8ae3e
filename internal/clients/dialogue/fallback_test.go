package dialogue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfight/arena-api/internal/clients/dialogue"
	"github.com/coachfight/arena-api/internal/entities"
)

func TestFallback_NeverFails(t *testing.T) {
	f := dialogue.NewFallback()
	ctx := context.Background()

	for _, outcome := range []entities.DeviationOutcome{
		entities.OutcomeFollowsPlan,
		entities.OutcomeImprovises,
		entities.OutcomeGoesRogue,
		entities.DeviationOutcome("unknown"),
	} {
		line, err := f.GenerateLine(ctx, dialogue.LineContext{
			CharacterName: "Joan of Arc",
			Archetype:     entities.ArchetypeZealot,
			Round:         3,
			Outcome:       outcome,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, line)
		assert.Contains(t, line, "Joan of Arc")
	}
}

func TestFallback_VariesByRound(t *testing.T) {
	f := dialogue.NewFallback()
	ctx := context.Background()

	base := dialogue.LineContext{
		CharacterName: "Tesla",
		Archetype:     entities.ArchetypeTactician,
		Outcome:       entities.OutcomeFollowsPlan,
	}

	r1 := base
	r1.Round = 1
	r2 := base
	r2.Round = 2

	line1, err := f.GenerateLine(ctx, r1)
	require.NoError(t, err)
	line2, err := f.GenerateLine(ctx, r2)
	require.NoError(t, err)
	assert.NotEqual(t, line1, line2)
}

func TestNewOpenAI_RequiresAPIKey(t *testing.T) {
	_, err := dialogue.NewOpenAI(dialogue.OpenAIConfig{})
	assert.Error(t, err)
}
