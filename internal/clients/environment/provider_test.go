package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfight/arena-api/internal/clients/environment"
	"github.com/coachfight/arena-api/internal/engine/psychology"
)

func TestStatic_AssignedQuality(t *testing.T) {
	provider := environment.NewStatic(map[string]environment.Quality{
		"team_1": environment.QualityLavish,
	}, environment.QualityStandard)

	bundle, err := provider.Modifiers(context.Background(), "team_1")
	require.NoError(t, err)
	assert.Equal(t, int32(-8), bundle[psychology.ModifierStressShift])
	assert.Equal(t, int32(5), bundle[psychology.ModifierTrustShift])
}

func TestStatic_UnknownTeamGetsDefault(t *testing.T) {
	provider := environment.NewStatic(nil, environment.QualitySpartan)

	bundle, err := provider.Modifiers(context.Background(), "team_unknown")
	require.NoError(t, err)
	assert.Equal(t, int32(8), bundle[psychology.ModifierStressShift])
}

func TestStatic_BundleIsACopy(t *testing.T) {
	provider := environment.NewStatic(nil, environment.QualityLavish)
	ctx := context.Background()

	first, err := provider.Modifiers(ctx, "team_1")
	require.NoError(t, err)
	first[psychology.ModifierStressShift] = 99

	second, err := provider.Modifiers(ctx, "team_1")
	require.NoError(t, err)
	assert.Equal(t, int32(-8), second[psychology.ModifierStressShift])
}
