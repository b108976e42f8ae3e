package battles_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/clock"
	"github.com/coachfight/arena-api/internal/repositories/battles"
	"github.com/coachfight/arena-api/internal/testutils"
)

func setupRepo(t *testing.T) battles.Repository {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := battles.NewRedisRepository(&battles.Config{
		Client: client,
		Clock:  clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	return repo
}

func TestSaveAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, battles.SaveInput{
		BattleID:       "battle_1",
		PlayerTeamID:   "team_1",
		OpponentTeamID: "team_2",
		Outcome:        entities.BattleOutcomePlayer,
		Rounds:         6,
		JudgeName:      "Old Growler",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.BattleOutcomePlayer, saved.Record.Outcome)

	got, err := repo.Get(ctx, battles.GetInput{BattleID: "battle_1"})
	require.NoError(t, err)
	assert.Equal(t, int32(6), got.Record.Rounds)
	assert.Equal(t, "Old Growler", got.Record.JudgeName)
}

func TestSave_RejectsPendingOutcome(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Save(context.Background(), battles.SaveInput{
		BattleID: "battle_1",
		Outcome:  entities.BattleOutcomePending,
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestGet_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Get(context.Background(), battles.GetInput{BattleID: "battle_missing"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListRecent_NewestFirst(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Save(ctx, battles.SaveInput{
			BattleID:       fmt.Sprintf("battle_%d", i),
			PlayerTeamID:   "team_1",
			OpponentTeamID: "team_2",
			Outcome:        entities.BattleOutcomeDraw,
			Rounds:         10,
			JudgeName:      "Doctor Protocol",
		})
		require.NoError(t, err)
	}

	out, err := repo.ListRecent(ctx, battles.ListRecentInput{Limit: 3})
	require.NoError(t, err)
	require.Len(t, out.Records, 3)
	assert.Equal(t, "battle_5", out.Records[0].BattleID)
	assert.Equal(t, "battle_3", out.Records[2].BattleID)
}
