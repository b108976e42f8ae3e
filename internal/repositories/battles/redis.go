package battles

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/clock"
	redisclient "github.com/coachfight/arena-api/internal/redis"
)

const (
	// Key pattern: battle:{battle_id}
	battleKeyPrefix = "battle:"
	// recentKey holds battle IDs newest-first
	recentKey = "battles:recent"
	// recentLimit bounds the recent list
	recentLimit = 100

	defaultListLimit = 10
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for battle records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save records a completed battle and pushes it onto the recent list
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID cannot be empty")
	}
	if input.Outcome == entities.BattleOutcomePending {
		return nil, errors.InvalidArgument("cannot record a battle without an outcome")
	}

	record := &Record{
		BattleID:       input.BattleID,
		PlayerTeamID:   input.PlayerTeamID,
		OpponentTeamID: input.OpponentTeamID,
		Outcome:        input.Outcome,
		Rounds:         input.Rounds,
		JudgeName:      input.JudgeName,
		CompletedAt:    r.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal battle record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, battleKeyPrefix+input.BattleID, data, 0)
	pipe.LPush(ctx, recentKey, input.BattleID)
	pipe.LTrim(ctx, recentKey, 0, recentLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store battle record in Redis")
	}

	return &SaveOutput{Record: record}, nil
}

// Get loads one battle record
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID cannot be empty")
	}

	data, err := r.client.Get(ctx, battleKeyPrefix+input.BattleID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, errors.NotFound("battle not found").WithMeta("battle_id", input.BattleID)
		}
		return nil, errors.Wrap(err, "failed to load battle record from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal battle record")
	}

	return &GetOutput{Record: &record}, nil
}

// ListRecent returns the most recently completed battles, newest first
func (r *redisRepository) ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	ids, err := r.client.LRange(ctx, recentKey, 0, limit-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent battles")
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{BattleID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		records = append(records, out.Record)
	}

	return &ListRecentOutput{Records: records}, nil
}
