package chemistry

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/clock"
	redisclient "github.com/coachfight/arena-api/internal/redis"
)

// Key pattern: team_chemistry:{team_id}
const chemistryKeyPrefix = "team_chemistry:"

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

// NewRedisRepository creates a new Redis repository for team chemistry
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

// Get loads a team's chemistry record
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.TeamID == "" {
		return nil, errors.InvalidArgument("team ID cannot be empty")
	}

	data, err := r.client.Get(ctx, chemistryKeyPrefix+input.TeamID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, errors.NotFound("chemistry not recorded").WithMeta("team_id", input.TeamID)
		}
		return nil, errors.Wrap(err, "failed to load chemistry from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal chemistry record")
	}

	return &GetOutput{Record: &record}, nil
}

// Save persists a team's chemistry, clamping it to the valid range
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.TeamID == "" {
		return nil, errors.InvalidArgument("team ID cannot be empty")
	}

	record := &Record{
		TeamID:    input.TeamID,
		Chemistry: entities.ClampScore(input.Chemistry),
		Battles:   input.Battles,
		UpdatedAt: r.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal chemistry record")
	}

	if err := r.client.Set(ctx, chemistryKeyPrefix+input.TeamID, data, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store chemistry in Redis")
	}

	return &SaveOutput{Record: record}, nil
}
