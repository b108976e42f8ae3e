// Package config loads the process configuration for the arena CLI from
// environment variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/coachfight/arena-api/internal/errors"
)

// Config holds everything the entrypoint needs to wire the engine
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Redis persistence for chemistry and battle records
	RedisEndpoint string `envconfig:"REDIS_ENDPOINT" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	// Dialogue collaborator. An empty key disables the LLM client and
	// the engine runs on procedural narration only.
	OpenAIKey     string        `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel   string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	OpenAITimeout time.Duration `envconfig:"OPENAI_TIMEOUT" default:"5s"`

	// Battle pacing
	HuddleDelay    time.Duration `envconfig:"BATTLE_HUDDLE_DELAY" default:"2s"`
	StrategyWindow time.Duration `envconfig:"BATTLE_STRATEGY_WINDOW" default:"15s"`
	RoundDelay     time.Duration `envconfig:"BATTLE_ROUND_DELAY" default:"1s"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return &cfg, nil
}
