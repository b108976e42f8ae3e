package main

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/coachfight/arena-api/internal/clients/dialogue"
	"github.com/coachfight/arena-api/internal/config"
	"github.com/coachfight/arena-api/internal/engine/adherence"
	"github.com/coachfight/arena-api/internal/engine/psychology"
	"github.com/coachfight/arena-api/internal/engine/rogue"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/orchestrators/battle"
	"github.com/coachfight/arena-api/internal/pkg/clock"
	"github.com/coachfight/arena-api/internal/pkg/idgen"
	"github.com/coachfight/arena-api/internal/pkg/rng"
	"github.com/coachfight/arena-api/internal/pkg/scheduler"
	"github.com/coachfight/arena-api/internal/redis"
	"github.com/coachfight/arena-api/internal/repositories/battles"
	"github.com/coachfight/arena-api/internal/repositories/chemistry"
)

// buildService wires a battle orchestrator from the process config. seed
// fixes the random stream; pass 0 for a time-based seed.
func buildService(cfg *config.Config, seed int64, pacing battle.Pacing, weights adherence.Weights) (battle.Service, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	roller := rng.NewSeeded(seed)

	client, err := redis.NewClient(cfg.RedisEndpoint, &redis.Options{Password: cfg.RedisPassword})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	clk := clock.New()
	chemRepo, err := chemistry.NewRedisRepository(&chemistry.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chemistry repository")
	}
	battleRepo, err := battles.NewRedisRepository(&battles.Config{Client: client, Clock: clk})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle repository")
	}

	evaluator, err := adherence.New(&adherence.Config{Weights: weights, Roller: roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create adherence evaluator")
	}
	rogueGen, err := rogue.New(&rogue.Config{Roller: roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rogue generator")
	}

	var dialogueClient dialogue.Client = dialogue.NewFallback()
	if cfg.OpenAIKey != "" {
		dialogueClient, err = dialogue.NewOpenAI(dialogue.OpenAIConfig{
			APIKey:  cfg.OpenAIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.OpenAITimeout,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dialogue client")
		}
	}

	return battle.NewOrchestrator(&battle.Config{
		Psychology:    psychology.NewDefault(),
		Evaluator:     evaluator,
		RogueGen:      rogueGen,
		Roller:        roller,
		Scheduler:     scheduler.New(),
		Clock:         clk,
		IDGenerator:   idgen.NewUUID("battle"),
		EventBus:      events.NewBus(),
		Dialogue:      dialogueClient,
		ChemistryRepo: chemRepo,
		BattleRepo:    battleRepo,
		Pacing:        pacing,
	})
}
