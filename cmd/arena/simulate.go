package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/coachfight/arena-api/internal/config"
	"github.com/coachfight/arena-api/internal/engine/adherence"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/orchestrators/battle"
)

var (
	simCount int
	simSeed  int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run seeded battles back to back and tally outcomes",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simCount, "battles", 10, "number of battles to run")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "random seed for the whole run")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	// fast pacing: simulation has no audience to pace for
	svc, err := buildService(cfg, simSeed, battle.Pacing{
		HuddleDelay:     time.Millisecond,
		StrategyWindow:  time.Millisecond,
		RoundDelay:      time.Millisecond,
		DialogueTimeout: time.Second,
	}, adherence.DefaultWeights())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tally := map[entities.BattleOutcome]int{}
	totalRounds := int32(0)
	rogueRounds := 0

	for i := 0; i < simCount; i++ {
		out, err := svc.StartBattle(ctx, &battle.StartBattleInput{
			Setup: demoSetup(entities.ModeRepresentative, 1, nil),
		})
		if err != nil {
			return err
		}

		if err := watchBattle(ctx, svc, out.BattleID, nil); err != nil {
			return err
		}

		snap, err := svc.GetSnapshot(ctx, &battle.GetSnapshotInput{BattleID: out.BattleID})
		if err != nil {
			return err
		}
		tally[snap.Snapshot.Outcome]++
		totalRounds += snap.Snapshot.Round

		results, err := svc.GetRoundResults(ctx, &battle.GetRoundResultsInput{BattleID: out.BattleID})
		if err != nil {
			return err
		}
		for _, result := range results.Results {
			if result.Outcome == entities.OutcomeGoesRogue {
				rogueRounds++
			}
		}
	}

	fmt.Printf("\n%d battles: player %d, opponent %d, draw %d\n",
		simCount,
		tally[entities.BattleOutcomePlayer],
		tally[entities.BattleOutcomeOpponent],
		tally[entities.BattleOutcomeDraw],
	)
	fmt.Printf("avg rounds %.1f, rogue rounds %d\n", float64(totalRounds)/float64(simCount), rogueRounds)
	return nil
}
