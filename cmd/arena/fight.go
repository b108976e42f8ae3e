package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/coachfight/arena-api/internal/clients/environment"
	"github.com/coachfight/arena-api/internal/config"
	"github.com/coachfight/arena-api/internal/engine/adherence"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/orchestrators/battle"
)

var (
	fightSeed       int64
	fightStakes     int32
	fightTeamTotal  bool
	fightAbility    string
	fightInfluence  float64
	fightHQ         string
	fightRogueShare float64
)

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Run one coached battle and narrate it round by round",
	RunE:  runFight,
}

func init() {
	fightCmd.Flags().Int64Var(&fightSeed, "seed", 0, "random seed (0 = time-based)")
	fightCmd.Flags().Int32Var(&fightStakes, "stakes", 1, "battle stakes, 1-3")
	fightCmd.Flags().BoolVar(&fightTeamTotal, "team-total", false, "use whole-team HP instead of one representative")
	fightCmd.Flags().StringVar(&fightAbility, "ability", "ability_two_heavens", "ability to script for the player's fighter")
	fightCmd.Flags().Float64Var(&fightInfluence, "influence", 0.7, "coaching influence in [0,1]")
	fightCmd.Flags().StringVar(&fightHQ, "hq", "standard", "player headquarters quality: spartan, standard, lavish")
	fightCmd.Flags().Float64Var(&fightRogueShare, "rogue-share", adherence.DefaultWeights().RogueShare,
		"fraction of the deviation band that goes rogue")
}

func runFight(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel)

	weights := adherence.DefaultWeights()
	weights.RogueShare = fightRogueShare

	svc, err := buildService(cfg, fightSeed, battle.Pacing{
		HuddleDelay:     cfg.HuddleDelay,
		StrategyWindow:  cfg.StrategyWindow,
		RoundDelay:      cfg.RoundDelay,
		DialogueTimeout: cfg.OpenAITimeout,
	}, weights)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	envProvider := environment.NewStatic(nil, environment.Quality("QUALITY_"+strings.ToUpper(fightHQ)))
	setup := demoSetup(battleMode(fightTeamTotal), fightStakes, nil)
	if modifiers, err := envProvider.Modifiers(ctx, setup.PlayerTeam.ID); err == nil {
		setup.EnvironmentModifiers = modifiers
	}

	out, err := svc.StartBattle(ctx, &battle.StartBattleInput{Setup: setup})
	if err != nil {
		return err
	}

	fmt.Printf("Battle %s: %s vs %s, judged by %s\n",
		out.BattleID, setup.PlayerTeam.Name, setup.OpponentTeam.Name, out.Snapshot.JudgeName)

	plan := entities.PlannedAction{
		Kind:              entities.ActionKindAbility,
		AbilityID:         fightAbility,
		CoachingInfluence: fightInfluence,
	}

	return watchBattle(ctx, svc, out.BattleID, &plan)
}

// watchBattle polls the battle forward, submitting the plan once strategy
// selection opens and printing each round as it lands
func watchBattle(ctx context.Context, svc battle.Service, battleID string, plan *entities.PlannedAction) error {
	printed := 0
	submitted := plan == nil

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}

		snap, err := svc.GetSnapshot(ctx, &battle.GetSnapshotInput{BattleID: battleID})
		if err != nil {
			return err
		}

		if !submitted && snap.Snapshot.Phase == entities.PhaseStrategySelection {
			if _, err := svc.SubmitPlan(ctx, &battle.SubmitPlanInput{BattleID: battleID, Plan: *plan}); err != nil {
				return err
			}
			submitted = true
			fmt.Println("Plan locked in.")
			continue
		}

		results, err := svc.GetRoundResults(ctx, &battle.GetRoundResultsInput{BattleID: battleID})
		if err != nil {
			return err
		}
		for ; printed < len(results.Results); printed++ {
			printRound(results.Results[printed])
		}

		if snap.Snapshot.Phase == entities.PhaseBattleComplete {
			fmt.Printf("\n%s\n", snap.Snapshot.Narrative)
			fmt.Printf("Outcome: %s after %d rounds\n", snap.Snapshot.Outcome, snap.Snapshot.Round)
			return nil
		}
	}
}

func printRound(result *entities.RoundResult) {
	fmt.Printf("[R%d] %s", result.Round, result.Narrative)
	if result.Ruling != nil {
		fmt.Printf("\n      Judge: %s", result.Ruling.CoachExplanation)
	}
	fmt.Printf(" (damage %d", result.Damage)
	if result.Backlash > 0 {
		fmt.Printf(", backlash %d", result.Backlash)
	}
	fmt.Println(")")
}

func battleMode(teamTotal bool) entities.BattleMode {
	if teamTotal {
		return entities.ModeTeamTotal
	}
	return entities.ModeRepresentative
}

