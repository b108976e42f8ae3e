// Package battle implements the battle orchestrator: the state machine
// that carries a battle from setup through huddle, strategy, and combat
// rounds to a guaranteed terminal outcome.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/coachfight/arena-api/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/coachfight/arena-api/internal/clients/dialogue"
	"github.com/coachfight/arena-api/internal/engine/adherence"
	"github.com/coachfight/arena-api/internal/engine/judge"
	"github.com/coachfight/arena-api/internal/engine/psychology"
	"github.com/coachfight/arena-api/internal/engine/rogue"
	"github.com/coachfight/arena-api/internal/engine/rounds"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/clock"
	"github.com/coachfight/arena-api/internal/pkg/idgen"
	"github.com/coachfight/arena-api/internal/pkg/scheduler"
	"github.com/coachfight/arena-api/internal/repositories/battles"
	"github.com/coachfight/arena-api/internal/repositories/chemistry"
)

// maxRounds is the hard cap: a battle still undecided after this many
// rounds goes to the HP-fraction tiebreak
const maxRounds = 10

// Battle balance constants
const (
	defaultStakes         = 1
	maxStakes             = 3
	defaultCoachInfluence = 0.5
	winChemistryPerStake  = 2
	lossChemistryPerStake = 1
	drawChemistryGain     = 1
	baseMorale            = 50
	chemistryMoraleScale  = 5
)

// Event topics published on the bus after transitions
const (
	TopicBattleStarted   = "arena.battle.started"
	TopicRoundResolved   = "arena.round.resolved"
	TopicBattleCompleted = "arena.battle.completed"
	TopicBattleReset     = "arena.battle.reset"
)

// Service defines the interface for battle operations
type Service interface {
	// StartBattle validates the setup and opens a new battle in the
	// pre_battle phase; scheduled callbacks then pace it forward
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// SubmitPlan records the coach's scripted action; only accepted
	// during strategy selection
	SubmitPlan(ctx context.Context, input *SubmitPlanInput) (*SubmitPlanOutput, error)

	// ResetBattle returns the battle to the pre-battle huddle with
	// counters zeroed, cancelling every pending timer
	ResetBattle(ctx context.Context, input *ResetBattleInput) (*ResetBattleOutput, error)

	// GetSnapshot returns the read-only view of the battle
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// GetRoundResults returns the ordered round log so far
	GetRoundResults(ctx context.Context, input *GetRoundResultsInput) (*GetRoundResultsOutput, error)

	// ListRecentBattles returns recently completed battle records
	ListRecentBattles(ctx context.Context, input *ListRecentBattlesInput) (*ListRecentBattlesOutput, error)
}

// Pacing holds the delays between scheduled phase transitions
type Pacing struct {
	// HuddleDelay paces pre_battle -> pre_battle_huddle -> strategy_selection
	HuddleDelay time.Duration
	// StrategyWindow is how long the coach has before the system
	// substitutes a default plan
	StrategyWindow time.Duration
	// RoundDelay paces combat -> round_resolution
	RoundDelay time.Duration
	// DialogueTimeout bounds the flavor-text collaborator; narration
	// falls back to procedural lines past it
	DialogueTimeout time.Duration
}

// DefaultPacing returns the shipped pacing values
func DefaultPacing() Pacing {
	return Pacing{
		HuddleDelay:     2 * time.Second,
		StrategyWindow:  15 * time.Second,
		RoundDelay:      time.Second,
		DialogueTimeout: 3 * time.Second,
	}
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Psychology    *psychology.Manager
	Evaluator     *adherence.Evaluator
	RogueGen      *rogue.Generator
	Roller        dice.Roller
	Scheduler     scheduler.Scheduler
	Clock         clock.Clock
	IDGenerator   idgen.Generator
	EventBus      events.EventBus
	Dialogue      dialogue.Client
	ChemistryRepo chemistry.Repository
	BattleRepo    battles.Repository
	// Pacing zero value means DefaultPacing
	Pacing Pacing
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Psychology == nil {
		vb.RequiredField("Psychology")
	}
	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}
	if c.RogueGen == nil {
		vb.RequiredField("RogueGen")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Dialogue == nil {
		vb.RequiredField("Dialogue")
	}
	if c.ChemistryRepo == nil {
		vb.RequiredField("ChemistryRepo")
	}
	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	psych         *psychology.Manager
	evaluator     *adherence.Evaluator
	rogueGen      *rogue.Generator
	roller        dice.Roller
	sched         scheduler.Scheduler
	clk           clock.Clock
	idGen         idgen.Generator
	bus           events.EventBus
	dialogue      dialogue.Client
	fallback      *dialogue.Fallback
	chemistryRepo chemistry.Repository
	battleRepo    battles.Repository
	pacing        Pacing

	// mu guards current; one battle is active per orchestrator instance
	mu      sync.Mutex
	current *battleState
}

// NewOrchestrator creates a battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	pacing := cfg.Pacing
	if pacing == (Pacing{}) {
		pacing = DefaultPacing()
	}

	return &orchestrator{
		psych:         cfg.Psychology,
		evaluator:     cfg.Evaluator,
		rogueGen:      cfg.RogueGen,
		roller:        cfg.Roller,
		sched:         cfg.Scheduler,
		clk:           cfg.Clock,
		idGen:         cfg.IDGenerator,
		bus:           cfg.EventBus,
		dialogue:      cfg.Dialogue,
		fallback:      dialogue.NewFallback(),
		chemistryRepo: cfg.ChemistryRepo,
		battleRepo:    cfg.BattleRepo,
		pacing:        pacing,
	}, nil
}

// StartBattle validates the setup and opens a new battle
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil || input.Setup == nil {
		return nil, errors.InvalidArgument("battle setup is required")
	}
	if err := validateSetup(input.Setup); err != nil {
		return nil, err
	}

	setup := normalizeSetup(input.Setup)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current != nil && o.current.phase != entities.PhaseBattleComplete {
		return nil, errors.FailedPrecondition("a battle is already in progress").
			WithMeta("battle_id", o.current.id)
	}

	chemBattles := map[string]int32{
		setup.PlayerTeam.ID:   0,
		setup.OpponentTeam.ID: 0,
	}
	o.loadChemistry(ctx, setup.PlayerTeam, chemBattles)
	o.loadChemistry(ctx, setup.OpponentTeam, chemBattles)

	persona, err := judge.PickPersona(o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign judge persona")
	}
	adjudicator, err := judge.New(&judge.Config{Persona: persona, Roller: o.roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build adjudicator")
	}
	resolver, err := rounds.New(&rounds.Config{
		Evaluator:  o.evaluator,
		RogueGen:   o.rogueGen,
		Judge:      adjudicator,
		Psychology: o.psych,
		Roller:     o.roller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build round resolver")
	}

	state := &battleState{
		id:          o.idGen.Generate(),
		setup:       setup,
		startedAt:   o.clk.Now(),
		generation:  1,
		phase:       entities.PhasePreBattle,
		outcome:     entities.BattleOutcomePending,
		judge:       adjudicator,
		resolver:    resolver,
		chemBattles: chemBattles,
	}
	o.initializeBattleScopedState(state)
	o.current = state

	slog.Info("battle started",
		"battle_id", state.id,
		"player_team", setup.PlayerTeam.Name,
		"opponent_team", setup.OpponentTeam.Name,
		"mode", setup.Mode,
		"stakes", setup.Stakes,
		"judge", persona.Name,
	)

	o.publish(state, TopicBattleStarted)
	o.scheduleLocked(state, o.pacing.HuddleDelay, o.enterHuddle)

	return &StartBattleOutput{
		BattleID: state.id,
		Snapshot: o.snapshotLocked(state),
	}, nil
}

// SubmitPlan records the coach's scripted action for the battle
func (o *orchestrator) SubmitPlan(ctx context.Context, input *SubmitPlanInput) (*SubmitPlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.lookupLocked(input.BattleID)
	if err != nil {
		return nil, err
	}
	if state.phase != entities.PhaseStrategySelection {
		return nil, errors.FailedPrecondition("plans are only accepted during strategy selection").
			WithMeta("phase", string(state.phase))
	}

	plan := input.Plan
	plan.CoachingInfluence = entities.ClampUnit(plan.CoachingInfluence)
	state.plan = &plan

	slog.Info("plan submitted",
		"battle_id", state.id,
		"kind", plan.Kind,
		"ability_id", plan.AbilityID,
		"influence", plan.CoachingInfluence,
	)

	state.cancelPending()
	o.beginCombat(state)

	return &SubmitPlanOutput{Snapshot: o.snapshotLocked(state)}, nil
}

// ResetBattle returns the battle to the pre-battle huddle with counters
// zeroed. Every pending timer is cancelled and the generation token is
// bumped so a stale callback can never touch the fresh state.
func (o *orchestrator) ResetBattle(ctx context.Context, input *ResetBattleInput) (*ResetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.lookupLocked(input.BattleID)
	if err != nil {
		return nil, err
	}

	state.cancelPending()
	state.generation++
	state.startedAt = o.clk.Now()
	state.round = 0
	state.results = nil
	state.plan = nil
	state.outcome = entities.BattleOutcomePending
	o.initializeBattleScopedState(state)

	state.phase = entities.PhasePreBattleHuddle
	state.narrative = introNarrative(state.setup, state.judge.Persona().Name)

	slog.Info("battle reset", "battle_id", state.id, "generation", state.generation)

	o.publish(state, TopicBattleReset)
	o.scheduleLocked(state, o.pacing.HuddleDelay, o.enterStrategy)

	return &ResetBattleOutput{Snapshot: o.snapshotLocked(state)}, nil
}

// GetSnapshot returns the read-only view of the battle
func (o *orchestrator) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.lookupLocked(input.BattleID)
	if err != nil {
		return nil, err
	}
	return &GetSnapshotOutput{Snapshot: o.snapshotLocked(state)}, nil
}

// GetRoundResults returns the ordered round log so far
func (o *orchestrator) GetRoundResults(ctx context.Context, input *GetRoundResultsInput) (*GetRoundResultsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	state, err := o.lookupLocked(input.BattleID)
	if err != nil {
		return nil, err
	}

	results := make([]*entities.RoundResult, len(state.results))
	copy(results, state.results)
	return &GetRoundResultsOutput{Results: results}, nil
}

// ListRecentBattles returns recently completed battle records
func (o *orchestrator) ListRecentBattles(ctx context.Context, input *ListRecentBattlesInput) (*ListRecentBattlesOutput, error) {
	if input == nil {
		input = &ListRecentBattlesInput{}
	}

	out, err := o.battleRepo.ListRecent(ctx, battles.ListRecentInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent battles")
	}
	return &ListRecentBattlesOutput{Records: out.Records}, nil
}

// --- scheduled transitions ---

func (o *orchestrator) enterHuddle(state *battleState) {
	state.phase = entities.PhasePreBattleHuddle
	state.narrative = introNarrative(state.setup, state.judge.Persona().Name)
	o.scheduleLocked(state, o.pacing.HuddleDelay, o.enterStrategy)
}

func (o *orchestrator) enterStrategy(state *battleState) {
	state.phase = entities.PhaseStrategySelection
	o.scheduleLocked(state, o.pacing.StrategyWindow, o.strategyDeadline)
}

// strategyDeadline fires when the coach never answered; the battle
// proceeds on a default plan rather than blocking
func (o *orchestrator) strategyDeadline(state *battleState) {
	if state.phase != entities.PhaseStrategySelection {
		return
	}
	slog.Info("strategy window closed without a plan, using default", "battle_id", state.id)
	o.beginCombat(state)
}

func (o *orchestrator) beginCombat(state *battleState) {
	state.phase = entities.PhaseCombat
	o.scheduleLocked(state, o.pacing.RoundDelay, o.resolveRoundLocked)
}

// resolveRoundLocked runs exactly one round, then either loops back to
// combat or terminates the battle
func (o *orchestrator) resolveRoundLocked(state *battleState) {
	state.phase = entities.PhaseRoundResolution
	state.round++

	mode := state.setup.Mode
	playerActs := state.round%2 == 1

	attTeam, defTeam := state.setup.PlayerTeam, state.setup.OpponentTeam
	if !playerActs {
		attTeam, defTeam = defTeam, attTeam
	}
	attacker := activeFighter(attTeam, mode)
	defender := activeFighter(defTeam, mode)

	momentum := entities.MomentumLosing
	if sideFraction(attTeam, mode) >= sideFraction(defTeam, mode) {
		momentum = entities.MomentumWinning
	}

	planned := o.planFor(state, attacker, defender, playerActs)

	out, err := state.resolver.ResolveRound(&rounds.Input{
		Round:         state.round,
		Attacker:      attacker,
		Defender:      defender,
		AttackerTeam:  attTeam,
		DefenderTeam:  defTeam,
		AttackerState: state.psychStates[attacker.ID],
		DefenderState: state.psychStates[defender.ID],
		Planned:       planned,
		Momentum:      momentum,
	})
	if err != nil {
		slog.Error("round resolution failed", "battle_id", state.id, "round", state.round, "error", err)
		return
	}

	state.psychStates[attacker.ID] = out.AttackerState
	state.psychStates[defender.ID] = out.DefenderState
	state.results = append(state.results, out.Result)

	o.decorateNarrative(state, out.Result, attacker, momentum)
	o.publish(state, TopicRoundResolved)

	slog.Info("round resolved",
		"battle_id", state.id,
		"round", state.round,
		"attacker", attacker.Name,
		"outcome", out.Result.Outcome,
		"damage", out.Result.Damage,
	)

	playerDown := sideDown(state.setup.PlayerTeam, mode)
	oppDown := sideDown(state.setup.OpponentTeam, mode)

	switch {
	case playerDown && oppDown:
		o.complete(state, entities.BattleOutcomeDraw)
	case oppDown:
		o.complete(state, entities.BattleOutcomePlayer)
	case playerDown:
		o.complete(state, entities.BattleOutcomeOpponent)
	case state.round >= maxRounds:
		o.complete(state, tiebreak(state.setup))
	default:
		state.phase = entities.PhaseCombat
		o.scheduleLocked(state, o.pacing.RoundDelay, o.resolveRoundLocked)
	}
}

// tiebreak compares remaining HP fractions at the round cap; an exact
// tie is a draw
func tiebreak(setup *entities.BattleSetup) entities.BattleOutcome {
	playerFrac := sideFraction(setup.PlayerTeam, setup.Mode)
	oppFrac := sideFraction(setup.OpponentTeam, setup.Mode)

	switch {
	case playerFrac > oppFrac:
		return entities.BattleOutcomePlayer
	case oppFrac > playerFrac:
		return entities.BattleOutcomeOpponent
	default:
		return entities.BattleOutcomeDraw
	}
}

func (o *orchestrator) complete(state *battleState, outcome entities.BattleOutcome) {
	state.phase = entities.PhaseBattleComplete
	state.outcome = outcome
	state.narrative = outcomeNarrative(outcome, state.setup, state.round)
	state.cancelPending()

	o.applyChemistryDrift(state, outcome)
	o.recordBattle(state)
	o.publish(state, TopicBattleCompleted)

	slog.Info("battle complete",
		"battle_id", state.id,
		"outcome", outcome,
		"rounds", state.round,
		"judge", state.judge.Persona().Name,
		"elapsed", o.clk.Now().Sub(state.startedAt),
	)
}

// applyChemistryDrift applies the bounded post-battle chemistry
// adjustment, scaled by the battle's stakes, and persists both teams
func (o *orchestrator) applyChemistryDrift(state *battleState, outcome entities.BattleOutcome) {
	player, opponent := state.setup.PlayerTeam, state.setup.OpponentTeam
	stakes := state.setup.Stakes

	switch outcome {
	case entities.BattleOutcomePlayer:
		player.AdjustChemistry(winChemistryPerStake * stakes)
		opponent.AdjustChemistry(-lossChemistryPerStake * stakes)
	case entities.BattleOutcomeOpponent:
		player.AdjustChemistry(-lossChemistryPerStake * stakes)
		opponent.AdjustChemistry(winChemistryPerStake * stakes)
	default:
		player.AdjustChemistry(drawChemistryGain)
		opponent.AdjustChemistry(drawChemistryGain)
	}

	o.saveChemistry(state, player)
	o.saveChemistry(state, opponent)
}

func (o *orchestrator) saveChemistry(state *battleState, team *entities.Team) {
	_, err := o.chemistryRepo.Save(context.Background(), chemistry.SaveInput{
		TeamID:    team.ID,
		Chemistry: team.Chemistry,
		Battles:   state.chemBattles[team.ID] + 1,
	})
	if err != nil {
		slog.Warn("failed to persist team chemistry", "team_id", team.ID, "error", err)
	}
}

func (o *orchestrator) recordBattle(state *battleState) {
	_, err := o.battleRepo.Save(context.Background(), battles.SaveInput{
		BattleID:       state.id,
		PlayerTeamID:   state.setup.PlayerTeam.ID,
		OpponentTeamID: state.setup.OpponentTeam.ID,
		Outcome:        state.outcome,
		Rounds:         state.round,
		JudgeName:      state.judge.Persona().Name,
	})
	if err != nil {
		slog.Warn("failed to persist battle record", "battle_id", state.id, "error", err)
	}
}

// --- helpers ---

func validateSetup(setup *entities.BattleSetup) error {
	vb := errors.NewValidationBuilder()

	if setup.PlayerTeam == nil || len(setup.PlayerTeam.Fighters) == 0 {
		vb.InvalidField("PlayerTeam", "must have at least one fighter")
	}
	if setup.OpponentTeam == nil || len(setup.OpponentTeam.Fighters) == 0 {
		vb.InvalidField("OpponentTeam", "must have at least one fighter")
	}

	return vb.Build()
}

// normalizeSetup substitutes safe defaults for out-of-range setup values
// instead of rejecting them
func normalizeSetup(setup *entities.BattleSetup) *entities.BattleSetup {
	normalized := *setup

	if normalized.Mode != entities.ModeTeamTotal {
		normalized.Mode = entities.ModeRepresentative
	}
	if normalized.Stakes < defaultStakes {
		normalized.Stakes = defaultStakes
	}
	if normalized.Stakes > maxStakes {
		normalized.Stakes = maxStakes
	}
	if _, ok := weightClassNames[normalized.WeightClass]; !ok {
		normalized.WeightClass = entities.WeightClassMiddle
	}

	return &normalized
}

// initializeBattleScopedState restores HP, derives battle-start morale
// from chemistry, and builds fresh psychology for every fighter. The
// environment-modifier bundle applies to the home (player) team only.
func (o *orchestrator) initializeBattleScopedState(state *battleState) {
	state.psychStates = make(map[string]entities.PsychologyState)

	teams := []struct {
		team *entities.Team
		env  map[string]int32
	}{
		{team: state.setup.PlayerTeam, env: state.setup.EnvironmentModifiers},
		{team: state.setup.OpponentTeam, env: nil},
	}

	for _, entry := range teams {
		entry.team.Morale = entities.ClampScore(baseMorale + (entry.team.Chemistry-baseMorale)/chemistryMoraleScale)
		entry.team.MoraleLog = nil
		for _, fighter := range entry.team.Fighters {
			fighter.CurrentHP = fighter.MaxHP
			state.psychStates[fighter.ID] = o.psych.Initialize(fighter, entry.team, entry.env)
		}
	}
}

func (o *orchestrator) loadChemistry(ctx context.Context, team *entities.Team, chemBattles map[string]int32) {
	out, err := o.chemistryRepo.Get(ctx, chemistry.GetInput{TeamID: team.ID})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("failed to load team chemistry", "team_id", team.ID, "error", err)
		}
		return
	}
	team.Chemistry = out.Record.Chemistry
	chemBattles[team.ID] = out.Record.Battles
}

// planFor returns the action the attacker's corner called this round.
// The player side uses the submitted script when one exists; everything
// else gets the system default.
func (o *orchestrator) planFor(state *battleState, attacker, defender *entities.Character, playerActs bool) entities.PlannedAction {
	if playerActs && state.plan != nil {
		plan := *state.plan
		if plan.TargetID == "" {
			plan.TargetID = defender.ID
		}
		return plan
	}
	return defaultPlan(attacker, defender)
}

// defaultPlan leads with the fighter's first ability when one exists
func defaultPlan(attacker, defender *entities.Character) entities.PlannedAction {
	plan := entities.PlannedAction{
		Kind:              entities.ActionKindBasic,
		TargetID:          defender.ID,
		CoachingInfluence: defaultCoachInfluence,
	}
	if len(attacker.Abilities) > 0 {
		plan.Kind = entities.ActionKindAbility
		plan.AbilityID = attacker.Abilities[0].ID
	}
	return plan
}

// decorateNarrative sets a procedural line immediately and lets the
// dialogue collaborator upgrade it asynchronously. Round resolution never
// waits on the collaborator.
func (o *orchestrator) decorateNarrative(
	state *battleState,
	result *entities.RoundResult,
	attacker *entities.Character,
	momentum entities.Momentum,
) {
	lineCtx := dialogue.LineContext{
		CharacterName: attacker.Name,
		Archetype:     attacker.Archetype,
		Round:         result.Round,
		Outcome:       result.Outcome,
		Damage:        result.Damage,
		Momentum:      momentum,
	}

	line, _ := o.fallback.GenerateLine(context.Background(), lineCtx)
	state.narrative = result.Narrative + " " + line

	generation := state.generation
	round := result.Round
	mechanical := result.Narrative

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), o.pacing.DialogueTimeout)
		defer cancel()

		flavored, err := o.dialogue.GenerateLine(ctx, lineCtx)
		if err != nil {
			slog.Warn("dialogue generation failed, keeping procedural line",
				"battle_id", state.id, "round", round, "error", err)
			return
		}

		o.mu.Lock()
		defer o.mu.Unlock()
		current := o.current
		if current == nil || current.generation != generation || current.round != round ||
			current.phase == entities.PhaseBattleComplete {
			return
		}
		current.narrative = mechanical + " " + flavored
	}()
}

func (o *orchestrator) publish(state *battleState, topic string) {
	event := events.NewGameEvent(topic, state.setup.PlayerTeam, state.setup.OpponentTeam)
	if err := o.bus.Publish(context.Background(), event); err != nil {
		slog.Warn("failed to publish battle event", "battle_id", state.id, "topic", topic, "error", err)
	}
}

func (o *orchestrator) lookupLocked(battleID string) (*battleState, error) {
	if battleID == "" {
		return nil, errors.InvalidArgument("battle ID cannot be empty")
	}
	if o.current == nil || o.current.id != battleID {
		return nil, errors.NotFound("battle not found").WithMeta("battle_id", battleID)
	}
	return o.current, nil
}

// scheduleLocked registers a pacing callback guarded by the battle's
// generation token; a callback from a reset generation is a no-op
func (o *orchestrator) scheduleLocked(state *battleState, delay time.Duration, fn func(*battleState)) {
	generation := state.generation
	battleID := state.id

	cancel := o.sched.Schedule(delay, func() {
		o.mu.Lock()
		defer o.mu.Unlock()

		current := o.current
		if current == nil || current.id != battleID || current.generation != generation {
			return
		}
		fn(current)
	})
	state.cancels = append(state.cancels, cancel)
}

func (o *orchestrator) snapshotLocked(state *battleState) *entities.BattleSnapshot {
	mode := state.setup.Mode
	return &entities.BattleSnapshot{
		BattleID:       state.id,
		Phase:          state.phase,
		Round:          state.round,
		Outcome:        state.outcome,
		PlayerFighter:  fighterStatus(activeFighter(state.setup.PlayerTeam, mode)),
		OppFighter:     fighterStatus(activeFighter(state.setup.OpponentTeam, mode)),
		PlayerMorale:   state.setup.PlayerTeam.Morale,
		OpponentMorale: state.setup.OpponentTeam.Morale,
		LastResult:     state.lastResult(),
		Narrative:      state.narrative,
		JudgeName:      state.judge.Persona().Name,
	}
}
