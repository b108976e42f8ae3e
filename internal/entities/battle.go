package entities

// Phase is the battle state machine's position
type Phase string

// Phase constants, in transition order
const (
	PhasePreBattle         Phase = "pre_battle"
	PhasePreBattleHuddle   Phase = "pre_battle_huddle"
	PhaseStrategySelection Phase = "strategy_selection"
	PhaseCombat            Phase = "combat"
	PhaseRoundResolution   Phase = "round_resolution"
	PhaseBattleComplete    Phase = "battle_complete"
)

// BattleMode selects the termination check
type BattleMode string

// BattleMode constants
const (
	// ModeRepresentative ends when a team's active fighter drops
	ModeRepresentative BattleMode = "MODE_REPRESENTATIVE"
	// ModeTeamTotal ends when a whole team's HP sum drops to zero
	ModeTeamTotal BattleMode = "MODE_TEAM_TOTAL"
)

// BattleOutcome is the terminal result of a battle
type BattleOutcome string

// BattleOutcome constants
const (
	BattleOutcomePlayer   BattleOutcome = "player"
	BattleOutcomeOpponent BattleOutcome = "opponent"
	BattleOutcomeDraw     BattleOutcome = "draw"
	BattleOutcomePending  BattleOutcome = ""
)

// WeightClass is cosmetic matchmaking flavor echoed in announcements
type WeightClass string

// WeightClass constants
const (
	WeightClassFeather WeightClass = "WEIGHT_FEATHER"
	WeightClassMiddle  WeightClass = "WEIGHT_MIDDLE"
	WeightClassHeavy   WeightClass = "WEIGHT_HEAVY"
)

// Momentum is whether a team is currently winning or losing, used to
// bias rogue-action severity
type Momentum string

// Momentum constants
const (
	MomentumWinning Momentum = "MOMENTUM_WINNING"
	MomentumLosing  Momentum = "MOMENTUM_LOSING"
)

// BattleSetup is the inbound contract for starting a battle
type BattleSetup struct {
	PlayerTeam   *Team
	OpponentTeam *Team
	Mode         BattleMode
	WeightClass  WeightClass
	// Stakes in [1,3] scales the post-battle chemistry adjustment
	Stakes int32
	// EnvironmentModifiers is an opaque bundle applied to the home
	// (player) team's psychology baselines at battle start
	EnvironmentModifiers map[string]int32
}

// RoundResult is the immutable record of one resolved round
type RoundResult struct {
	Round        int32
	AttackerID   string
	DefenderID   string
	Outcome      DeviationOutcome
	RiskUsed     float64
	ActionTaken  string
	Damage       int32
	Backlash     int32
	PlanAdherent bool
	AttackerHP   int32
	DefenderHP   int32
	MoraleDelta  int32
	Narrative    string
	// RogueAction and Ruling are set together when Outcome is goes_rogue,
	// and are both nil otherwise
	RogueAction *RogueAction
	Ruling      *JudgeRuling
}

// BattleSnapshot is the read-only view exposed after every transition
type BattleSnapshot struct {
	BattleID       string
	Phase          Phase
	Round          int32
	Outcome        BattleOutcome
	PlayerFighter  *FighterStatus
	OppFighter     *FighterStatus
	PlayerMorale   int32
	OpponentMorale int32
	LastResult     *RoundResult
	Narrative      string
	JudgeName      string
}

// FighterStatus is a fighter's presentation-facing state
type FighterStatus struct {
	ID        string
	Name      string
	Archetype Archetype
	CurrentHP int32
	MaxHP     int32
}
