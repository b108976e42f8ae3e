package entities

// ActionKind distinguishes a basic attack from an ability use
type ActionKind string

// ActionKind constants
const (
	ActionKindBasic   ActionKind = "ACTION_BASIC"
	ActionKindAbility ActionKind = "ACTION_ABILITY"
)

// PlannedAction is the coach's call for one fighter this round
type PlannedAction struct {
	Kind      ActionKind
	AbilityID string // set when Kind is ACTION_ABILITY
	TargetID  string
	// CoachingInfluence in [0,1] reduces deviation probability
	CoachingInfluence float64
}

// DeviationOutcome is the adherence verdict for one round
type DeviationOutcome string

// DeviationOutcome constants
const (
	OutcomeFollowsPlan DeviationOutcome = "follows_plan"
	OutcomeImprovises  DeviationOutcome = "improvises"
	OutcomeGoesRogue   DeviationOutcome = "goes_rogue"
)

// RogueActionType flavors an off-script action by archetype
type RogueActionType string

// RogueActionType constants
const (
	RogueReckless       RogueActionType = "ROGUE_RECKLESS"        // all-out, high variance
	RogueGrandstanding  RogueActionType = "ROGUE_GRANDSTANDING"   // playing to the crowd
	RogueEvasive        RogueActionType = "ROGUE_EVASIVE"         // self-protective retreat
	RogueSelfSabotaging RogueActionType = "ROGUE_SELF_SABOTAGING" // desperate, likely to backfire
	RogueDefiant        RogueActionType = "ROGUE_DEFIANT"         // ignores the call, picks own target

	// Severity bounds for rogue actions
	RogueSeverityMin = 1
	RogueSeverityMax = 5
)

// RogueAction is a deviation candidate. Damage numbers are the judge's
// responsibility; this carries only intent.
type RogueAction struct {
	ActorID     string
	TargetID    string
	Type        RogueActionType
	Description string
	// Intensity in [1,100] is the declared effort behind the action
	Intensity int32
	// Severity in [RogueSeverityMin, RogueSeverityMax] scales consequences
	Severity int32
}

// JudgeRuling is the judge's verdict on one rogue action. Exactly one
// ruling exists per rogue action and none otherwise.
type JudgeRuling struct {
	PersonaName      string
	Narrative        string
	CoachExplanation string
	DamageToTarget   int32
	BacklashToActor  int32
	MoraleDelta      int32
}
