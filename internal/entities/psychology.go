package entities

// Mood is a discrete bucket derived from the stress/trust pair
type Mood string

// Mood constants
const (
	MoodComposed Mood = "MOOD_COMPOSED"  // low stress
	MoodLockedIn Mood = "MOOD_LOCKED_IN" // high trust, manageable stress
	MoodRestless Mood = "MOOD_RESTLESS"  // middling everything
	MoodRattled  Mood = "MOOD_RATTLED"   // high stress, trust holding
	MoodVolatile Mood = "MOOD_VOLATILE"  // high stress, low trust
)

// PsychologyState is a character's battle-scoped psychological profile.
// It is immutable: every update returns a new value. Created at battle
// start, destroyed when the battle ends.
type PsychologyState struct {
	CharacterID string

	// Stability factors, each 0-100
	TrustInCoach int32
	Ego          int32
	Stress       int32
	Fatigue      int32

	Mood Mood

	// Relationships maps teammate ID to affinity, 0-100 with 50 neutral
	Relationships map[string]int32

	// DeviationRisk is the last computed risk, always in [0,1]
	DeviationRisk float64
}

// Clone returns a deep copy so updates never alias the old state
func (p PsychologyState) Clone() PsychologyState {
	out := p
	out.Relationships = make(map[string]int32, len(p.Relationships))
	for k, v := range p.Relationships {
		out.Relationships[k] = v
	}
	return out
}

// DeriveMood buckets a stress/trust pair into a Mood
func DeriveMood(stress, trust int32) Mood {
	switch {
	case stress >= 70 && trust < 40:
		return MoodVolatile
	case stress >= 70:
		return MoodRattled
	case stress < 30 && trust >= 60:
		return MoodLockedIn
	case stress < 30:
		return MoodComposed
	default:
		return MoodRestless
	}
}
