package entities

// moraleHistoryLimit bounds the per-team morale log
const moraleHistoryLimit = 50

// Team is an ordered roster of characters under one coach.
// Chemistry persists across battles; morale is battle-scoped.
type Team struct {
	ID        string
	Name      string
	CoachName string
	Fighters  []*Character
	Chemistry int32 // 0-100, drifts slowly across battles
	Morale    int32 // 0-100, reset per battle
	MoraleLog []MoraleEvent
}

// MoraleEvent records one morale adjustment and why it happened
type MoraleEvent struct {
	Round  int32
	Delta  int32
	Reason string
}

// GetID returns the team's ID, satisfying core.Entity
func (t *Team) GetID() string {
	return t.ID
}

// GetType returns the entity type for the event bus
func (t *Team) GetType() string {
	return "team"
}

// AdjustMorale applies a clamped morale delta and appends to the log.
// Returns the delta actually applied after clamping.
func (t *Team) AdjustMorale(round, delta int32, reason string) int32 {
	before := t.Morale
	t.Morale = ClampScore(t.Morale + delta)
	applied := t.Morale - before

	t.MoraleLog = append(t.MoraleLog, MoraleEvent{Round: round, Delta: applied, Reason: reason})
	if len(t.MoraleLog) > moraleHistoryLimit {
		t.MoraleLog = t.MoraleLog[len(t.MoraleLog)-moraleHistoryLimit:]
	}
	return applied
}

// AdjustChemistry applies a clamped chemistry drift
func (t *Team) AdjustChemistry(delta int32) {
	t.Chemistry = ClampScore(t.Chemistry + delta)
}

// TotalHP sums current HP across the roster
func (t *Team) TotalHP() int32 {
	var total int32
	for _, f := range t.Fighters {
		total += f.CurrentHP
	}
	return total
}

// TotalMaxHP sums max HP across the roster
func (t *Team) TotalMaxHP() int32 {
	var total int32
	for _, f := range t.Fighters {
		total += f.MaxHP
	}
	return total
}

// HPFraction returns whole-team remaining HP as a fraction of max
func (t *Team) HPFraction() float64 {
	maxHP := t.TotalMaxHP()
	if maxHP <= 0 {
		return 0
	}
	return float64(t.TotalHP()) / float64(maxHP)
}

// FighterByID looks up a fighter on the roster
func (t *Team) FighterByID(id string) *Character {
	for _, f := range t.Fighters {
		if f.ID == id {
			return f
		}
	}
	return nil
}
