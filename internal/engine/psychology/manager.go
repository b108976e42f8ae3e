// Package psychology builds and updates per-character psychological
// profiles. The manager is a pure transform: it holds only tuning tables
// and never mutates the states it is given.
package psychology

import (
	"github.com/coachfight/arena-api/internal/entities"
)

// Environment modifier keys the initializer understands. The bundle itself
// is opaque; unknown keys are ignored.
const (
	ModifierStressShift  = "stress_shift"
	ModifierTrustShift   = "trust_shift"
	ModifierFatigueShift = "fatigue_shift"
)

// neutralAffinity is the starting relationship score between teammates
const neutralAffinity = 50

// baseline holds a starting stability-factor profile for an archetype
type baseline struct {
	trust, ego, stress, fatigue int32
}

// archetypeBaselines seeds initial stability factors by archetype
var archetypeBaselines = map[entities.Archetype]baseline{
	entities.ArchetypeBrawler:   {trust: 45, ego: 70, stress: 40, fatigue: 30},
	entities.ArchetypeTactician: {trust: 70, ego: 50, stress: 25, fatigue: 25},
	entities.ArchetypeTrickster: {trust: 40, ego: 60, stress: 35, fatigue: 30},
	entities.ArchetypeGuardian:  {trust: 75, ego: 35, stress: 20, fatigue: 35},
	entities.ArchetypeShowman:   {trust: 50, ego: 85, stress: 30, fatigue: 25},
	entities.ArchetypeZealot:    {trust: 60, ego: 65, stress: 55, fatigue: 40},
}

// defaultBaseline is used for unknown archetypes
var defaultBaseline = baseline{trust: 50, ego: 50, stress: 35, fatigue: 30}

// affinityKey identifies an unordered archetype pairing
type affinityKey struct {
	a, b entities.Archetype
}

// affinityShifts adjusts the neutral teammate affinity for known
// archetype pairings. Keys are stored in both orders.
var affinityShifts = buildAffinityShifts(map[affinityKey]int32{
	{entities.ArchetypeGuardian, entities.ArchetypeBrawler}:   15,
	{entities.ArchetypeTactician, entities.ArchetypeGuardian}: 10,
	{entities.ArchetypeBrawler, entities.ArchetypeBrawler}:    5,
	{entities.ArchetypeShowman, entities.ArchetypeShowman}:    -20,
	{entities.ArchetypeTactician, entities.ArchetypeTrickster}: -10,
	{entities.ArchetypeZealot, entities.ArchetypeTrickster}:    -15,
})

func buildAffinityShifts(pairs map[affinityKey]int32) map[affinityKey]int32 {
	out := make(map[affinityKey]int32, len(pairs)*2)
	for k, v := range pairs {
		out[k] = v
		out[affinityKey{a: k.b, b: k.a}] = v
	}
	return out
}

// Tunables are the per-round stability adjustments. They are configuration,
// not constants, because the balance values are expected to be retuned.
type Tunables struct {
	SuccessStressRelief int32 // stress drop when the plan lands
	SuccessTrustGain    int32 // trust gain when the plan lands
	ImproviseStressCost int32
	ImproviseTrustCost  int32
	PunishedStressCost  int32 // rogue action that got punished
	PunishedTrustCost   int32
	PaidOffStressRelief int32 // rogue action that paid off
	PaidOffTrustCost    int32 // trust still erodes after going off-script
	PaidOffEgoGain      int32
	RoundFatigueCost    int32
	DamageStressDivisor int32 // defender stress rises by damage/divisor
	DamageStressCap     int32
	ChemistryTrustPivot int32 // chemistry above this raises trust at init
	ChemistryTrustScale int32
}

// DefaultTunables returns the shipped balance values
func DefaultTunables() Tunables {
	return Tunables{
		SuccessStressRelief: 8,
		SuccessTrustGain:    6,
		ImproviseStressCost: 4,
		ImproviseTrustCost:  2,
		PunishedStressCost:  12,
		PunishedTrustCost:   18,
		PaidOffStressRelief: 5,
		PaidOffTrustCost:    4,
		PaidOffEgoGain:      5,
		RoundFatigueCost:    5,
		DamageStressDivisor: 4,
		DamageStressCap:     15,
		ChemistryTrustPivot: 50,
		ChemistryTrustScale: 5,
	}
}

// Manager builds and advances psychology states
type Manager struct {
	tunables Tunables
}

// New creates a manager with the given tunables
func New(tunables Tunables) *Manager {
	return &Manager{tunables: tunables}
}

// NewDefault creates a manager with the shipped balance values
func NewDefault() *Manager {
	return New(DefaultTunables())
}

// Initialize builds a battle-start psychology state for one character.
// envModifiers may be nil; it is the opaque bundle from the environment
// provider and shifts baselines additively.
func (m *Manager) Initialize(
	character *entities.Character,
	team *entities.Team,
	envModifiers map[string]int32,
) entities.PsychologyState {
	base, ok := archetypeBaselines[character.Archetype]
	if !ok {
		base = defaultBaseline
	}

	trust := base.trust
	if team != nil {
		trust += (team.Chemistry - m.tunables.ChemistryTrustPivot) / m.tunables.ChemistryTrustScale
	}

	stress := base.stress
	fatigue := base.fatigue
	if envModifiers != nil {
		stress += envModifiers[ModifierStressShift]
		trust += envModifiers[ModifierTrustShift]
		fatigue += envModifiers[ModifierFatigueShift]
	}

	state := entities.PsychologyState{
		CharacterID:   character.ID,
		TrustInCoach:  entities.ClampScore(trust),
		Ego:           entities.ClampScore(base.ego),
		Stress:        entities.ClampScore(stress),
		Fatigue:       entities.ClampScore(fatigue),
		Relationships: make(map[string]int32),
	}
	state.Mood = entities.DeriveMood(state.Stress, state.TrustInCoach)

	if team != nil {
		for _, mate := range team.Fighters {
			if mate.ID == character.ID {
				continue
			}
			affinity := int32(neutralAffinity)
			if shift, ok := affinityShifts[affinityKey{a: character.Archetype, b: mate.Archetype}]; ok {
				affinity += shift
			}
			state.Relationships[mate.ID] = entities.ClampScore(affinity)
		}
	}

	return state
}

// Update advances a psychology state from one round's outcome. The state's
// CharacterID decides whether the actor or defender adjustments apply; a
// state for an uninvolved character is returned unchanged.
func (m *Manager) Update(state entities.PsychologyState, result *entities.RoundResult) entities.PsychologyState {
	if result == nil {
		return state
	}

	next := state.Clone()

	switch state.CharacterID {
	case result.AttackerID:
		m.updateActor(&next, result)
	case result.DefenderID:
		m.updateDefender(&next, result)
	default:
		return state
	}

	next.Mood = entities.DeriveMood(next.Stress, next.TrustInCoach)
	return next
}

func (m *Manager) updateActor(next *entities.PsychologyState, result *entities.RoundResult) {
	t := m.tunables

	switch result.Outcome {
	case entities.OutcomeFollowsPlan:
		next.Stress = entities.ClampScore(next.Stress - t.SuccessStressRelief)
		next.TrustInCoach = entities.ClampScore(next.TrustInCoach + t.SuccessTrustGain)
	case entities.OutcomeImprovises:
		next.Stress = entities.ClampScore(next.Stress + t.ImproviseStressCost)
		next.TrustInCoach = entities.ClampScore(next.TrustInCoach - t.ImproviseTrustCost)
	case entities.OutcomeGoesRogue:
		if result.MoraleDelta >= 0 && result.Backlash == 0 {
			// the gamble paid off
			next.Stress = entities.ClampScore(next.Stress - t.PaidOffStressRelief)
			next.TrustInCoach = entities.ClampScore(next.TrustInCoach - t.PaidOffTrustCost)
			next.Ego = entities.ClampScore(next.Ego + t.PaidOffEgoGain)
		} else {
			next.Stress = entities.ClampScore(next.Stress + t.PunishedStressCost)
			next.TrustInCoach = entities.ClampScore(next.TrustInCoach - t.PunishedTrustCost)
		}
	}

	if result.Backlash > 0 {
		next.Stress = entities.ClampScore(next.Stress + m.damageStress(result.Backlash))
	}
	next.Fatigue = entities.ClampScore(next.Fatigue + t.RoundFatigueCost)
}

func (m *Manager) updateDefender(next *entities.PsychologyState, result *entities.RoundResult) {
	next.Stress = entities.ClampScore(next.Stress + m.damageStress(result.Damage))
	next.Fatigue = entities.ClampScore(next.Fatigue + m.tunables.RoundFatigueCost/2)
}

func (m *Manager) damageStress(damage int32) int32 {
	if damage <= 0 {
		return 0
	}
	stress := damage / m.tunables.DamageStressDivisor
	if stress > m.tunables.DamageStressCap {
		stress = m.tunables.DamageStressCap
	}
	return stress
}
