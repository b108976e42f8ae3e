// Package judge adjudicates rogue actions. Every rogue action receives a
// ruling; failure is expressed through low damage and morale penalties,
// never through rejection.
package judge

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
)

// typeDamageScale converts declared intent into a damage bias per rogue
// type. Evasive deviations barely touch the opponent.
var typeDamageScale = map[entities.RogueActionType]float64{
	entities.RogueReckless:       1.2,
	entities.RogueGrandstanding:  0.8,
	entities.RogueEvasive:        0.2,
	entities.RogueSelfSabotaging: 0.5,
	entities.RogueDefiant:        1.0,
}

// Backlash tuning
const (
	backlashSeverityFloor = 3 // severities below this draw no backlash
	backlashPerSeverity   = 4
	moralePerSeverity     = 2
)

// Adjudicator rules on rogue actions under one persona
type Adjudicator struct {
	persona Persona
	roller  dice.Roller
}

// Config holds the dependencies for the adjudicator
type Config struct {
	Persona Persona
	Roller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Persona.Name == "" {
		vb.RequiredField("Persona")
	}

	return vb.Build()
}

// New creates an adjudicator with the provided dependencies
func New(cfg *Config) (*Adjudicator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Adjudicator{
		persona: cfg.Persona,
		roller:  cfg.Roller,
	}, nil
}

// Persona returns the persona this adjudicator rules under
func (a *Adjudicator) Persona() Persona {
	return a.persona
}

// Rule produces the single ruling for one rogue action. Damage scales
// with declared intensity, persona leniency, and a variance roll;
// backlash rises with severity; the morale delta is negative unless the
// payoff roll succeeds.
func (a *Adjudicator) Rule(
	action *entities.RogueAction,
	opponent *entities.Character,
	actingTeamMorale int32,
) (*entities.JudgeRuling, error) {
	if action == nil {
		return nil, errors.InvalidArgument("rogue action is required")
	}
	if opponent == nil {
		return nil, errors.InvalidArgument("opponent is required")
	}

	variance, err := a.roller.Roll(a.persona.VarianceDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage variance")
	}

	scale := typeDamageScale[action.Type]
	base := float64(action.Intensity) / 4 * scale * a.persona.Leniency
	damage := int32(base) + int32(variance) - int32(a.persona.VarianceDie/2)
	if damage < 0 {
		damage = 0
	}

	backlash := int32(0)
	if action.Severity >= backlashSeverityFloor {
		backlash = int32(float64((action.Severity-backlashSeverityFloor+1)*backlashPerSeverity) * a.persona.Harshness)
	}
	if action.Type == entities.RogueSelfSabotaging && backlash == 0 {
		backlash = backlashPerSeverity
	}

	paidOff, err := a.rollPayoff(action)
	if err != nil {
		return nil, err
	}

	var moraleDelta int32
	if paidOff {
		moraleDelta = action.Severity
		// an action that pays off draws no backlash
		backlash = 0
	} else {
		moraleDelta = -action.Severity * moralePerSeverity
	}

	return &entities.JudgeRuling{
		PersonaName:      a.persona.Name,
		Narrative:        a.narrate(action, paidOff, damage),
		CoachExplanation: a.explain(action, paidOff, moraleDelta),
		DamageToTarget:   damage,
		BacklashToActor:  backlash,
		MoraleDelta:      moraleDelta,
	}, nil
}

func (a *Adjudicator) rollPayoff(action *entities.RogueAction) (bool, error) {
	chance := a.persona.PayoffChance + payoffBonus(action.Type)
	if chance <= 0 {
		return false, nil
	}

	roll, err := a.roller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll payoff")
	}
	return roll <= chance, nil
}

func (a *Adjudicator) narrate(action *entities.RogueAction, paidOff bool, damage int32) string {
	verdict := "and the judge is not amused"
	if paidOff {
		verdict = "and somehow it lands beautifully"
	} else if damage == 0 {
		verdict = "and it comes to nothing"
	}
	return fmt.Sprintf("%s %s. %s %s.", a.persona.Catchphrase, action.Description, a.persona.Name, verdict)
}

func (a *Adjudicator) explain(action *entities.RogueAction, paidOff bool, moraleDelta int32) string {
	if paidOff {
		return fmt.Sprintf("Your fighter went off-script, but %s ruled the gamble paid off (+%d morale).",
			a.persona.Name, moraleDelta)
	}
	return fmt.Sprintf("Your fighter ignored the plan; %s penalized the %s deviation (%d morale).",
		a.persona.Name, severityWord(action.Severity), moraleDelta)
}

func severityWord(severity int32) string {
	switch {
	case severity >= 5:
		return "catastrophic"
	case severity >= 4:
		return "serious"
	case severity >= 3:
		return "significant"
	default:
		return "minor"
	}
}
