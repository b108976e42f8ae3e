// Package adherence decides whether a fighter follows the coach's plan.
//
// The deviation risk is a weighted combination of the stability factors;
// one uniform draw against two risk-derived thresholds picks the outcome.
// Weights and thresholds are configuration because the shipped balance
// values are expected to be retuned.
package adherence

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/errors"
	"github.com/coachfight/arena-api/internal/pkg/rng"
)

// Weights define the deviation-risk formula:
//
//	risk = Base + stress*Stress + ego*Ego + fatigue*Fatigue
//	       - trust*Trust - coachingInfluence*Coaching
//
// with stability factors on their 0-100 scale and risk clamped to [0,1].
type Weights struct {
	Base     float64
	Stress   float64
	Ego      float64
	Fatigue  float64
	Trust    float64
	Coaching float64
	// RogueShare in [0,1] is the fraction of the deviation band that
	// goes rogue rather than improvises
	RogueShare float64
}

// DefaultWeights returns the shipped balance values
func DefaultWeights() Weights {
	return Weights{
		Base:       0.05,
		Stress:     0.0035,
		Ego:        0.0025,
		Fatigue:    0.0015,
		Trust:      0.0040,
		Coaching:   0.25,
		RogueShare: 0.6,
	}
}

// Result is the adherence verdict plus the risk that produced it
type Result struct {
	Outcome  entities.DeviationOutcome
	RiskUsed float64
}

// Evaluator computes deviation verdicts
type Evaluator struct {
	weights Weights
	roller  dice.Roller
}

// Config holds the dependencies for the evaluator
type Config struct {
	Weights Weights
	Roller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Weights.RogueShare < 0 || c.Weights.RogueShare > 1 {
		vb.InvalidField("Weights.RogueShare", "must be in [0,1]")
	}

	return vb.Build()
}

// New creates an evaluator with the provided dependencies
func New(cfg *Config) (*Evaluator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Evaluator{
		weights: cfg.Weights,
		roller:  cfg.Roller,
	}, nil
}

// Risk computes the deviation risk for a state/action pair without
// drawing. Exposed separately so callers can inspect risk directly.
func (e *Evaluator) Risk(state entities.PsychologyState, planned entities.PlannedAction) float64 {
	w := e.weights

	risk := w.Base +
		float64(state.Stress)*w.Stress +
		float64(state.Ego)*w.Ego +
		float64(state.Fatigue)*w.Fatigue -
		float64(state.TrustInCoach)*w.Trust -
		entities.ClampUnit(planned.CoachingInfluence)*w.Coaching

	return entities.ClampUnit(risk)
}

// Evaluate draws once and partitions the draw space by risk: the region
// below 1-risk follows the plan, the remainder splits between improvising
// and going rogue by RogueShare. Given the same state, action, and roller
// stream the result is reproducible.
func (e *Evaluator) Evaluate(state entities.PsychologyState, planned entities.PlannedAction) (Result, error) {
	risk := e.Risk(state, planned)

	draw, err := rng.UnitInterval(e.roller)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to draw adherence roll")
	}

	lowThreshold := 1 - risk
	highThreshold := 1 - risk*e.weights.RogueShare

	outcome := entities.OutcomeFollowsPlan
	switch {
	case draw < lowThreshold:
		outcome = entities.OutcomeFollowsPlan
	case draw < highThreshold:
		outcome = entities.OutcomeImprovises
	default:
		outcome = entities.OutcomeGoesRogue
	}

	return Result{Outcome: outcome, RiskUsed: risk}, nil
}
