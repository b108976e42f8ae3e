// Package environment supplies the opaque modifier bundle applied to the
// home team's psychology baselines at battle start. The engine never
// interprets the bundle beyond the shift keys it already knows.
package environment

import (
	"context"

	"github.com/coachfight/arena-api/internal/engine/psychology"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=environmentmock github.com/coachfight/arena-api/internal/clients/environment Provider

// Quality is a team's headquarters quality tier
type Quality string

// Quality constants
const (
	QualitySpartan  Quality = "QUALITY_SPARTAN"
	QualityStandard Quality = "QUALITY_STANDARD"
	QualityLavish   Quality = "QUALITY_LAVISH"
)

// Provider returns the modifier bundle for a team
type Provider interface {
	Modifiers(ctx context.Context, teamID string) (map[string]int32, error)
}

// qualityBundles maps each tier to its baseline shifts
var qualityBundles = map[Quality]map[string]int32{
	QualitySpartan: {
		psychology.ModifierStressShift:  8,
		psychology.ModifierFatigueShift: 5,
	},
	QualityStandard: {},
	QualityLavish: {
		psychology.ModifierStressShift:  -8,
		psychology.ModifierTrustShift:   5,
		psychology.ModifierFatigueShift: -5,
	},
}

// Static is a Provider backed by a fixed team-to-quality assignment.
// Unknown teams get the default quality.
type Static struct {
	assignments    map[string]Quality
	defaultQuality Quality
}

// NewStatic creates a provider from an assignment table. assignments may
// be nil.
func NewStatic(assignments map[string]Quality, defaultQuality Quality) *Static {
	if defaultQuality == "" {
		defaultQuality = QualityStandard
	}
	return &Static{assignments: assignments, defaultQuality: defaultQuality}
}

// Modifiers returns a copy of the team's modifier bundle
func (s *Static) Modifiers(_ context.Context, teamID string) (map[string]int32, error) {
	quality, ok := s.assignments[teamID]
	if !ok {
		quality = s.defaultQuality
	}

	bundle, ok := qualityBundles[quality]
	if !ok {
		bundle = qualityBundles[QualityStandard]
	}

	out := make(map[string]int32, len(bundle))
	for k, v := range bundle {
		out[k] = v
	}
	return out, nil
}
