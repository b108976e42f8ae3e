// Package dialogue is the boundary to the LLM-backed flavor-text
// collaborator. The engine never depends on its content for state
// decisions and never blocks round resolution on it; when it is slow or
// down, round narration falls back to procedural templates.
package dialogue

import (
	"context"

	"github.com/coachfight/arena-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_client.go -package=dialoguemock github.com/coachfight/arena-api/internal/clients/dialogue Client

// LineContext carries everything a generator may use to flavor a line
type LineContext struct {
	CharacterName string
	Archetype     entities.Archetype
	Round         int32
	Outcome       entities.DeviationOutcome
	Damage        int32
	Momentum      entities.Momentum
}

// Client generates one line of battle flavor text
type Client interface {
	GenerateLine(ctx context.Context, lineCtx LineContext) (string, error)
}
