package dialogue

import (
	"context"
	"fmt"

	"github.com/coachfight/arena-api/internal/entities"
)

// fallback line templates per deviation outcome, filled with the
// fighter's name and archetype
var fallbackLines = map[entities.DeviationOutcome][]string{
	entities.OutcomeFollowsPlan: {
		"%s executes the call like a seasoned %s!",
		"Textbook work from %s — that's %s discipline!",
		"%s sticks to the plan and it shows, pure %s craft!",
	},
	entities.OutcomeImprovises: {
		"%s freelances a little there — classic %s instincts!",
		"Not quite the call, but %s makes it work the %s way!",
	},
	entities.OutcomeGoesRogue: {
		"%s has thrown out the playbook entirely — %s chaos unleashed!",
		"The corner is furious! %s goes full %s on us!",
	},
}

// Fallback generates procedural commentary with no external calls. It is
// both the degraded-mode substitute when the LLM collaborator fails and a
// deterministic stand-in for tests.
type Fallback struct{}

// NewFallback creates the procedural generator
func NewFallback() *Fallback {
	return &Fallback{}
}

var _ Client = (*Fallback)(nil)

// GenerateLine builds a line from archetype and round outcome. It never
// fails.
func (f *Fallback) GenerateLine(_ context.Context, lineCtx LineContext) (string, error) {
	lines, ok := fallbackLines[lineCtx.Outcome]
	if !ok {
		lines = fallbackLines[entities.OutcomeFollowsPlan]
	}

	// deterministic pick keyed on round so consecutive rounds vary
	line := lines[int(lineCtx.Round)%len(lines)]
	return fmt.Sprintf(line, lineCtx.CharacterName, lineCtx.Archetype.DisplayName()), nil
}
