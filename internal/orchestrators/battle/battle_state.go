package battle

import (
	"fmt"
	"time"

	"github.com/coachfight/arena-api/internal/engine/judge"
	"github.com/coachfight/arena-api/internal/engine/rounds"
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/pkg/scheduler"
)

// battleState is the single mutable object behind one battle. The
// orchestrator is its only writer; everything handed out is a copy.
type battleState struct {
	id        string
	setup     *entities.BattleSetup
	startedAt time.Time

	// generation guards scheduled callbacks: a callback captured with an
	// older generation is a no-op, so resets can never be mutated by
	// stale timers
	generation int

	phase   entities.Phase
	round   int32
	outcome entities.BattleOutcome

	judge    *judge.Adjudicator
	resolver *rounds.Resolver

	// psychStates holds battle-scoped psychology for every fighter on
	// both rosters, keyed by character ID
	psychStates map[string]entities.PsychologyState

	// plan is the coach's script for the player's fighter; nil means the
	// system default is used each round
	plan *entities.PlannedAction

	results   []*entities.RoundResult
	narrative string

	// chemBattles is each team's persisted battle count at start; the
	// post-battle save writes count+1
	chemBattles map[string]int32

	cancels []scheduler.Cancel
}

func (st *battleState) cancelPending() {
	for _, cancel := range st.cancels {
		cancel()
	}
	st.cancels = nil
}

func (st *battleState) lastResult() *entities.RoundResult {
	if len(st.results) == 0 {
		return nil
	}
	return st.results[len(st.results)-1]
}

// activeFighter returns the fighter currently representing a team.
// Representative mode locks onto the first roster slot; team-total mode
// sends in the next fighter still standing.
func activeFighter(team *entities.Team, mode entities.BattleMode) *entities.Character {
	if team == nil || len(team.Fighters) == 0 {
		return nil
	}
	if mode == entities.ModeTeamTotal {
		for _, f := range team.Fighters {
			if f.Alive() {
				return f
			}
		}
		return team.Fighters[0]
	}
	return team.Fighters[0]
}

// sideDown reports whether a team has lost under the battle mode's
// termination check
func sideDown(team *entities.Team, mode entities.BattleMode) bool {
	if mode == entities.ModeTeamTotal {
		return team.TotalHP() <= 0
	}
	return !team.Fighters[0].Alive()
}

// sideFraction is the remaining-HP fraction used for momentum and the
// round-cap tiebreak
func sideFraction(team *entities.Team, mode entities.BattleMode) float64 {
	if mode == entities.ModeTeamTotal {
		return team.HPFraction()
	}
	return team.Fighters[0].HPFraction()
}

func fighterStatus(c *entities.Character) *entities.FighterStatus {
	if c == nil {
		return nil
	}
	return &entities.FighterStatus{
		ID:        c.ID,
		Name:      c.Name,
		Archetype: c.Archetype,
		CurrentHP: c.CurrentHP,
		MaxHP:     c.MaxHP,
	}
}

var weightClassNames = map[entities.WeightClass]string{
	entities.WeightClassFeather: "featherweight",
	entities.WeightClassMiddle:  "middleweight",
	entities.WeightClassHeavy:   "heavyweight",
}

func introNarrative(setup *entities.BattleSetup, judgeName string) string {
	class, ok := weightClassNames[setup.WeightClass]
	if !ok {
		class = "middleweight"
	}
	return fmt.Sprintf("A %s bout: %s versus %s, with %s presiding. The corners huddle up.",
		class, setup.PlayerTeam.Name, setup.OpponentTeam.Name, judgeName)
}

func outcomeNarrative(outcome entities.BattleOutcome, setup *entities.BattleSetup, round int32) string {
	switch outcome {
	case entities.BattleOutcomePlayer:
		return fmt.Sprintf("It's over in round %d — %s take the win!", round, setup.PlayerTeam.Name)
	case entities.BattleOutcomeOpponent:
		return fmt.Sprintf("It's over in round %d — %s take the win!", round, setup.OpponentTeam.Name)
	default:
		return fmt.Sprintf("After %d rounds the judges can't split them. It's a draw!", round)
	}
}
