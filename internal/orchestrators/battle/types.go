package battle

import (
	"github.com/coachfight/arena-api/internal/entities"
	"github.com/coachfight/arena-api/internal/repositories/battles"
)

// StartBattleInput contains the setup for a new battle
type StartBattleInput struct {
	Setup *entities.BattleSetup
}

// StartBattleOutput contains the created battle's ID and initial snapshot
type StartBattleOutput struct {
	BattleID string
	Snapshot *entities.BattleSnapshot
}

// SubmitPlanInput carries the coach's plan for the player's active fighter.
// Plans are accepted only while the battle is in strategy selection; the
// submitted plan is the script for the rest of the battle.
type SubmitPlanInput struct {
	BattleID string
	Plan     entities.PlannedAction
}

// SubmitPlanOutput contains the snapshot after the plan is accepted
type SubmitPlanOutput struct {
	Snapshot *entities.BattleSnapshot
}

// ResetBattleInput identifies the battle to reset
type ResetBattleInput struct {
	BattleID string
}

// ResetBattleOutput contains the snapshot after the reset
type ResetBattleOutput struct {
	Snapshot *entities.BattleSnapshot
}

// GetSnapshotInput identifies the battle to view
type GetSnapshotInput struct {
	BattleID string
}

// GetSnapshotOutput contains the read-only battle view
type GetSnapshotOutput struct {
	Snapshot *entities.BattleSnapshot
}

// GetRoundResultsInput identifies the battle whose round log to read
type GetRoundResultsInput struct {
	BattleID string
}

// GetRoundResultsOutput contains the ordered round results so far
type GetRoundResultsOutput struct {
	Results []*entities.RoundResult
}

// ListRecentBattlesInput contains parameters for listing finished battles
type ListRecentBattlesInput struct {
	Limit int64
}

// ListRecentBattlesOutput contains recent battle records, newest first
type ListRecentBattlesOutput struct {
	Records []*battles.Record
}
