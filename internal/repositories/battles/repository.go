// Package battles provides the repository for completed battle records
package battles

import (
	"context"
	"time"

	"github.com/coachfight/arena-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/coachfight/arena-api/internal/repositories/battles Repository

// Record summarizes one completed battle
type Record struct {
	BattleID       string
	PlayerTeamID   string
	OpponentTeamID string
	Outcome        entities.BattleOutcome
	Rounds         int32
	JudgeName      string
	CompletedAt    time.Time
}

// SaveInput contains parameters for recording a completed battle
type SaveInput struct {
	BattleID       string
	PlayerTeamID   string
	OpponentTeamID string
	Outcome        entities.BattleOutcome
	Rounds         int32
	JudgeName      string
}

// SaveOutput contains the result of recording a battle
type SaveOutput struct {
	Record *Record
}

// GetInput contains parameters for loading a battle record
type GetInput struct {
	BattleID string
}

// GetOutput contains the result of loading a battle record
type GetOutput struct {
	Record *Record
}

// ListRecentInput contains parameters for listing recent battles
type ListRecentInput struct {
	Limit int64
}

// ListRecentOutput contains the most recent battle records, newest first
type ListRecentOutput struct {
	Records []*Record
}

// Repository persists completed battle records
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error)
}
