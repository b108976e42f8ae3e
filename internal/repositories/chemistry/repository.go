// Package chemistry provides the repository for team chemistry, the one
// value that persists across battles and drifts slowly with results.
package chemistry

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=chemistrymock github.com/coachfight/arena-api/internal/repositories/chemistry Repository

// Record is a team's persisted chemistry
type Record struct {
	TeamID    string
	Chemistry int32 // 0-100
	Battles   int32 // battles contributing to the drift
	UpdatedAt time.Time
}

// GetInput contains parameters for loading a team's chemistry
type GetInput struct {
	TeamID string
}

// GetOutput contains the result of loading a team's chemistry
type GetOutput struct {
	Record *Record
}

// SaveInput contains parameters for persisting a team's chemistry
type SaveInput struct {
	TeamID    string
	Chemistry int32
	Battles   int32
}

// SaveOutput contains the result of persisting a team's chemistry
type SaveOutput struct {
	Record *Record
}

// Repository persists team chemistry across battles
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}
