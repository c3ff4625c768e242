package recommendation

import (
	"context"
	"errors"
	"time"
)

// Submission is one recorded skill request. Rows are append-only.
type Submission struct {
	ID        int64
	Skill     string
	CreatedAt time.Time
}

var (
	ErrValidation = errors.New("skill is required")
	ErrStore      = errors.New("store error")
	ErrGeneration = errors.New("generation failed")
)

// SkillRepository records submitted skills.
type SkillRepository interface {
	Append(ctx context.Context, skill string) (Submission, error)
}
