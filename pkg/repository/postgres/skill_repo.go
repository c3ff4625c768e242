package postgres

import (
	"context"
	"time"

	"github.com/artem13815/skillpath/pkg/recommendation"
	storage "github.com/artem13815/skillpath/pkg/storage/postgres"
)

// SkillRepository appends skill submissions; rows are never read back or changed.
type SkillRepository struct {
	store *storage.Store
}

func NewSkillRepository(store *storage.Store) *SkillRepository {
	return &SkillRepository{store: store}
}

func (r *SkillRepository) Append(ctx context.Context, skill string) (recommendation.Submission, error) {
	row := r.store.QueryRow(ctx, `
		INSERT INTO skills (skill)
		VALUES ($1)
		RETURNING id, created_at
	`, skill)
	sub := recommendation.Submission{Skill: skill}
	var createdAt time.Time
	if err := row.Scan(&sub.ID, &createdAt); err != nil {
		return recommendation.Submission{}, err
	}
	sub.CreatedAt = createdAt.UTC()
	return sub, nil
}
