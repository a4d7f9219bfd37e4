package gormdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artem13815/aicomparator/pkg/history"
)

// HistoryRepository implements history.Repository on GORM.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, rec history.Record) (history.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	row := QueryHistory{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Prompt:         rec.Prompt,
		ResponseGroq:   rec.ResponseGroq,
		ResponseGemini: rec.ResponseGemini,
		Mode:           string(rec.Mode),
		CreatedAt:      rec.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return history.Record{}, err
	}
	return rec, nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]history.Record, error) {
	var rows []QueryHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]history.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
