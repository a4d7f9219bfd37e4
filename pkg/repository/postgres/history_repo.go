package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/aicomparator/pkg/history"
)

// HistoryRepository stores prompt/response records in query_history.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

func (r *HistoryRepository) Append(ctx context.Context, rec history.Record) (history.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO query_history (id, user_id, prompt, response_groq, response_gemini, mode, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, rec.ID, rec.UserID, rec.Prompt, rec.ResponseGroq, rec.ResponseGemini, string(rec.Mode), rec.CreatedAt)
	if err != nil {
		return history.Record{}, err
	}
	return rec, nil
}

func (r *HistoryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]history.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, prompt, response_groq, response_gemini, mode, created_at
FROM query_history
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (history.Record, error) {
		var rec history.Record
		var mode string
		var created time.Time
		if err := row.Scan(&rec.ID, &rec.UserID, &rec.Prompt, &rec.ResponseGroq, &rec.ResponseGemini, &mode, &created); err != nil {
			return history.Record{}, err
		}
		rec.Mode = history.Mode(mode)
		rec.CreatedAt = created.UTC()
		return rec, nil
	})
}
