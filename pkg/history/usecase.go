package history

import (
	"context"

	"github.com/google/uuid"
)

// UseCase exposes history reads to the HTTP layer.
type UseCase interface {
	Recent(ctx context.Context, userID uuid.UUID) ([]Record, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Recent(ctx context.Context, userID uuid.UUID) ([]Record, error) {
	items, err := s.repo.ListRecent(ctx, userID, RecentLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}
