package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/aicomparator/pkg/health/checkers"
	"github.com/artem13815/aicomparator/pkg/storage/sqlite"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadyReportsFailingDependency(t *testing.T) {
	ok := checkers.NewPingChecker("cache", pingFunc(func(context.Context) error { return nil }))
	bad := checkers.NewPingChecker("postgres", pingFunc(func(context.Context) error { return errors.New("connection refused") }))

	assert.NoError(t, NewService(ok).Ready(context.Background()))

	err := NewService(ok, bad).Ready(context.Background())
	assert.EqualError(t, err, "postgres: connection refused")
}

func TestGormCheckerOnSQLite(t *testing.T) {
	db, err := sqlite.Open("file::memory:")
	if !assert.NoError(t, err) {
		return
	}
	ch := checkers.NewGormChecker(db)
	assert.Equal(t, "sqlite", ch.Name())
	assert.NoError(t, NewService(ch).Ready(context.Background()))
}
