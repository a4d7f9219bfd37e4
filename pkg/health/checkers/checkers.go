package checkers

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const pingTimeout = time.Second

// Pinger is satisfied by *pgxpool.Pool and *sql.DB-like handles.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker reports a dependency healthy when Ping succeeds.
type PingChecker struct {
	name string
	p    Pinger
}

func NewPingChecker(name string, p Pinger) *PingChecker {
	return &PingChecker{name: name, p: p}
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.p.Ping(ctx)
}

// GormChecker pings the connection pool behind a GORM handle.
type GormChecker struct {
	db *gorm.DB
}

func NewGormChecker(db *gorm.DB) *GormChecker { return &GormChecker{db: db} }

func (c *GormChecker) Name() string { return c.db.Dialector.Name() }

func (c *GormChecker) Check(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
