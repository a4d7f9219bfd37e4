package gormdb

import (
	"log/slog"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// GetMigrator returns the versioned schema migrations for the GORM backend.
func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "0001_users_and_history",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&User{}, &QueryHistory{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&QueryHistory{}, &User{})
			},
		},
	})

	migrator.InitSchema(func(tx *gorm.DB) error {
		// Clean database: create the latest schema directly.
		slog.Info("clean database detected, running full schema initialization")
		return tx.AutoMigrate(&User{}, &QueryHistory{})
	})

	return migrator
}

// Migrate brings the schema up to date.
func Migrate(db *gorm.DB) error {
	return GetMigrator(db).Migrate()
}
