package gormdb

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/artem13815/aicomparator/pkg/auth"
)

// UserRepository implements auth.UserRepository on GORM.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	user.Email = strings.ToLower(user.Email)
	row := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	var row User
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&row).Error
	return row.toDomain(), notFound(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	var row User
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	return row.toDomain(), notFound(err)
}

// UpdateProfile applies ch to the stored user. Fields cleared to "" are
// stored as NULL.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, ch auth.ProfileChanges) (auth.User, error) {
	var user auth.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row User
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return err
		}
		user = row.toDomain()
		ch.Apply(&user)
		next := userFromDomain(user)
		return tx.Model(&row).
			Select("FirstName", "LastName", "Phone", "Location", "Bio").
			Updates(&next).Error
	})
	if err != nil {
		return auth.User{}, notFound(err)
	}
	return user, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.ErrNotFound
	}
	return err
}

// isUniqueViolation covers drivers that do not translate errors to
// gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
