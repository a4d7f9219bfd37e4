package gormdb

import (
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/aicomparator/pkg/auth"
	"github.com/artem13815/aicomparator/pkg/history"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:254;not null;uniqueIndex"`
	Username     *string   `gorm:"size:150"`
	PasswordHash string    `gorm:"not null"`
	FirstName    *string   `gorm:"size:30"`
	LastName     *string   `gorm:"size:30"`
	Phone        *string   `gorm:"size:15"`
	Location     *string   `gorm:"size:200"`
	Bio          *string
	IsActive     bool      `gorm:"not null"`
	DateJoined   time.Time `gorm:"not null"`

	Queries []QueryHistory `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type QueryHistory struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_query_history_user_created,priority:1"`
	Prompt         string    `gorm:"not null"`
	ResponseGroq   *string
	ResponseGemini *string
	Mode           string    `gorm:"size:20;not null;default:both"`
	CreatedAt      time.Time `gorm:"not null;index:idx_query_history_user_created,priority:2,sort:desc"`
}

func (QueryHistory) TableName() string { return "query_history" }

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func userFromDomain(u auth.User) User {
	return User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     nullable(u.Username),
		PasswordHash: u.PasswordHash,
		FirstName:    nullable(u.FirstName),
		LastName:     nullable(u.LastName),
		Phone:        nullable(u.Phone),
		Location:     nullable(u.Location),
		Bio:          nullable(u.Bio),
		IsActive:     u.IsActive,
		DateJoined:   u.DateJoined,
	}
}

func (u User) toDomain() auth.User {
	return auth.User{
		ID:           u.ID,
		Email:        u.Email,
		Username:     deref(u.Username),
		PasswordHash: u.PasswordHash,
		FirstName:    deref(u.FirstName),
		LastName:     deref(u.LastName),
		Phone:        deref(u.Phone),
		Location:     deref(u.Location),
		Bio:          deref(u.Bio),
		IsActive:     u.IsActive,
		DateJoined:   u.DateJoined.UTC(),
	}
}

func (q QueryHistory) toDomain() history.Record {
	return history.Record{
		ID:             q.ID,
		UserID:         q.UserID,
		Prompt:         q.Prompt,
		ResponseGroq:   q.ResponseGroq,
		ResponseGemini: q.ResponseGemini,
		Mode:           history.Mode(q.Mode),
		CreatedAt:      q.CreatedAt.UTC(),
	}
}
