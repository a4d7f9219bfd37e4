package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Mode labels which provider(s) produced a record.
type Mode string

const (
	ModeGroq   Mode = "groq"
	ModeGemini Mode = "gemini"
	ModeBoth   Mode = "both"
)

// RecentLimit is the fixed number of records returned by Recent.
const RecentLimit = 5

// Record is an immutable prompt/response entry owned by a user.
// Response fields are nil for providers that were not invoked.
type Record struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Prompt         string
	ResponseGroq   *string
	ResponseGemini *string
	Mode           Mode
	CreatedAt      time.Time
}

//go:generate minimock -i Repository -o ./mocks/repository_mock.go -n RepositoryMock -p mocks

// Repository is the persistence port for history records. There is no
// update operation; records are only appended and listed.
type Repository interface {
	// Append stores rec, assigning ID and CreatedAt when they are zero.
	Append(ctx context.Context, rec Record) (Record, error)
	// ListRecent returns up to limit records of userID, newest first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]Record, error)
}
