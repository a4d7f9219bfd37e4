package profile

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/artem13815/aicomparator/pkg/auth"
)

var ErrFieldTooLong = errors.New("field too long")

// Profile is the public view of a user's profile.
type Profile struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
}

// UseCase reads and partially updates profiles.
type UseCase interface {
	Get(ctx context.Context, userID uuid.UUID) (Profile, error)
	Update(ctx context.Context, userID uuid.UUID, changes auth.ProfileChanges) (Profile, error)
}

type service struct {
	users auth.UserRepository
}

func NewService(users auth.UserRepository) UseCase { return &service{users: users} }

func (s *service) Get(ctx context.Context, userID uuid.UUID) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return FromUser(u), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, changes auth.ProfileChanges) (Profile, error) {
	if err := validate(changes); err != nil {
		return Profile{}, err
	}
	u, err := s.users.UpdateProfile(ctx, userID, changes)
	if err != nil {
		return Profile{}, err
	}
	return FromUser(u), nil
}

func FromUser(u auth.User) Profile {
	return Profile{
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Location:  u.Location,
		Bio:       u.Bio,
	}
}

func validate(ch auth.ProfileChanges) error {
	limits := []struct {
		name  string
		value *string
		max   int
	}{
		{"first_name", ch.FirstName, 30},
		{"last_name", ch.LastName, 30},
		{"phone", ch.Phone, 15},
		{"location", ch.Location, 200},
	}
	for _, l := range limits {
		if l.value != nil && utf8.RuneCountInString(*l.value) > l.max {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, l.name, l.max)
		}
	}
	return nil
}
