package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/aicomparator/pkg/auth"
)

const userColumns = `id, email, COALESCE(username, ''), password_hash,
	COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(phone, ''),
	COALESCE(location, ''), COALESCE(bio, ''), is_active, date_joined`

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
// Schema is owned by the goose migrations in pkg/storage/postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, username, password_hash, first_name, last_name,
			phone, location, bio, is_active, date_joined)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''),
			NULLIF($8, ''), NULLIF($9, ''), $10, $11)
	`, user.ID, strings.ToLower(user.Email), user.Username, user.PasswordHash,
		user.FirstName, user.LastName, user.Phone, user.Location, user.Bio,
		user.IsActive, user.DateJoined)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, strings.ToLower(email))
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// UpdateProfile updates only the supplied columns; nil arguments keep the
// current value.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, ch auth.ProfileChanges) (auth.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET
			first_name = COALESCE($2, first_name),
			last_name  = COALESCE($3, last_name),
			phone      = COALESCE($4, phone),
			location   = COALESCE($5, location),
			bio        = COALESCE($6, bio)
		WHERE id = $1
		RETURNING `+userColumns,
		id, ch.FirstName, ch.LastName, ch.Phone, ch.Location, ch.Bio)
	return scanUser(row)
}

func scanUser(row pgx.Row) (auth.User, error) {
	var user auth.User
	var joined time.Time
	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.Phone, &user.Location, &user.Bio,
		&user.IsActive, &joined); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	user.DateJoined = joined.UTC()
	return user, nil
}
