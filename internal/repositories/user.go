package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
// The match is exact and case-sensitive.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, first_name, last_name, email, phone, password_hash, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, first_name, last_name, email, phone, password_hash, created_at
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the created record. Returns nil without
// error when the email is already registered: the unique constraint decides,
// so two concurrent registrations cannot both succeed.
func (r *UserWriteRepository) Save(ctx context.Context, firstName, lastName, email, phone, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, first_name, last_name, email, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING user_id, first_name, last_name, email, phone, password_hash, created_at
	`
	args := []any{uuid.New(), firstName, lastName, email, phone, passwordHash}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{firstName, lastName, email, phone},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		// Conflict: ON CONFLICT DO NOTHING returns no row.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
