package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/models"
)

// listTables maps a list kind to its table. Table names are never taken from
// request input.
var listTables = map[models.ListKind]string{
	models.ListWatched: "watched",
	models.ListSaved:   "saved",
}

func tableFor(kind models.ListKind) (string, error) {
	table, ok := listTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown list kind: %s", kind)
	}
	return table, nil
}

type ListReadRepository struct {
	db *sqlx.DB
}

func NewListReadRepository(db *sqlx.DB) *ListReadRepository {
	return &ListReadRepository{db: db}
}

// ListByUser returns all entries of the given list for a user, most recent first.
func (r *ListReadRepository) ListByUser(ctx context.Context, kind models.ListKind, userID uuid.UUID) ([]models.ListEntryDB, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT entry_id, user_id, content_id, content_type, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, table)

	entries := []models.ListEntryDB{}
	err = r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

type ListWriteRepository struct {
	db *sqlx.DB
}

func NewListWriteRepository(db *sqlx.DB) *ListWriteRepository {
	return &ListWriteRepository{db: db}
}

// Save inserts a list entry exactly once per (user_id, content_id). Returns
// false when the entry already exists. The unique constraint makes the
// check-then-write atomic under concurrent duplicate requests.
func (r *ListWriteRepository) Save(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID, contentType string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (entry_id, user_id, content_id, content_type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, content_id) DO NOTHING
	`, table)
	args := []any{uuid.New(), userID, contentID, contentType}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes a list entry. Returns false when no entry matched.
func (r *ListWriteRepository) Delete(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND content_id = $2
	`, table)

	res, err := r.db.ExecContext(ctx, query, userID, contentID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, contentID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
