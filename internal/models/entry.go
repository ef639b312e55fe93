package models

import (
	"time"

	"github.com/google/uuid"
)

// ListKind selects one of the two per-user content lists.
type ListKind string

const (
	ListWatched ListKind = "watched"
	ListSaved   ListKind = "saved"
)

// Content type tags as used by the upstream provider.
const (
	TypeMovie   = "movie"
	TypeSeries  = "series"
	TypeEpisode = "episode"
)

// ListEntryDB represents a watched or saved list entry in the database.
// The pair (user_id, content_id) is unique within a list.
type ListEntryDB struct {
	EntryID     uuid.UUID `json:"id" db:"entry_id"`           // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	ContentID   string    `json:"content_id" db:"content_id"` // Upstream catalog key, e.g. tt0133093
	ContentType string    `json:"type" db:"content_type"`     // movie, series or episode
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // When the entry was added
}
