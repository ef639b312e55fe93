package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/models"
)

// FileStore is a flat-file storage backend. Each entity lives in its own JSON
// collection file (users.json, watched.json, saved.json). All mutations go
// through a single mutex and are written through to disk before returning, so
// the files are the sole source of truth between requests.
type FileStore struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

const (
	usersFile   = "users.json"
	watchedFile = "watched.json"
	savedFile   = "saved.json"
)

// NewFileStore opens (creating if needed) the storage directory and the
// collection files inside it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	s := &FileStore{dir: dir, now: time.Now}

	for _, name := range []string{usersFile, watchedFile, savedFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := writeCollection(path, []json.RawMessage{}); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func listFileFor(kind models.ListKind) (string, error) {
	switch kind {
	case models.ListWatched:
		return watchedFile, nil
	case models.ListSaved:
		return savedFile, nil
	default:
		return "", fmt.Errorf("unknown list kind: %s", kind)
	}
}

func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("corrupt collection %s: %w", filepath.Base(path), err)
	}
	return items, nil
}

// writeCollection writes through a temp file and renames it into place, so a
// crash mid-write never leaves a truncated collection behind.
func writeCollection[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// FileUserRepository is the flat-file credential store.
type FileUserRepository struct {
	store *FileStore
}

func NewFileUserRepository(store *FileStore) *FileUserRepository {
	return &FileUserRepository{store: store}
}

// Save appends a new user. Returns nil without error when the email is
// already registered (exact, case-sensitive match).
func (r *FileUserRepository) Save(ctx context.Context, firstName, lastName, email, phone, passwordHash string) (*models.UserDB, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	path := filepath.Join(r.store.dir, usersFile)
	users, err := readCollection[models.UserDB](path)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return nil, nil
		}
	}

	user := models.UserDB{
		UserID:       uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		CreatedAt:    r.store.now().UTC(),
	}
	users = append(users, user)

	if err := writeCollection(path, users); err != nil {
		return nil, err
	}

	logger.Log.Infow("file store: user saved", "user_id", user.UserID, "email", email)
	return &user, nil
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *FileUserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users, err := readCollection[models.UserDB](filepath.Join(r.store.dir, usersFile))
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *FileUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users, err := readCollection[models.UserDB](filepath.Join(r.store.dir, usersFile))
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].UserID == userID {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Delete removes a user and, keeping the ownership invariant, all of their
// watched and saved entries.
func (r *FileUserRepository) Delete(ctx context.Context, userID uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	path := filepath.Join(r.store.dir, usersFile)
	users, err := readCollection[models.UserDB](path)
	if err != nil {
		return false, err
	}

	kept := users[:0]
	for _, u := range users {
		if u.UserID != userID {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return false, nil
	}
	if err := writeCollection(path, kept); err != nil {
		return false, err
	}

	for _, name := range []string{watchedFile, savedFile} {
		listPath := filepath.Join(r.store.dir, name)
		entries, err := readCollection[models.ListEntryDB](listPath)
		if err != nil {
			return false, err
		}
		keptEntries := entries[:0]
		for _, e := range entries {
			if e.UserID != userID {
				keptEntries = append(keptEntries, e)
			}
		}
		if err := writeCollection(listPath, keptEntries); err != nil {
			return false, err
		}
	}

	logger.Log.Infow("file store: user deleted", "user_id", userID)
	return true, nil
}

// FileListRepository is the flat-file watched/saved store.
type FileListRepository struct {
	store *FileStore
}

func NewFileListRepository(store *FileStore) *FileListRepository {
	return &FileListRepository{store: store}
}

// Save inserts a list entry exactly once per (user_id, content_id). Returns
// false when the entry already exists. The store mutex serializes the
// check-then-write, so concurrent duplicate adds cannot both succeed.
func (r *FileListRepository) Save(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID, contentType string) (bool, error) {
	name, err := listFileFor(kind)
	if err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	path := filepath.Join(r.store.dir, name)
	entries, err := readCollection[models.ListEntryDB](path)
	if err != nil {
		return false, err
	}

	for _, e := range entries {
		if e.UserID == userID && e.ContentID == contentID {
			return false, nil
		}
	}

	entries = append(entries, models.ListEntryDB{
		EntryID:     uuid.New(),
		UserID:      userID,
		ContentID:   contentID,
		ContentType: contentType,
		CreatedAt:   r.store.now().UTC(),
	})

	if err := writeCollection(path, entries); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a list entry. Returns false when no entry matched.
func (r *FileListRepository) Delete(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID string) (bool, error) {
	name, err := listFileFor(kind)
	if err != nil {
		return false, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	path := filepath.Join(r.store.dir, name)
	entries, err := readCollection[models.ListEntryDB](path)
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if !(e.UserID == userID && e.ContentID == contentID) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}

	if err := writeCollection(path, kept); err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser returns all entries of the given list for a user, most recent first.
func (r *FileListRepository) ListByUser(ctx context.Context, kind models.ListKind, userID uuid.UUID) ([]models.ListEntryDB, error) {
	name, err := listFileFor(kind)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entries, err := readCollection[models.ListEntryDB](filepath.Join(r.store.dir, name))
	if err != nil {
		return nil, err
	}

	result := []models.ListEntryDB{}
	for _, e := range entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
