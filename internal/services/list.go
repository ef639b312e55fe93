package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/movielog/movielog/internal/logger"
	"github.com/movielog/movielog/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrAlreadyInList is returned when a user adds a content id that is
	// already in the target list.
	ErrAlreadyInList = errors.New("entry already in list")
)

// ListReader defines read operations for watched/saved lists.
type ListReader interface {
	ListByUser(ctx context.Context, kind models.ListKind, userID uuid.UUID) ([]models.ListEntryDB, error)
}

// ListWriter defines write operations for watched/saved lists.
type ListWriter interface {
	Save(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID, contentType string) (bool, error)
	Delete(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ListService handles watched/saved list operations and activity publishing.
type ListService struct {
	readRepo    ListReader
	writeRepo   ListWriter
	userReader  UserReader
	kafkaWriter KafkaWriter
}

// NewListService creates a new ListService.
func NewListService(
	readRepo ListReader,
	writeRepo ListWriter,
	userReader UserReader,
	kafkaWriter KafkaWriter,
) *ListService {
	return &ListService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		userReader:  userReader,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a list activity event to Kafka. Best effort: a nil
// writer skips, a failed write never fails the request.
func (s *ListService) publishEvent(ctx context.Context, event models.ListEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal list event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish list event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("List event published to Kafka", "event_id", event.EventID, "action", event.Action)
	}
}

// Add inserts a list entry. Returns ErrAlreadyInList when the user already
// has the content in the target list.
func (s *ListService) Add(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID, contentType string) error {
	inserted, err := s.writeRepo.Save(ctx, kind, userID, contentID, contentType)
	if err != nil {
		logger.Log.Errorw("failed to save list entry", "kind", kind, "userID", userID, "contentID", contentID, "error", err)
		return err
	}
	if !inserted {
		return ErrAlreadyInList
	}

	s.publishEvent(ctx, models.ListEvent{
		EventID:     uuid.NewString(),
		Timestamp:   time.Now().Unix(),
		UserID:      userID.String(),
		List:        string(kind),
		ContentID:   contentID,
		ContentType: contentType,
		Action:      "add",
	})

	return nil
}

// Remove deletes a list entry. Removing an absent entry is a no-op, not an
// error: the HTTP layer reports success either way. The removed flag tells
// the caller what happened.
func (s *ListService) Remove(ctx context.Context, kind models.ListKind, userID uuid.UUID, contentID string) (bool, error) {
	removed, err := s.writeRepo.Delete(ctx, kind, userID, contentID)
	if err != nil {
		logger.Log.Errorw("failed to delete list entry", "kind", kind, "userID", userID, "contentID", contentID, "error", err)
		return false, err
	}

	if removed {
		s.publishEvent(ctx, models.ListEvent{
			EventID:   uuid.NewString(),
			Timestamp: time.Now().Unix(),
			UserID:    userID.String(),
			List:      string(kind),
			ContentID: contentID,
			Action:    "remove",
		})
	}

	return removed, nil
}

// List returns the user's entries for one list, most recent first.
func (s *ListService) List(ctx context.Context, kind models.ListKind, userID uuid.UUID) ([]models.ListEntryDB, error) {
	entries, err := s.readRepo.ListByUser(ctx, kind, userID)
	if err != nil {
		logger.Log.Errorw("failed to list entries", "kind", kind, "userID", userID, "error", err)
		return nil, err
	}
	return entries, nil
}

// Profile returns the user together with both lists, each most recent first.
func (s *ListService) Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.ListEntryDB, []models.ListEntryDB, error) {
	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, nil, nil, err
	}
	if user == nil {
		return nil, nil, nil, ErrUserNotFound
	}

	watched, err := s.readRepo.ListByUser(ctx, models.ListWatched, userID)
	if err != nil {
		logger.Log.Errorw("failed to list watched entries", "userID", userID, "error", err)
		return nil, nil, nil, err
	}

	saved, err := s.readRepo.ListByUser(ctx, models.ListSaved, userID)
	if err != nil {
		logger.Log.Errorw("failed to list saved entries", "userID", userID, "error", err)
		return nil, nil, nil, err
	}

	return user, watched, saved, nil
}
