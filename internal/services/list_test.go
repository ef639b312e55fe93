package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/movielog/movielog/internal/models"
	"github.com/movielog/movielog/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestListService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("add publishes event", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, mockKafka)

		mockWrite.EXPECT().
			Save(gomock.Any(), models.ListWatched, userID, "tt0848228", models.TypeMovie).
			Return(true, nil)

		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, userID.String(), string(msgs[0].Key))

				var event models.ListEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "add", event.Action)
				assert.Equal(t, string(models.ListWatched), event.List)
				assert.Equal(t, "tt0848228", event.ContentID)
				return nil
			})

		err := svc.Add(ctx, models.ListWatched, userID, "tt0848228", models.TypeMovie)
		assert.NoError(t, err)
	})

	t.Run("duplicate entry", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, mockKafka)

		mockWrite.EXPECT().
			Save(gomock.Any(), models.ListSaved, userID, "tt0848228", models.TypeMovie).
			Return(false, nil)

		err := svc.Add(ctx, models.ListSaved, userID, "tt0848228", models.TypeMovie)
		assert.ErrorIs(t, err, services.ErrAlreadyInList)
	})

	t.Run("kafka failure never fails the request", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, mockKafka)

		mockWrite.EXPECT().
			Save(gomock.Any(), models.ListWatched, userID, "tt0108778", models.TypeSeries).
			Return(true, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		err := svc.Add(ctx, models.ListWatched, userID, "tt0108778", models.TypeSeries)
		assert.NoError(t, err)
	})

	t.Run("nil kafka writer skips publishing", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, nil)

		mockWrite.EXPECT().
			Save(gomock.Any(), models.ListWatched, userID, "tt0133093", models.TypeMovie).
			Return(true, nil)

		err := svc.Add(ctx, models.ListWatched, userID, "tt0133093", models.TypeMovie)
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, nil)

		mockWrite.EXPECT().
			Save(gomock.Any(), models.ListWatched, userID, "tt0133093", models.TypeMovie).
			Return(false, errors.New("db error"))

		err := svc.Add(ctx, models.ListWatched, userID, "tt0133093", models.TypeMovie)
		assert.EqualError(t, err, "db error")
	})
}

func TestListService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("remove publishes event", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, mockKafka)

		mockWrite.EXPECT().
			Delete(gomock.Any(), models.ListSaved, userID, "tt0848228").
			Return(true, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.ListEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "remove", event.Action)
				return nil
			})

		removed, err := svc.Remove(ctx, models.ListSaved, userID, "tt0848228")
		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("absent entry is a no-op", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, mockKafka)

		// No publish expected when nothing was removed.
		mockWrite.EXPECT().
			Delete(gomock.Any(), models.ListSaved, userID, "tt9999999").
			Return(false, nil)

		removed, err := svc.Remove(ctx, models.ListSaved, userID, "tt9999999")
		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestListService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns user with both lists", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, nil)

		watched := []models.ListEntryDB{{UserID: userID, ContentID: "tt0848228", ContentType: models.TypeMovie}}
		saved := []models.ListEntryDB{}

		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "alice@example.com"}, nil)
		mockRead.EXPECT().
			ListByUser(gomock.Any(), models.ListWatched, userID).
			Return(watched, nil)
		mockRead.EXPECT().
			ListByUser(gomock.Any(), models.ListSaved, userID).
			Return(saved, nil)

		user, gotWatched, gotSaved, err := svc.Profile(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, watched, gotWatched)
		assert.Equal(t, saved, gotSaved)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRead := services.NewMockListReader(ctrl)
		mockWrite := services.NewMockListWriter(ctrl)
		mockUsers := services.NewMockUserReader(ctrl)
		svc := services.NewListService(mockRead, mockWrite, mockUsers, nil)

		mockUsers.EXPECT().
			GetByID(gomock.Any(), userID).
			Return(nil, nil)

		_, _, _, err := svc.Profile(ctx, userID)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestListService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	mockRead := services.NewMockListReader(ctrl)
	mockWrite := services.NewMockListWriter(ctrl)
	mockUsers := services.NewMockUserReader(ctrl)
	svc := services.NewListService(mockRead, mockWrite, mockUsers, nil)

	entries := []models.ListEntryDB{
		{UserID: userID, ContentID: "tt0848228", ContentType: models.TypeMovie},
		{UserID: userID, ContentID: "tt0108778", ContentType: models.TypeSeries},
	}
	mockRead.EXPECT().
		ListByUser(gomock.Any(), models.ListWatched, userID).
		Return(entries, nil)

	got, err := svc.List(ctx, models.ListWatched, userID)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}
