package service

import (
	"context"
	"testing"

	"duvidas/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListUnread(t *testing.T) {
	t.Parallel()

	notificationRepo := noopNotificationRepo()
	var gotLimit int
	notificationRepo.listUnreadFn = func(_ context.Context, userID uint, limit int) ([]models.Notification, error) {
		gotLimit = limit
		return []models.Notification{
			{ID: 2, UserID: userID, QuestionTitle: "Pergunta nova"},
			{ID: 1, UserID: userID, QuestionTitle: "Pergunta antiga"},
		}, nil
	}
	svc := NewNotificationService(notificationRepo)

	notifications, err := svc.ListUnread(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, "Pergunta nova", notifications[0].QuestionTitle)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	t.Parallel()

	notificationRepo := noopNotificationRepo()
	var gotUserID uint
	notificationRepo.markAllReadFn = func(_ context.Context, userID uint) error {
		gotUserID = userID
		return nil
	}
	svc := NewNotificationService(notificationRepo)

	err := svc.MarkAllRead(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), gotUserID)
}

func TestNotificationService_CountUnread(t *testing.T) {
	t.Parallel()

	notificationRepo := noopNotificationRepo()
	notificationRepo.countUnreadFn = func(_ context.Context, _ uint) (int64, error) {
		return 3, nil
	}
	svc := NewNotificationService(notificationRepo)

	count, err := svc.CountUnread(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
