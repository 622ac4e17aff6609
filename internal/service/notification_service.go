package service

import (
	"context"

	"duvidas/internal/cache"
	"duvidas/internal/models"
	"duvidas/internal/repository"
)

const unreadListLimit = 20

type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// ListUnread returns up to 20 unread notifications, newest first. Listing
// does not mark anything read.
func (s *NotificationService) ListUnread(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.notificationRepo.ListUnread(ctx, userID, unreadListLimit)
}

// MarkAllRead flips every unread notification for the user. Idempotent.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// CountUnread returns the unread notification count, cached with a short TTL
// since clients poll it frequently.
func (s *NotificationService) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := cache.CacheAside(ctx, cache.UnreadCountKey(userID), &count, cache.UnreadCountTTL, func() error {
		c, err := s.notificationRepo.CountUnread(ctx, userID)
		if err != nil {
			return err
		}
		count = c
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
