package server

import (
	"duvidas/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications returns up to 20 unread notifications, newest first
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	notifications, err := s.notificationService.ListUnread(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(notifications)
}

// MarkNotificationsRead flips every unread notification for the caller
func (s *Server) MarkNotificationsRead(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	if err := s.notificationService.MarkAllRead(ctx, userID); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notificações marcadas como lidas",
	})
}

// GetNotificationCount returns the unread notification count
func (s *Server) GetNotificationCount(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	count, err := s.notificationService.CountUnread(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"count": count})
}
