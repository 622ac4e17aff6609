package server

import (
	"duvidas/internal/models"
	"duvidas/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddReply appends a reply to a question (protected)
func (s *Server) AddReply(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text   string `json:"text"`
		Author string `json:"author"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Corpo da requisição inválido"))
	}

	created, err := s.replyService.AddReply(ctx, service.AddReplyInput{
		UserID:     userID,
		QuestionID: questionID,
		Text:       req.Text,
		Author:     req.Author,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteReply removes a reply owned by the caller (protected)
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	replyID, err := s.parseID(c, "replyId")
	if err != nil {
		return nil
	}

	if err := s.replyService.DeleteReply(ctx, service.DeleteReplyInput{
		UserID:     userID,
		QuestionID: questionID,
		ReplyID:    replyID,
	}); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Resposta excluída com sucesso",
	})
}
