package server

import (
	"duvidas/internal/models"
	"duvidas/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetQuestions returns all questions with their embedded replies (public)
func (s *Server) GetQuestions(c *fiber.Ctx) error {
	ctx := c.UserContext()

	questions, err := s.questionService.ListQuestions(ctx)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(questions)
}

// CreateQuestion creates a question (protected)
func (s *Server) CreateQuestion(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Tag         string `json:"tag"`
		Author      string `json:"author"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Corpo da requisição inválido"))
	}

	created, err := s.questionService.CreateQuestion(ctx, service.CreateQuestionInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
		Author:      req.Author,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteQuestion removes a question owned by the caller (protected)
func (s *Server) DeleteQuestion(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.questionService.DeleteQuestion(ctx, service.DeleteQuestionInput{
		UserID:     userID,
		QuestionID: questionID,
	}); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Dúvida excluída com sucesso",
	})
}
