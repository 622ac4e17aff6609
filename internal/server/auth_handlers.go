package server

import (
	"duvidas/internal/models"
	"duvidas/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register creates a new account
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Corpo da requisição inválido"))
	}

	_, err := s.userService.Register(ctx, service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Usuário cadastrado com sucesso",
	})
}

// Login authenticates an account and returns a session token
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Corpo da requisição inválido"))
	}

	token, _, err := s.userService.Login(ctx, service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login realizado com sucesso",
		"token":   token,
	})
}

// Validate confirms the bearer token is valid. The auth middleware already
// did the work; reaching this handler means success.
func (s *Server) Validate(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// Me returns the authenticated account
func (s *Server) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(user)
}

// UpdateProfile changes the account name and optionally the password
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Locals("userID").(uint)

	var req struct {
		Name     string `json:"name"`
		Password string `json:"senha"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Corpo da requisição inválido"))
	}

	_, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:   userID,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Perfil atualizado com sucesso",
	})
}
