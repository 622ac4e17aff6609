package server

import (
	"testing"

	"duvidas/internal/config"
	"duvidas/internal/models"
	"duvidas/internal/repository"
	"duvidas/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "handler-test-secret"

// setupHandlerTest builds a Server over an in-memory sqlite database.
// Metrics registration is skipped so parallel tests do not fight over the
// default Prometheus registry.
func setupHandlerTest(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Reply{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	s := &Server{
		config:           &config.Config{JWTSecret: testJWTSecret, Env: "test"},
		db:               db,
		userRepo:         userRepo,
		questionRepo:     questionRepo,
		replyRepo:        replyRepo,
		notificationRepo: notificationRepo,
	}
	s.userService = service.NewUserService(userRepo, testJWTSecret)
	s.questionService = service.NewQuestionService(questionRepo, userRepo, notificationRepo)
	s.replyService = service.NewReplyService(replyRepo, questionRepo, userRepo, notificationRepo)
	s.notificationService = service.NewNotificationService(notificationRepo)

	return s, db
}

// newTestApp mounts the question, reply, and notification routes with a
// middleware that impersonates the given user.
func newTestApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})

	app.Get("/duvidas", s.GetQuestions)
	app.Post("/duvidas", s.CreateQuestion)
	app.Post("/duvidas/:id/respostas", s.AddReply)
	app.Delete("/duvidas/:id/respostas/:replyId", s.DeleteReply)
	app.Delete("/duvidas/:id", s.DeleteQuestion)

	app.Get("/auth/me", s.Me)
	app.Put("/auth/profile", s.UpdateProfile)
	app.Get("/auth/notifications", s.GetNotifications)
	app.Post("/auth/notifications/mark-read", s.MarkNotificationsRead)
	app.Get("/auth/notifications/count", s.GetNotificationCount)

	return app
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: "hash"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}
