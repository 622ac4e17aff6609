package service

import (
	"context"

	"duvidas/internal/cache"
	"duvidas/internal/middleware"
	"duvidas/internal/models"
	"duvidas/internal/observability"
	"duvidas/internal/repository"
	"duvidas/internal/validation"
)

type QuestionService struct {
	questionRepo     repository.QuestionRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

type CreateQuestionInput struct {
	UserID      uint
	Title       string
	Description string
	Tag         string
	Author      string
}

type DeleteQuestionInput struct {
	UserID     uint
	QuestionID uint
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo:     questionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *QuestionService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return s.questionRepo.List(ctx)
}

func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*models.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// CreateQuestion persists a new question with a denormalized author snapshot.
// Name resolution order: explicit author field, then the account name, then
// the anonymous fallback.
func (s *QuestionService) CreateQuestion(ctx context.Context, in CreateQuestionInput) (*models.Question, error) {
	if err := validation.ValidateQuestionInput(in.Title, in.Description, in.Tag); err != nil {
		return nil, models.NewValidationError("Título e descrição são obrigatórios")
	}

	author := in.Author
	if author == "" {
		user, err := s.userRepo.GetByID(ctx, in.UserID)
		if err != nil {
			return nil, err
		}
		author = user.DisplayName()
	}

	userID := in.UserID
	question := &models.Question{
		Title:       in.Title,
		Description: in.Description,
		Tag:         in.Tag,
		Author:      author,
		AuthorID:    &userID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	anonymous := "false"
	if author == models.AnonymousName {
		anonymous = "true"
	}
	observability.QuestionsCreated.WithLabelValues(anonymous).Inc()

	return question, nil
}

// DeleteQuestion removes a question owned by the caller, cascading to its
// replies, then cleans up notifications that reference it. Cleanup is
// best-effort: the deletion already succeeded, so a cleanup failure is
// logged and never surfaced to the caller.
func (s *QuestionService) DeleteQuestion(ctx context.Context, in DeleteQuestionInput) error {
	question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
	if err != nil {
		return err
	}

	if question.AuthorID == nil || *question.AuthorID != in.UserID {
		return models.NewForbiddenError("Você só pode excluir suas próprias dúvidas")
	}

	if err := s.questionRepo.Delete(ctx, in.QuestionID); err != nil {
		return err
	}

	if err := s.notificationRepo.DeleteByQuestion(ctx, in.QuestionID); err != nil {
		observability.NotificationCleanupFailures.Inc()
		middleware.Logger.WarnContext(ctx, "notification cleanup failed after question deletion",
			"question_id", in.QuestionID, "error", err.Error())
	} else {
		// All removed notifications belonged to the caller.
		cache.InvalidateUnreadCount(ctx, in.UserID)
	}

	return nil
}
