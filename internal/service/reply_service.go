package service

import (
	"context"

	"duvidas/internal/middleware"
	"duvidas/internal/models"
	"duvidas/internal/observability"
	"duvidas/internal/repository"
	"duvidas/internal/validation"
)

type ReplyService struct {
	replyRepo        repository.ReplyRepository
	questionRepo     repository.QuestionRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

type AddReplyInput struct {
	UserID     uint
	QuestionID uint
	Text       string
	Author     string
}

type DeleteReplyInput struct {
	UserID     uint
	QuestionID uint
	ReplyID    uint
}

func NewReplyService(
	replyRepo repository.ReplyRepository,
	questionRepo repository.QuestionRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) *ReplyService {
	return &ReplyService{
		replyRepo:        replyRepo,
		questionRepo:     questionRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

// AddReply appends a reply to an existing question and notifies the question
// owner unless they replied to themselves. The notification is best-effort;
// the reply itself is the durable outcome.
func (s *ReplyService) AddReply(ctx context.Context, in AddReplyInput) (*models.Reply, error) {
	if err := validation.ValidateReplyText(in.Text); err != nil {
		return nil, models.NewValidationError("Texto da resposta é obrigatório")
	}

	question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
	if err != nil {
		return nil, err
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
	reply := &models.Reply{
		QuestionID: in.QuestionID,
		Text:       in.Text,
		Author:     author,
		AuthorID:   &userID,
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}

	anonymous := "false"
	if author == models.AnonymousName {
		anonymous = "true"
	}
	observability.RepliesCreated.WithLabelValues(anonymous).Inc()

	if question.AuthorID != nil && *question.AuthorID != in.UserID {
		notification := &models.Notification{
			UserID:        *question.AuthorID,
			QuestionID:    question.ID,
			QuestionTitle: question.Title,
			AuthorID:      &userID,
			AuthorName:    author,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			middleware.Logger.WarnContext(ctx, "failed to create reply notification",
				"question_id", question.ID, "error", err.Error())
		} else {
			observability.NotificationsCreated.Inc()
		}
	}

	return reply, nil
}

// DeleteReply removes a reply owned by the caller. The repository performs a
// single conditional delete scoped to the question, so a reply that was
// already removed (or belongs to another question) reports not found.
func (s *ReplyService) DeleteReply(ctx context.Context, in DeleteReplyInput) error {
	question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
	if err != nil {
		return err
	}

	var reply *models.Reply
	for i := range question.Replies {
		if question.Replies[i].ID == in.ReplyID {
			reply = &question.Replies[i]
			break
		}
	}
	if reply == nil {
		return models.NewNotFoundError("Resposta não encontrada")
	}

	if reply.AuthorID == nil || *reply.AuthorID != in.UserID {
		return models.NewForbiddenError("Você só pode excluir suas próprias respostas")
	}

	removed, err := s.replyRepo.DeleteByQuestionAndID(ctx, in.QuestionID, in.ReplyID)
	if err != nil {
		return err
	}
	if !removed {
		// Lost the race: another request already removed it.
		return models.NewNotFoundError("Resposta não encontrada")
	}

	return nil
}
