package service

import (
	"context"
	"errors"
	"testing"

	"duvidas/internal/models"

	"github.com/stretchr/testify/assert"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Ana", Email: "ana@example.com"}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
	}
}

// questionRepoStub is a stub for repository.QuestionRepository.
type questionRepoStub struct {
	createFn  func(context.Context, *models.Question) error
	getByIDFn func(context.Context, uint) (*models.Question, error)
	listFn    func(context.Context) ([]models.Question, error)
	deleteFn  func(context.Context, uint) error
}

func (s *questionRepoStub) Create(ctx context.Context, q *models.Question) error {
	return s.createFn(ctx, q)
}
func (s *questionRepoStub) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}
func (s *questionRepoStub) List(ctx context.Context) ([]models.Question, error) {
	return s.listFn(ctx)
}
func (s *questionRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopQuestionRepo() *questionRepoStub {
	return &questionRepoStub{
		createFn: func(_ context.Context, _ *models.Question) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Question, error) {
			return &models.Question{ID: id, Title: "Pergunta"}, nil
		},
		listFn:   func(_ context.Context) ([]models.Question, error) { return nil, nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// replyRepoStub is a stub for repository.ReplyRepository.
type replyRepoStub struct {
	createFn func(context.Context, *models.Reply) error
	deleteFn func(context.Context, uint, uint) (bool, error)
}

func (s *replyRepoStub) Create(ctx context.Context, reply *models.Reply) error {
	return s.createFn(ctx, reply)
}
func (s *replyRepoStub) DeleteByQuestionAndID(ctx context.Context, questionID, replyID uint) (bool, error) {
	return s.deleteFn(ctx, questionID, replyID)
}

func noopReplyRepo() *replyRepoStub {
	return &replyRepoStub{
		createFn: func(_ context.Context, _ *models.Reply) error { return nil },
		deleteFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	createFn           func(context.Context, *models.Notification) error
	listUnreadFn       func(context.Context, uint, int) ([]models.Notification, error)
	markAllReadFn      func(context.Context, uint) error
	countUnreadFn      func(context.Context, uint) (int64, error)
	deleteByQuestionFn func(context.Context, uint) error
}

func (s *notificationRepoStub) Create(ctx context.Context, n *models.Notification) error {
	return s.createFn(ctx, n)
}
func (s *notificationRepoStub) ListUnread(ctx context.Context, userID uint, limit int) ([]models.Notification, error) {
	return s.listUnreadFn(ctx, userID, limit)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, userID uint) error {
	return s.markAllReadFn(ctx, userID)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}
func (s *notificationRepoStub) DeleteByQuestion(ctx context.Context, questionID uint) error {
	return s.deleteByQuestionFn(ctx, questionID)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:           func(_ context.Context, _ *models.Notification) error { return nil },
		listUnreadFn:       func(_ context.Context, _ uint, _ int) ([]models.Notification, error) { return nil, nil },
		markAllReadFn:      func(_ context.Context, _ uint) error { return nil },
		countUnreadFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		deleteByQuestionFn: func(_ context.Context, _ uint) error { return nil },
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if assert.Error(t, err) && assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, code, appErr.Code)
	}
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertErrorCode(t, err, models.CodeValidation)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertErrorCode(t, err, models.CodeForbidden)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertErrorCode(t, err, models.CodeNotFound)
}
