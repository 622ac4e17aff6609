package repository

import (
	"context"

	"duvidas/internal/models"

	"gorm.io/gorm"
)

// ReplyRepository defines persistence operations for replies.
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) error
	DeleteByQuestionAndID(ctx context.Context, questionID, replyID uint) (bool, error)
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository returns a new ReplyRepository implementation.
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *models.Reply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteByQuestionAndID removes a reply only if it still belongs to the given
// question. The conditional delete decides both "does it exist" and "remove it"
// in one statement, so two concurrent deletions of the same reply resolve to
// exactly one removal. Returns false when no row matched.
func (r *replyRepository) DeleteByQuestionAndID(ctx context.Context, questionID, replyID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND question_id = ?", replyID, questionID).
		Delete(&models.Reply{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}
