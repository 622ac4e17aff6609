package repository

import (
	"context"
	"regexp"
	"testing"

	"duvidas/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReplyRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplyRepository(db)
	ctx := context.Background()

	authorID := uint(2)
	reply := &models.Reply{QuestionID: 1, Text: "Use um select", Author: "Bruno", AuthorID: &authorID}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "replies"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, reply)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplyRepository_DeleteByQuestionAndID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewReplyRepository(db)
	ctx := context.Background()

	t.Run("Removes Matching Row", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "replies" WHERE id = $1 AND question_id = $2`)).
			WithArgs(5, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		removed, err := repo.DeleteByQuestionAndID(ctx, 1, 5)
		assert.NoError(t, err)
		assert.True(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero Rows When Already Removed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "replies" WHERE id = $1 AND question_id = $2`)).
			WithArgs(5, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		removed, err := repo.DeleteByQuestionAndID(ctx, 1, 5)
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Zero Rows When Reply Belongs To Another Question", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "replies" WHERE id = $1 AND question_id = $2`)).
			WithArgs(5, 99).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		removed, err := repo.DeleteByQuestionAndID(ctx, 99, 5)
		assert.NoError(t, err)
		assert.False(t, removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
