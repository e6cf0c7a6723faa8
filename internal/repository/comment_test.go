package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ripple/internal/models"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	comment := &models.Comment{Content: "nice", UserID: 1, PostID: 2}
	require.NoError(t, repo.Create(context.Background(), comment))
	assert.Equal(t, uint(5), comment.ID)
}

func TestCommentRepository_Create_MissingPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnError(errors.New(`pq: insert or update on table "comments" violates foreign key constraint`))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Comment{Content: "nice", UserID: 1, PostID: 42})

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "content", "user_id", "post_id", "created_at"}).
		AddRow(1, "first", 1, 2, now.Add(-time.Hour)).
		AddRow(2, "second", 3, 2, now)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1`).
		WithArgs(2).
		WillReturnRows(rows)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" IN \(\$1,\$2\)`).
		WithArgs(1, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(1, "alice").
			AddRow(3, "carol"))

	comments, err := repo.ListByPost(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "alice", comments[0].User.Username)
	assert.Equal(t, "carol", comments[1].User.Username)
}
