package repository

import (
	"context"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByPost_AscendingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := mustCreateUser(t, db, "alice")
	category := mustCreateCategory(t, db, "travel", true)
	post := mustCreatePost(t, db, author, category)

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		comment := &models.Comment{
			Text:      text,
			PostID:    post.ID,
			AuthorID:  author.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(comment).Error)
	}

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "third", comments[2].Text)
	require.NotNil(t, comments[0].Author)
	assert.Equal(t, "alice", comments[0].Author.Username)
}

func TestCommentRepository_ListByPost_ScopedToPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := mustCreateUser(t, db, "alice")
	category := mustCreateCategory(t, db, "travel", true)
	one := mustCreatePost(t, db, author, category)
	other := mustCreatePost(t, db, author, category)

	require.NoError(t, repo.Create(ctx, &models.Comment{Text: "on one", PostID: one.ID, AuthorID: author.ID}))
	require.NoError(t, repo.Create(ctx, &models.Comment{Text: "on other", PostID: other.ID, AuthorID: author.ID}))

	comments, err := repo.ListByPost(ctx, one.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on one", comments[0].Text)
}

func TestCommentRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	err := repo.Delete(context.Background(), 9999)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestCommentRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := mustCreateUser(t, db, "alice")
	category := mustCreateCategory(t, db, "travel", true)
	post := mustCreatePost(t, db, author, category)

	comment := &models.Comment{Text: "draft", PostID: post.ID, AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, comment))

	comment.Text = "edited"
	require.NoError(t, repo.Update(ctx, comment))

	got, err := repo.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Text)
}
