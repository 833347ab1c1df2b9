package validation

import (
	"strings"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm_PostForm(t *testing.T) {
	valid := PostForm{
		Title:   "Hello",
		Text:    "World",
		PubDate: time.Now(),
	}
	require.NoError(t, ValidateForm(valid))

	t.Run("missing title and text", func(t *testing.T) {
		err := ValidateForm(PostForm{PubDate: time.Now()})
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		assert.Contains(t, appErr.Message, "title is required")
		assert.Contains(t, appErr.Message, "text is required")
	})

	t.Run("title too long", func(t *testing.T) {
		form := valid
		form.Title = strings.Repeat("a", 257)
		err := ValidateForm(form)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 256")
	})

	t.Run("bad image url", func(t *testing.T) {
		form := valid
		form.ImageURL = "not a url"
		require.Error(t, ValidateForm(form))

		form.ImageURL = "https://example.com/cat.png"
		require.NoError(t, ValidateForm(form))
	})
}

func TestValidateForm_CommentForm(t *testing.T) {
	require.NoError(t, ValidateForm(CommentForm{Text: "short and sweet"}))
	require.NoError(t, ValidateForm(CommentForm{Text: strings.Repeat("x", 120)}))

	err := ValidateForm(CommentForm{Text: strings.Repeat("x", 121)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 120")

	require.Error(t, ValidateForm(CommentForm{}))
}

func TestValidateForm_UserForm(t *testing.T) {
	require.NoError(t, ValidateForm(UserForm{Username: "alice", Email: "alice@example.com"}))

	err := ValidateForm(UserForm{Username: "alice", Email: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")
}
