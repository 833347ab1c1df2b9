package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"blogicum/internal/database"
	"blogicum/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory sqlite database per test. The DSN is
// keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.ConnectSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	return db
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func mustCreateCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Title:       "Category " + slug,
		Slug:        slug,
		IsPublished: published,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func mustCreatePost(t *testing.T, db *gorm.DB, author *models.User, category *models.Category, overrides ...func(*models.Post)) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       "A post",
		Text:        "Body",
		PubDate:     time.Now().Add(-time.Hour),
		IsPublished: true,
		AuthorID:    &author.ID,
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	for _, override := range overrides {
		override(post)
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
