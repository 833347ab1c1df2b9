package seed

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"blogicum/internal/database"
	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.ConnectSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	return db
}

func TestSeeder_Run(t *testing.T) {
	db := newTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(context.Background(), Options{NumUsers: 5, NumPosts: 30}))

	var userCount, postCount, categoryCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(30), postCount)
	assert.Equal(t, int64(9), categoryCount)

	// the mix must include drafts and scheduled posts
	var drafts, scheduled int64
	require.NoError(t, db.Model(&models.Post{}).Where("is_published = ?", false).Count(&drafts).Error)
	require.NoError(t, db.Model(&models.Post{}).Where("pub_date > ?", time.Now()).Count(&scheduled).Error)
	assert.NotZero(t, drafts)
	assert.NotZero(t, scheduled)

	var hiddenCategories int64
	require.NoError(t, db.Model(&models.Category{}).Where("is_published = ?", false).Count(&hiddenCategories).Error)
	assert.Equal(t, int64(1), hiddenCategories)
}

func TestSeeder_ClearAll(t *testing.T) {
	db := newTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(context.Background(), Options{NumUsers: 3, NumPosts: 10}))
	require.NoError(t, s.ClearAll(context.Background()))

	var posts int64
	require.NoError(t, db.Unscoped().Model(&models.Post{}).Count(&posts).Error)
	assert.Zero(t, posts)
}

func TestFactory_CreateUserHasHashedPassword(t *testing.T) {
	db := newTestDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser()
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "$2"))
}

func TestClipComment(t *testing.T) {
	assert.Equal(t, "short", clipComment("short"))

	long := strings.Repeat("é", models.MaxCommentLength+30)
	clipped := clipComment(long)
	assert.True(t, utf8.ValidString(clipped))
	assert.Equal(t, models.MaxCommentLength, utf8.RuneCountInString(clipped))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello, World!"))
	assert.Equal(t, "science-fiction-42", Slugify("Science Fiction 42"))
	assert.Equal(t, "a-b", Slugify("--a__b--"))
}
