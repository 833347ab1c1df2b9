// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"blogicum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample models.User. All seeded users
// share the password "password123" so they can be logged into during demos.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username:  fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory constructs and persists a category with a slug derived from
// its title.
func (f *Factory) CreateCategory(overrides ...func(*models.Category)) (*models.Category, error) {
	title := gofakeit.BookGenre()
	category := &models.Category{
		Title:       title,
		Description: gofakeit.Sentence(12),
		Slug:        Slugify(fmt.Sprintf("%s-%d", title, gofakeit.Number(100, 999))),
		IsPublished: true,
	}
	for _, override := range overrides {
		override(category)
	}
	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateLocation constructs and persists a location tag.
func (f *Factory) CreateLocation(overrides ...func(*models.Location)) (*models.Location, error) {
	location := &models.Location{
		Name:        fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		IsPublished: true,
	}
	for _, override := range overrides {
		override(location)
	}
	if err := f.db.Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

// BuildPost constructs a post for the given author without persisting it.
// The publication date is spread over the last maxDays days so feeds look
// lived-in rather than generated in one burst.
func (f *Factory) BuildPost(author *models.User, maxDays int, overrides ...func(*models.Post)) *models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}
	back := time.Duration(f.rand.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rand.Intn(24))*time.Hour +
		time.Duration(f.rand.Intn(60))*time.Minute

	post := &models.Post{
		Title:       gofakeit.Sentence(5),
		Text:        gofakeit.Paragraph(2, 4, 8, "\n\n"),
		PubDate:     time.Now().Add(-back),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		IsPublished: true,
		AuthorID:    &author.ID,
	}
	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return f.db.Create(&posts).Error
}

// CreateComment persists a comment by the given author on the given post.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     clipComment(gofakeit.Sentence(8)),
		PostID:   post.ID,
		AuthorID: author.ID,
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// clipComment trims generated text to the comment limit, counting runes so
// a multi-byte character is never cut in half.
func clipComment(text string) string {
	runes := []rune(text)
	if len(runes) <= models.MaxCommentLength {
		return text
	}
	return string(runes[:models.MaxCommentLength])
}

// Slugify lowercases a title and replaces runs of non-alphanumeric
// characters with single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
