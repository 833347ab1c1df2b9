package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"blogicum/internal/models"
	"blogicum/internal/observability"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	NumUsers int
	NumPosts int
}

// Seeder populates the database with a realistic mix of blog data.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded rows. Hard deletes so repeated seeding does
// not accumulate soft-deleted rows.
func (s *Seeder) ClearAll(ctx context.Context) error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Comment{}, &models.Post{}, &models.Location{},
		&models.Category{}, &models.User{},
	} {
		if err := s.db.WithContext(ctx).Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// Run generates users, categories, locations, posts, and comments. The post
// mix deliberately includes unpublished posts, future-dated posts, and posts
// in unpublished categories so the public feed exercises every hiding rule.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 100
	}

	log.Printf("Seeding %d users and %d posts... (correlation_id=%s)",
		opts.NumUsers, opts.NumPosts, observability.ExtractCorrelationID(ctx))
	factory := NewFactory(s.db.WithContext(ctx))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}

	categories := make([]*models.Category, 0, 8)
	for i := 0; i < 8; i++ {
		category, err := factory.CreateCategory()
		if err != nil {
			return fmt.Errorf("creating category: %w", err)
		}
		categories = append(categories, category)
	}
	// one hidden category so its posts drop out of public listings
	hidden, err := factory.CreateCategory(func(c *models.Category) {
		c.IsPublished = false
	})
	if err != nil {
		return fmt.Errorf("creating hidden category: %w", err)
	}

	locations := make([]*models.Location, 0, 5)
	for i := 0; i < 5; i++ {
		location, err := factory.CreateLocation()
		if err != nil {
			return fmt.Errorf("creating location: %w", err)
		}
		locations = append(locations, location)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := lo.Sample(users)
		post := factory.BuildPost(author, 120, func(p *models.Post) {
			p.CategoryID = &lo.Sample(categories).ID
			if lo.Sample([]bool{true, false, false}) {
				p.LocationID = &lo.Sample(locations).ID
			}
		})

		switch i % 10 {
		case 0:
			// draft, visible only to its author
			post.IsPublished = false
		case 1:
			// scheduled for the future
			post.PubDate = time.Now().Add(time.Duration(24+i) * time.Hour)
		case 2:
			post.CategoryID = &hidden.ID
		}
		posts = append(posts, post)
	}
	if err := factory.CreatePostsBatch(posts); err != nil {
		return fmt.Errorf("creating posts: %w", err)
	}

	commented := 0
	for _, post := range posts {
		for i := 0; i < lo.Sample([]int{0, 0, 1, 2, 3, 5}); i++ {
			if _, err := factory.CreateComment(lo.Sample(users), post); err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
			commented++
		}
	}

	log.Printf("Seeded %d users, %d categories, %d locations, %d posts, %d comments",
		len(users), len(categories)+1, len(locations), len(posts), commented)
	return nil
}
