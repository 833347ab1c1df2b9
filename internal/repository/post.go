// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/models"
	"blogicum/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
//
// GetByID is the raw accessor: it returns the post regardless of publication
// state so the service layer can apply the author bypass. The List* methods
// that carry "Published" in their name apply the public-visibility scope.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, error)
	ListPublishedByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, publishedOnly bool, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, log: observability.NewRepoLogger("posts")}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("create", "posts")()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		r.log.LogError(ctx, err, "create")
		return err
	}
	r.log.LogMutation(ctx, "create", map[string]interface{}{"post_id": post.ID})
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("read", "posts")()
	var post models.Post
	err := cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		return withCommentCount(r.db.WithContext(ctx)).
			Preload("Author").
			Preload("Category").
			Preload("Location").
			First(&post, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	defer observability.TrackQuery("list", "posts")()
	var posts []*models.Post

	// Only the first page of the public feed is worth caching; it absorbs
	// nearly all anonymous traffic and is invalidated on every mutation.
	if offset == 0 {
		err := cache.Aside(ctx, cache.FeedFirstPage, &posts, cache.FeedTTL, func() error {
			var fetchErr error
			posts, fetchErr = r.listPublished(ctx, limit, offset)
			return fetchErr
		})
		return posts, err
	}
	return r.listPublished(ctx, limit, offset)
}

func (r *postRepository) listPublished(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.published(withCommentCount(r.db.WithContext(ctx))).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListPublishedByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error) {
	defer observability.TrackQuery("list", "posts")()
	var posts []*models.Post
	err := r.published(withCommentCount(r.db.WithContext(ctx))).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Where("posts.category_id = ?", categoryID).
		Order("posts.pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, publishedOnly bool, limit, offset int) ([]*models.Post, error) {
	defer observability.TrackQuery("list", "posts")()
	base := withCommentCount(r.db.WithContext(ctx)).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Where("posts.author_id = ?", authorID)
	if publishedOnly {
		base = r.published(base)
	}

	var posts []*models.Post
	err := base.
		Order("posts.pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// published narrows the query to publicly visible posts: published, inside a
// published category, and with a publication date at or before now. This is
// the SQL rendering of (*models.Post).PubliclyVisible; keep the two in sync.
// The inner join drops posts without a category.
func (r *postRepository) published(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN categories ON categories.id = posts.category_id AND categories.is_published = ? AND categories.deleted_at IS NULL", true).
		Where("posts.is_published = ?", true).
		Where("posts.pub_date <= ?", time.Now())
}

// withCommentCount annotates each row with the number of live comments via a
// correlated subquery, scanned into the read-only CommentCount field.
func withCommentCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comment_count")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("update", "posts")()
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		r.log.LogError(ctx, err, "update")
		return err
	}
	r.log.LogMutation(ctx, "update", map[string]interface{}{"post_id": post.ID})
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "posts")()
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		r.log.LogError(ctx, err, "delete")
		return err
	}
	r.log.LogMutation(ctx, "delete", map[string]interface{}{"post_id": id})
	cache.InvalidatePost(ctx, id)
	cache.InvalidateFeed(ctx)
	return nil
}
