// Package service implements the application operations on top of the
// repositories: feeds, post lifecycle, comments, and profiles.
package service

import (
	"context"
	"time"

	"blogicum/internal/models"
	"blogicum/internal/observability"
	"blogicum/internal/repository"
	"blogicum/internal/validation"
)

// PostService handles post reads and the post lifecycle. It owns the
// visibility decisions: listings go through the repository's published
// scope, the detail view applies the author bypass.
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	commentRepo  repository.CommentRepository
	pageSize     int
}

// PostDetail is the detail view payload: the post plus its comment thread
// in ascending creation order.
type PostDetail struct {
	Post     *models.Post      `json:"post"`
	Comments []*models.Comment `json:"comments"`
}

// CategoryFeed is a page of a category's posts together with the category.
type CategoryFeed struct {
	Category *models.Category `json:"category"`
	Posts    []*models.Post   `json:"posts"`
}

// NewPostService creates a new post service with the given fixed page size.
func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	commentRepo repository.CommentRepository,
	pageSize int,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		commentRepo:  commentRepo,
		pageSize:     pageSize,
	}
}

func (s *PostService) offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * s.pageSize
}

// ListFeed returns one page of the public feed, newest first.
func (s *PostService) ListFeed(ctx context.Context, page int) ([]*models.Post, error) {
	return s.postRepo.ListPublished(ctx, s.pageSize, s.offset(page))
}

// ListCategory returns one page of a published category's public posts.
// A missing or unpublished category yields the same not-found error.
func (s *PostService) ListCategory(ctx context.Context, slug string, page int) (*CategoryFeed, error) {
	category, err := s.categoryRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListPublishedByCategory(ctx, category.ID, s.pageSize, s.offset(page))
	if err != nil {
		return nil, err
	}
	return &CategoryFeed{Category: category, Posts: posts}, nil
}

// GetPost returns the detail view of a post. The author always gets their
// own post; everyone else only sees it when it is publicly visible, and an
// invisible post is reported exactly like a missing one.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !post.AuthoredBy(viewerID) && !post.PubliclyVisible(time.Now()) {
		observability.PostsHiddenTotal.Inc()
		return nil, models.NewNotFoundError("post", postID)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: post, Comments: comments}, nil
}

// CreatePost creates a post authored by the viewer. The publication flag is
// not part of the form and keeps the model default.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, form validation.PostForm) (*models.Post, error) {
	if err := validation.ValidateForm(form); err != nil {
		return nil, err
	}
	if form.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *form.CategoryID); err != nil {
			return nil, err
		}
	}
	if form.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *form.LocationID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Title:       form.Title,
		Text:        form.Text,
		PubDate:     form.PubDate,
		ImageURL:    form.ImageURL,
		IsPublished: true,
		AuthorID:    &authorID,
		CategoryID:  form.CategoryID,
		LocationID:  form.LocationID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost edits a post if the viewer wrote it. Anyone else is routed
// back to the detail view without any mutation.
func (s *PostService) UpdatePost(ctx context.Context, viewerID, postID uint, form validation.PostForm) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.AuthoredBy(viewerID) {
		observability.OwnershipRedirectsTotal.Inc()
		return nil, models.NewNotOwnerError(postID)
	}
	if err := validation.ValidateForm(form); err != nil {
		return nil, err
	}
	if form.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *form.CategoryID); err != nil {
			return nil, err
		}
	}
	if form.LocationID != nil {
		if _, err := s.locationRepo.GetByID(ctx, *form.LocationID); err != nil {
			return nil, err
		}
	}

	post.Title = form.Title
	post.Text = form.Text
	post.PubDate = form.PubDate
	post.ImageURL = form.ImageURL
	post.CategoryID = form.CategoryID
	post.LocationID = form.LocationID
	// drop preloaded associations so Save only writes the posts row
	post.Author = nil
	post.Category = nil
	post.Location = nil

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

// DeletePost removes a post if the viewer wrote it; same soft-deny rule as
// UpdatePost otherwise.
func (s *PostService) DeletePost(ctx context.Context, viewerID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !post.AuthoredBy(viewerID) {
		observability.OwnershipRedirectsTotal.Inc()
		return models.NewNotOwnerError(postID)
	}
	return s.postRepo.Delete(ctx, postID)
}
