package service

import (
	"context"

	"blogicum/internal/models"
	"blogicum/internal/observability"
	"blogicum/internal/repository"
	"blogicum/internal/validation"
)

// CommentService handles the comment lifecycle. Ownership denials carry the
// comment's post ID so the HTTP layer can route the viewer back to that
// post's detail view.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment attaches a new comment by the viewer to the given post.
// Fails with not-found when the post does not exist.
func (s *CommentService) CreateComment(ctx context.Context, viewerID, postID uint, form validation.CommentForm) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := validation.ValidateForm(form); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     form.Text,
		PostID:   postID,
		AuthorID: viewerID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// UpdateComment edits a comment if the viewer wrote it.
func (s *CommentService) UpdateComment(ctx context.Context, viewerID, commentID uint, form validation.CommentForm) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != viewerID {
		observability.OwnershipRedirectsTotal.Inc()
		return nil, models.NewNotOwnerError(comment.PostID)
	}
	if err := validation.ValidateForm(form); err != nil {
		return nil, err
	}

	comment.Text = form.Text
	comment.Author = nil
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes a comment if the viewer wrote it.
func (s *CommentService) DeleteComment(ctx context.Context, viewerID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != viewerID {
		observability.OwnershipRedirectsTotal.Inc()
		return models.NewNotOwnerError(comment.PostID)
	}

	return s.commentRepo.Delete(ctx, commentID)
}
