package service

import (
	"context"

	"blogicum/internal/models"
	"blogicum/internal/repository"
	"blogicum/internal/validation"
)

// UserService handles profiles and profile edits.
type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
	pageSize int
}

// Profile is a profile page: the user and one page of their posts.
type Profile struct {
	User  *models.User   `json:"user"`
	Posts []*models.Post `json:"posts"`
}

// NewUserService creates a new user service with the given fixed page size.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, pageSize int) *UserService {
	return &UserService{
		userRepo: userRepo,
		postRepo: postRepo,
		pageSize: pageSize,
	}
}

// GetProfile returns a user's profile page. The profile owner sees all of
// their posts regardless of publication state; every other viewer gets the
// public subset.
func (s *UserService) GetProfile(ctx context.Context, username string, viewerID uint, page int) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	publishedOnly := viewerID == 0 || viewerID != user.ID
	posts, err := s.postRepo.ListByAuthor(ctx, user.ID, publishedOnly, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, Posts: posts}, nil
}

// UpdateProfile edits the viewer's own user record.
func (s *UserService) UpdateProfile(ctx context.Context, viewerID uint, form validation.UserForm) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateForm(form); err != nil {
		return nil, err
	}

	user.Username = form.Username
	user.FirstName = form.FirstName
	user.LastName = form.LastName
	user.Email = form.Email

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
