package service

import (
	"context"

	"blogicum/internal/models"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn                  func(context.Context, *models.Post) error
	getByIDFn                 func(context.Context, uint) (*models.Post, error)
	listPublishedFn           func(context.Context, int, int) ([]*models.Post, error)
	listPublishedByCategoryFn func(context.Context, uint, int, int) ([]*models.Post, error)
	listByAuthorFn            func(context.Context, uint, bool, int, int) ([]*models.Post, error)
	updateFn                  func(context.Context, *models.Post) error
	deleteFn                  func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listPublishedFn(ctx, limit, offset)
}
func (s *postRepoStub) ListPublishedByCategory(ctx context.Context, categoryID uint, limit, offset int) ([]*models.Post, error) {
	return s.listPublishedByCategoryFn(ctx, categoryID, limit, offset)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, publishedOnly bool, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, publishedOnly, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		listPublishedFn: func(_ context.Context, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		listPublishedByCategoryFn: func(_ context.Context, _ uint, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		listByAuthorFn: func(_ context.Context, _ uint, _ bool, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		updateFn: func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn             func(context.Context, *models.Category) error
	getByIDFn            func(context.Context, uint) (*models.Category, error)
	getPublishedBySlugFn func(context.Context, string) (*models.Category, error)
	listFn               func(context.Context) ([]*models.Category, error)
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetPublishedBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getPublishedBySlugFn(ctx, slug)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]*models.Category, error) {
	return s.listFn(ctx)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn: func(_ context.Context, _ *models.Category) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Category, error) {
			return &models.Category{ID: id, IsPublished: true}, nil
		},
		getPublishedBySlugFn: func(_ context.Context, slug string) (*models.Category, error) {
			return &models.Category{Slug: slug, IsPublished: true}, nil
		},
		listFn: func(_ context.Context) ([]*models.Category, error) { return nil, nil },
	}
}

// locationRepoStub is a stub for repository.LocationRepository.
type locationRepoStub struct {
	createFn  func(context.Context, *models.Location) error
	getByIDFn func(context.Context, uint) (*models.Location, error)
	listFn    func(context.Context) ([]*models.Location, error)
}

func (s *locationRepoStub) Create(ctx context.Context, location *models.Location) error {
	return s.createFn(ctx, location)
}
func (s *locationRepoStub) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	return s.getByIDFn(ctx, id)
}
func (s *locationRepoStub) List(ctx context.Context) ([]*models.Location, error) {
	return s.listFn(ctx)
}

func noopLocationRepo() *locationRepoStub {
	return &locationRepoStub{
		createFn: func(_ context.Context, _ *models.Location) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Location, error) {
			return &models.Location{ID: id, IsPublished: true}, nil
		},
		listFn: func(_ context.Context) ([]*models.Location, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, u string) (*models.User, error) { return &models.User{Username: u}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}
