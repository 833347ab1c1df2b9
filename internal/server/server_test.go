package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"blogicum/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestServer wires the real repositories and services over an in-memory
// sqlite database. Handlers are registered on a bare fiber app; the full
// middleware stack is exercised separately.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.ConnectSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	cfg := &config.Config{
		Port:      "0",
		JWTSecret: "test-secret-test-secret-test-secret",
		Env:       "test",
		PageSize:  10,
	}

	s := &Server{
		config:       cfg,
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		postRepo:     repository.NewPostRepository(db),
		commentRepo:  repository.NewCommentRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
		locationRepo: repository.NewLocationRepository(db),
	}
	s.postService = service.NewPostService(s.postRepo, s.categoryRepo, s.locationRepo, s.commentRepo, cfg.PageSize)
	s.commentService = service.NewCommentService(s.commentRepo, s.postRepo)
	s.userService = service.NewUserService(s.userRepo, s.postRepo, cfg.PageSize)
	return s, db
}

// testApp registers the API routes without the auth middleware. A non-zero
// viewerID is injected the way OptionalAuth would after verifying a token.
func testApp(s *Server, viewerID uint) *fiber.App {
	app := fiber.New()
	if viewerID != 0 {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userID", viewerID)
			return c.Next()
		})
	}

	api := app.Group("/api")
	api.Get("/posts", s.ListPosts)
	api.Get("/posts/:id", s.GetPost)
	api.Post("/posts", s.CreatePost)
	api.Put("/posts/:id", s.UpdatePost)
	api.Delete("/posts/:id", s.DeletePost)
	api.Post("/posts/:id/comments", s.CreateComment)
	api.Put("/comments/:id", s.UpdateComment)
	api.Delete("/comments/:id", s.DeleteComment)
	api.Get("/categories", s.ListCategories)
	api.Get("/categories/:slug/posts", s.ListCategoryPosts)
	api.Get("/locations", s.ListLocations)
	api.Get("/profiles/:username", s.GetProfile)
	api.Put("/profile", s.UpdateProfile)
	return app
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Title:       "Category " + slug,
		Slug:        slug,
		IsPublished: published,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedPost(t *testing.T, db *gorm.DB, author *models.User, category *models.Category, overrides ...func(*models.Post)) *models.Post {
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

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	resp, err := app.Test(newJSONRequest(method, target, body), -1)
	require.NoError(t, err)
	return resp
}

func newJSONRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, target, nil)
	} else {
		req, _ = http.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
