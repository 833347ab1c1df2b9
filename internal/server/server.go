// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/config"
	"blogicum/internal/database"
	"blogicum/internal/middleware"
	"blogicum/internal/repository"
	"blogicum/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	app    *fiber.App

	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository

	postService    *service.PostService
	commentService *service.CommentService
	userService    *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return newServer(cfg, db), nil
}

// newServer wires repositories, services, and routes on top of an already
// open database. Tests call it directly with a sqlite database.
func newServer(cfg *config.Config, db *gorm.DB) *Server {
	middleware.InitMiddleware(cfg)

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

	s.app = fiber.New(fiber.Config{
		AppName:      "blogicum",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.app.Use(recover.New())
	s.app.Use(requestid.New())
	s.app.Use(helmet.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	prom := middleware.InitMetrics(s.app, "blogicum")
	s.app.Use(prom.Middleware)

	if s.config.TracingEnabled {
		s.app.Use(middleware.TracingMiddleware())
	}
	s.app.Use(middleware.ContextMiddleware())
	s.app.Use(middleware.RequestLogger())
}

func (s *Server) setupRoutes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/monitor", monitor.New())

	api := s.app.Group("/api")

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(cache.GetClient(), "auth", 10, time.Minute))
	auth.Post("/register", s.Register)
	auth.Post("/login", s.Login)

	api.Get("/posts", middleware.OptionalAuth, s.ListPosts)
	api.Get("/posts/:id", middleware.OptionalAuth, s.GetPost)
	api.Post("/posts", middleware.AuthRequired, s.CreatePost)
	api.Put("/posts/:id", middleware.AuthRequired, s.UpdatePost)
	api.Delete("/posts/:id", middleware.AuthRequired, s.DeletePost)

	api.Post("/posts/:id/comments", middleware.AuthRequired, s.CreateComment)
	api.Put("/comments/:id", middleware.AuthRequired, s.UpdateComment)
	api.Delete("/comments/:id", middleware.AuthRequired, s.DeleteComment)

	api.Get("/categories", s.ListCategories)
	api.Get("/categories/:slug/posts", s.ListCategoryPosts)
	api.Get("/locations", s.ListLocations)

	api.Get("/profiles/:username", middleware.OptionalAuth, s.GetProfile)
	api.Put("/profile", middleware.AuthRequired, s.UpdateProfile)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
