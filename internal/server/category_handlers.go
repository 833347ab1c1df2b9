package server

import (
	"github.com/gofiber/fiber/v2"
)

// ListCategoryPosts handles GET /api/categories/:slug/posts?page=
func (s *Server) ListCategoryPosts(c *fiber.Ctx) error {
	feed, err := s.postService.ListCategory(c.UserContext(), c.Params("slug"), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feed)
}

// ListCategories handles GET /api/categories
func (s *Server) ListCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(categories)
}

// ListLocations handles GET /api/locations
func (s *Server) ListLocations(c *fiber.Ctx) error {
	locations, err := s.locationRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(locations)
}
