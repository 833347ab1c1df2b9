package server

import (
	"blogicum/internal/models"
	"blogicum/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profiles/:username?page=
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.userService.GetProfile(c.UserContext(), c.Params("username"), viewerID(c), parsePage(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var form validation.UserForm
	if err := c.BodyParser(&form); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), viewerID(c), form)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
