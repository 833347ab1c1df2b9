package server

import (
	"errors"
	"fmt"

	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parsePage extracts the 1-based page number query parameter.
func parsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// viewerID returns the authenticated user ID, or zero for anonymous viewers.
func viewerID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// redirectToPost is the soft-deny: instead of a permission error, route the
// viewer to the read-only detail view of the post they tried to mutate.
func redirectToPost(c *fiber.Ctx, postID uint) error {
	return c.Redirect(fmt.Sprintf("/api/posts/%d", postID), fiber.StatusSeeOther)
}

// respondServiceError maps service errors onto HTTP responses. Ownership
// denials become redirects, not error payloads.
func respondServiceError(c *fiber.Ctx, err error) error {
	if notOwner, ok := models.AsNotOwner(err); ok {
		return redirectToPost(c, notOwner.PostID)
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
