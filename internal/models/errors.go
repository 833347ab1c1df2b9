package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError builds the generic not-found error. It is returned both
// when an entity does not exist and when it exists but is hidden from the
// requesting viewer, so callers cannot tell the two apart.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// NotOwnerError signals that a mutation was attempted by someone other than
// the author. It is not surfaced as an error response; the HTTP layer routes
// the viewer back to the detail view of PostID instead.
type NotOwnerError struct {
	PostID uint
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("viewer is not the author of post %d", e.PostID)
}

// NewNotOwnerError creates a NotOwnerError pointing at the post the viewer
// should be redirected to.
func NewNotOwnerError(postID uint) *NotOwnerError {
	return &NotOwnerError{PostID: postID}
}

// AsNotOwner extracts a NotOwnerError from an error chain.
func AsNotOwner(err error) (*NotOwnerError, bool) {
	var notOwner *NotOwnerError
	if errors.As(err, &notOwner) {
		return notOwner, true
	}
	return nil, false
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
