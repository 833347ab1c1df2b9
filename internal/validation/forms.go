// Package validation contains form definitions and input validation rules.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"blogicum/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PostForm is the field set accepted when creating or editing a post.
// Author and publication flag are never taken from the client: the author is
// the authenticated viewer and is_published keeps its model default.
type PostForm struct {
	Title      string    `json:"title" validate:"required,max=256"`
	Text       string    `json:"text" validate:"required"`
	PubDate    time.Time `json:"pub_date" validate:"required"`
	CategoryID *uint     `json:"category_id"`
	LocationID *uint     `json:"location_id"`
	ImageURL   string    `json:"image_url" validate:"omitempty,url"`
}

// CommentForm accepts the comment text only.
type CommentForm struct {
	Text string `json:"text" validate:"required,max=120"`
}

// UserForm is the profile field set a user may edit about themselves.
type UserForm struct {
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Email     string `json:"email" validate:"required,email"`
}

// ValidateForm runs tag-based validation and converts failures into a single
// validation error listing every offending field.
func ValidateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return models.NewValidationError("Invalid input")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return models.NewValidationError(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
