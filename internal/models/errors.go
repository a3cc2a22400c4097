package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned in the response envelope.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

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

// NewNotFoundError reports an absent resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError reports malformed input or a business-rule violation.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

// NewUnauthorizedError reports a missing authenticated principal.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewForbiddenError reports an authenticated principal lacking the required
// role or ownership.
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// errorBody is the "error" member of the failure envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RespondWithError writes the standard failure envelope:
// {"success": false, "error": {"code", "message", "details"?}}.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	body := errorBody{Message: err.Error()}

	if appErr, ok := err.(*AppError); ok {
		body.Code = appErr.Code
		body.Message = appErr.Message
		if appErr.Err != nil {
			body.Details = appErr.Err.Error()
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   body,
	})
}
