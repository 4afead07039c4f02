package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Message string `json:"message" example:"Room not found"`
	Error   string `json:"error,omitempty" example:"no rows in result set"`
}

// NewErrorResponse creates an ErrorResponse
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// WithError attaches the underlying error text
func (e ErrorResponse) WithError(err error) ErrorResponse {
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// HandleValidationError turns a gin binding error into a readable message
func HandleValidationError(err error) ErrorResponse {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, formatFieldError(fieldErr))
		}
		return NewErrorResponse(strings.Join(messages, "; "))
	}

	return NewErrorResponse("Invalid request body").WithError(err)
}

func formatFieldError(e validator.FieldError) string {
	// Field names are JSON names once middleware.RegisterJSONTagNames has run
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " is invalid"
	}
}
