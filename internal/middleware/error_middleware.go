package middleware

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/logger"
)

var exposeErrors atomic.Bool

func init() {
	exposeErrors.Store(true)
}

// SetExposeErrors controls whether 500 responses carry the underlying error text
func SetExposeErrors(expose bool) {
	exposeErrors.Store(expose)
}

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: specific sentinels come before the generic ones they may wrap
var errorMappings = []errorMapping{
	{apperrors.ErrStudentNotFound, http.StatusNotFound, "Student not found"},
	{apperrors.ErrRoomNotFound, http.StatusNotFound, "Room not found"},
	{apperrors.ErrComplaintNotFound, http.StatusNotFound, "Complaint not found"},
	{apperrors.ErrEventNotFound, http.StatusNotFound, "Event not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, "Resource not found"},

	{apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already exists"},
	{apperrors.ErrRoomNumberExists, http.StatusBadRequest, "Room number already exists"},
	{apperrors.ErrRoomFull, http.StatusBadRequest, "Room is at full capacity"},
	{apperrors.ErrRoomUnderMaintenance, http.StatusBadRequest, "Room is under maintenance"},
	{apperrors.ErrInvalidRoomStatus, http.StatusBadRequest, "Invalid room status"},
	{apperrors.ErrInvalidCapacity, http.StatusBadRequest, "Capacity must be a positive number"},
	{apperrors.ErrConflict, http.StatusBadRequest, "Conflict"},
	{apperrors.ErrResourceAlreadyExists, http.StatusBadRequest, "Resource already exists"},

	// Login failures are reported as bad requests
	{apperrors.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{apperrors.ErrPasswordIncorrect, http.StatusBadRequest, "Password incorrect"},

	{apperrors.ErrValidationFailed, http.StatusBadRequest, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, "Bad request"},

	{apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "Authentication required"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, "Permission denied"},
}

// HandleAPIError writes the JSON error response matching err
func HandleAPIError(c *gin.Context, err error) {
	status, response := ResolveError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.JSON(status, response)
}

// ResolveError maps err to a status code and response body
func ResolveError(err error) (int, dto.ErrorResponse) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}

		message := m.message
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			message = customErr.Message
		}
		return m.status, dto.NewErrorResponse(message)
	}

	response := dto.NewErrorResponse("Server error")
	if exposeErrors.Load() {
		response = response.WithError(err)
	}
	return http.StatusInternalServerError, response
}
