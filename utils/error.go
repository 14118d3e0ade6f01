package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidationError reports bad or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an absent therapist, user or appointment.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports a request that is valid but not currently allowed:
// a busy therapist or a join outside the session window. AvailableAt and
// CanJoinAt carry the instant at which the request would succeed.
type ConflictError struct {
	Message     string
	AvailableAt *time.Time
	CanJoinAt   *time.Time
}

func (e *ConflictError) Error() string { return e.Message }

// UnauthorizedError reports a caller that is neither the booking user nor
// the assigned therapist.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// ErrorResponse defines the structure of unexpected error responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError maps a domain error onto the wire shape the clients expect.
// Conflict responses carry availableAt / canJoinAt alongside the message.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()

	var ve *ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
		return
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": nf.Message})
		return
	}

	var conflict *ConflictError
	if errors.As(err, &conflict) {
		body := gin.H{"success": false, "message": conflict.Message}
		if conflict.AvailableAt != nil {
			body["availableAt"] = conflict.AvailableAt
		}
		if conflict.CanJoinAt != nil {
			body["canJoinAt"] = conflict.CanJoinAt
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	var unauth *UnauthorizedError
	if errors.As(err, &unauth) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": unauth.Message})
		return
	}

	logger.Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
