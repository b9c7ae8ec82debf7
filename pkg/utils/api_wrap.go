package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgGenerationFailed   = "Failed to generate itinerary"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInternal           = "Something went wrong!"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps every service error kind onto a status code.
// Anything unrecognised becomes a generic 500 so internals never leak.
func HandleServiceError(c *gin.Context, err error) {
	var (
		validationErr *ValidationError
		generationErr *GenerationError
		formatErr     *ResponseFormatError
		schemaErr     *SchemaMismatchError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   validationErr.Message,
			Field:   validationErr.Field,
			TraceID: traceID(c),
		})
	case errors.As(err, &generationErr), errors.As(err, &formatErr), errors.As(err, &schemaErr):
		log.Printf("[%s] itinerary generation failed: %v", traceID(c), err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   MsgGenerationFailed,
			Details: err.Error(),
			TraceID: traceID(c),
		})
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidSelection), errors.Is(err, ErrSelectionFinalized):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid selection",
			Details: err.Error(),
			TraceID: traceID(c),
		})
	case errors.Is(err, ErrDatabaseError):
		log.Printf("[%s] database error: %v", traceID(c), err)
		RespondError(c, http.StatusInternalServerError, MsgInternal)
	default:
		log.Printf("[%s] unknown error: %v", traceID(c), err)
		RespondError(c, http.StatusInternalServerError, MsgInternal)
	}
}
