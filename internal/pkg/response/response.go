package response

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/debanjo31/uLearnApi/pkg/errors"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
	})
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    message,
		Data:       data,
	})
}

// Paginated sends a 200 OK list response with pagination metadata
func Paginated(c *gin.Context, data interface{}, pagination interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Error:      message,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// BindJSONError handles JSON decode errors in request body
func BindJSONError(c *gin.Context, err error) {
	BadRequest(c, "Invalid request format")
}

// FromError maps the pkg/errors taxonomy onto status codes. Unexpected
// errors become a generic 500 so internals never leak to the caller.
func FromError(c *gin.Context, err error, message string) {
	switch {
	case stderrors.Is(err, apperrors.ErrBadRequest):
		BadRequest(c, message)
	case stderrors.Is(err, apperrors.ErrUnauthorized):
		Unauthorized(c, message)
	case stderrors.Is(err, apperrors.ErrForbidden):
		Forbidden(c, message)
	case stderrors.Is(err, apperrors.ErrNotFound):
		NotFound(c, message)
	case stderrors.Is(err, apperrors.ErrConflict):
		Conflict(c, message)
	default:
		InternalServerError(c, "Something went wrong")
	}
}
