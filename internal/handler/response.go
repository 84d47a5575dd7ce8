package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"codedoc/internal/domain"
	"codedoc/internal/middleware"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"No code provided"`
}

// RespondOK sends a 200 response with the payload as the body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes. Anything not
// recognised is an upstream failure and keeps its own message.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrNoCodeProvided):
		return http.StatusBadRequest, domain.ErrNoCodeProvided.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("[%s] error generating documentation: %v", middleware.GetRequestID(c), err)
	}
	RespondError(c, status, msg)
}
