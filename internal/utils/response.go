package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every endpoint.
// Used to standardize error responses across endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError sends a standardized error response with the given message.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}
