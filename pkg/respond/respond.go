// Package respond provides the uniform JSON error envelope used by handlers
// and middleware.
package respond

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error shape shared by every endpoint.
type ErrorBody struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

func body(status int, message string) ErrorBody {
	return ErrorBody{
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Error writes the uniform error envelope with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, body(status, message))
}

// AbortError writes the envelope and stops the remaining handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, body(status, message))
}
