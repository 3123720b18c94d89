package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the success shape every endpoint returns. Errors use
// httperr.Response; the two shapes never mix.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}
