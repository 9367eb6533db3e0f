package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondError writes the error wire format used by every endpoint.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{
		"error": err.Error(),
	})
}
