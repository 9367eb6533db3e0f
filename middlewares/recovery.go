package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savoria/restaurant-backend/utils"
)

// Recovery converts a handler panic into a 500 response in the same error
// shape the endpoints use, instead of killing the process.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.ErrorLogger.Printf("panic recovered: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
