package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/dampdigits/stockplay/internal/domain/port/core"
)

// ErrorHandler middleware recovers from panics and renders an apology page
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"user_agent": c.Request.UserAgent(),
				})

				c.HTML(http.StatusInternalServerError, "apology.html", gin.H{
					"Code":    http.StatusInternalServerError,
					"Message": "internal server error",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
