package handler

import (
	"github.com/gin-gonic/gin"

	errs "github.com/dampdigits/stockplay/internal/domain/error"
)

// apology renders the error page with the given status and message
func apology(c *gin.Context, status int, message string) {
	c.HTML(status, "apology.html", gin.H{
		"Code":    status,
		"Message": message,
	})
}

// apologyFor maps a domain error to its HTTP status and renders the error page
func apologyFor(c *gin.Context, err error) {
	status := errs.HTTPStatus(err)
	message := err.Error()

	// Internal details stay in the logs, not on the page
	if status >= 500 {
		message = "internal server error"
	}

	apology(c, status, message)
}
