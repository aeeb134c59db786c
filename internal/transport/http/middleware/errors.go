package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"goblog/internal/httperr"
)

const apiPrefix = "/api"

// Browser clients get one fixed sentence instead of field-level detail.
const genericValidationMessage = "Some fields contain invalid data. Please check your input and try again."

// ErrorRenderer translates errors attached by handlers into responses.
// Requests under the API prefix get structured JSON; everything else gets the
// error page template.
func ErrorRenderer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		isAPI := strings.HasPrefix(c.Request.URL.Path, apiPrefix)

		var validationErr *httperr.ValidationError
		if errors.As(err, &validationErr) {
			if isAPI {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"detail": validationErr.Violations,
					"body":   validationErr.Body,
				})
				return
			}
			c.HTML(http.StatusUnprocessableEntity, "error.html", gin.H{
				"status_code": http.StatusUnprocessableEntity,
				"title":       "Invalid Request",
				"message":     genericValidationMessage,
			})
			return
		}

		var domainErr *httperr.Error
		if errors.As(err, &domainErr) {
			if isAPI {
				c.JSON(domainErr.Status, gin.H{"detail": domainErr.Detail})
				return
			}
			c.HTML(domainErr.Status, "error.html", gin.H{
				"status_code": domainErr.Status,
				"title":       "Something went wrong",
				"message":     domainErr.Detail,
			})
			return
		}

		if isAPI {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"status_code": http.StatusInternalServerError,
			"title":       "Something went wrong",
			"message":     "Internal Server Error",
		})
	}
}
