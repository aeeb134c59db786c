package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	"goblog/internal/httperr"
)

// pathID parses a numeric path parameter. A malformed value is a validation
// failure; a well-formed id that matches no row is left to the service's
// not-found path, so 0 flows through like any other absent id.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		abortValidation(c, []httperr.FieldViolation{
			{Field: name, Message: "must be a valid integer"},
		})
		return 0, false
	}
	return uint(parsed), true
}

// rawBody returns the request body cached by ShouldBindBodyWith.
func rawBody(c *gin.Context) []byte {
	if cached, ok := c.Get(gin.BodyBytesKey); ok {
		if body, ok := cached.([]byte); ok {
			return body
		}
	}
	return nil
}

func decodedBody(c *gin.Context) any {
	body := rawBody(c)
	if len(body) == 0 {
		return nil
	}
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}
	return decoded
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func abortValidation(c *gin.Context, violations []httperr.FieldViolation) {
	abortWith(c, httperr.Validation(violations, decodedBody(c)))
}
