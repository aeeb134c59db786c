// Package schema declares the request and response shapes of the API and the
// rules that admit a payload into the service layer. Create and replace
// bodies lean on gin's binding validator; patch bodies carry tri-state fields
// and are checked explicitly so absent keys stay untouched.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"goblog/internal/httperr"
	"goblog/internal/pkg/optional"
)

var validate = validator.New()

func init() {
	// Report violations under the wire name, not the Go field name.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
	validate.RegisterTagNameFunc(jsonFieldName)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

type UserCreate struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Email    string `json:"email" binding:"required,email,max=120"`
}

type UserPatch struct {
	Username  optional.Field[string] `json:"username"`
	Email     optional.Field[string] `json:"email"`
	ImageFile optional.Field[string] `json:"image_file"`
}

func (p UserPatch) Validate() []httperr.FieldViolation {
	var violations []httperr.FieldViolation
	if p.Username.Set() {
		violations = appendStringChecks(violations, "username", p.Username, 1, 50, "")
	}
	if p.Email.Set() {
		violations = appendStringChecks(violations, "email", p.Email, 1, 120, "email")
	}
	// image_file is the one nullable column: present-null clears it.
	if p.ImageFile.Valid() {
		violations = appendStringChecks(violations, "image_file", p.ImageFile, 1, 200, "")
	}
	return violations
}

type PostCreate struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	Content   string `json:"content" binding:"required,min=1"`
	Published bool   `json:"published"`
	UserID    uint   `json:"user_id" binding:"required,gt=0"`
}

// PostReplace is the PUT body: every core field is required again.
type PostReplace struct {
	Title     string `json:"title" binding:"required,min=1,max=255"`
	Content   string `json:"content" binding:"required,min=1"`
	Published bool   `json:"published"`
	UserID    uint   `json:"user_id" binding:"required,gt=0"`
}

type PostPatch struct {
	Title     optional.Field[string] `json:"title"`
	Content   optional.Field[string] `json:"content"`
	Published optional.Field[bool]   `json:"published"`
}

func (p PostPatch) Validate() []httperr.FieldViolation {
	var violations []httperr.FieldViolation
	if p.Title.Set() {
		violations = appendStringChecks(violations, "title", p.Title, 1, 255, "")
	}
	if p.Content.Set() {
		violations = appendStringChecks(violations, "content", p.Content, 1, 0, "")
	}
	if p.Published.Set() && !p.Published.Valid() {
		violations = append(violations, httperr.FieldViolation{Field: "published", Message: "must not be null"})
	}
	return violations
}

func appendStringChecks(violations []httperr.FieldViolation, field string, f optional.Field[string], minLen, maxLen int, format string) []httperr.FieldViolation {
	if !f.Valid() {
		return append(violations, httperr.FieldViolation{Field: field, Message: "must not be null"})
	}
	value := f.Value()
	if len(value) < minLen {
		return append(violations, httperr.FieldViolation{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d character(s)", minLen),
		})
	}
	if maxLen > 0 && len(value) > maxLen {
		return append(violations, httperr.FieldViolation{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d character(s)", maxLen),
		})
	}
	if format != "" {
		if err := validate.Var(value, format); err != nil {
			return append(violations, httperr.FieldViolation{Field: field, Message: "must be a valid email address"})
		}
	}
	return violations
}

// FromBindingError converts a ShouldBindJSON failure into the validation
// failure shape the error translator renders, echoing the offending body.
func FromBindingError(err error, body []byte) *httperr.ValidationError {
	var decoded any
	if len(body) > 0 {
		if jsonErr := json.Unmarshal(body, &decoded); jsonErr != nil {
			decoded = string(body)
		}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		violations := make([]httperr.FieldViolation, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			violations = append(violations, httperr.FieldViolation{
				Field:   fe.Field(),
				Message: violationMessage(fe),
			})
		}
		return httperr.Validation(violations, decoded)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return httperr.Validation([]httperr.FieldViolation{
			{Field: typeErr.Field, Message: fmt.Sprintf("must be of type %s", typeErr.Type)},
		}, decoded)
	}

	return httperr.Validation([]httperr.FieldViolation{
		{Field: "body", Message: "must be valid JSON"},
	}, decoded)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s character(s)", fe.Param())
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
