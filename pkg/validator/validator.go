// Package validator registers the catalog's custom binding validators on
// gin's validator engine and translates validation failures into the
// field-level detail the response envelope carries.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "libcatalog/pkg/errors"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Register installs the custom validators. Call once at startup (and in
// handler tests) before binding any request.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	// Report wire names (json/form tags) in field errors, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("isbn1013", validISBN); err != nil {
		return err
	}
	return v.RegisterValidation("pubyear", validPublishedYear)
}

// validISBN accepts exactly 10 or 13 digits.
func validISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	if !digitsOnly.MatchString(isbn) {
		return false
	}
	return len(isbn) == 10 || len(isbn) == 13
}

// validPublishedYear accepts 1000 <= y <= current year + 1.
func validPublishedYear(fl validator.FieldLevel) bool {
	y := fl.Field().Int()
	return y >= 1000 && y <= int64(time.Now().Year()+1)
}

// Translate converts a binding error into field errors, enumerating every
// failing field. Non-validator errors (malformed JSON) map to a single
// body-level entry.
func Translate(err error) []apperrors.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperrors.FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperrors.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Value:   fe.Value(),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "isbn1013":
		return fmt.Sprintf("%s must be exactly 10 or 13 digits", fe.Field())
	case "pubyear":
		return fmt.Sprintf("%s must be between 1000 and %d", fe.Field(), time.Now().Year()+1)
	default:
		return fmt.Sprintf("%s failed validation on %s", fe.Field(), fe.Tag())
	}
}
