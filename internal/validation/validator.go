package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var fixedQueryPattern = regexp.MustCompile(`^fixedquery$`)

// FieldError identifies a single field that failed a declared constraint
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Register wires custom tags and json-tag field naming into gin's validator engine.
// Call once at startup before the router serves requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not a validator.Validate")
	}

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

	return v.RegisterValidation("fixedquery", func(fl validator.FieldLevel) bool {
		return fixedQueryPattern.MatchString(fl.Field().String())
	})
}

// Fields expands a binding error into field-identifying entries.
// Returns nil when err carries no per-field detail (e.g. malformed JSON).
func Fields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return fields
}

// IsConstraintViolation reports whether err is a declared-constraint failure
// rather than a malformed payload.
func IsConstraintViolation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
