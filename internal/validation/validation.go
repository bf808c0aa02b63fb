// Package validation implements the shared field-rule layer used by every
// create and update flow. Checks are pure: same input, same ErrorMap, no
// side effects. Services run them again even when the caller claims to have
// validated.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	courseCodeRe  = regexp.MustCompile(`^[A-Za-z]{2,5}[0-9]{2,4}$`)
	phoneDigitsRe = regexp.MustCompile(`^[0-9]{9,10}$`)
)

// ErrorMap maps a json field name to a human-readable message. A field
// absent from the map is valid.
type ErrorMap map[string]string

// Empty reports whether no field failed.
func (m ErrorMap) Empty() bool { return len(m) == 0 }

var validate = New()

// New builds a validator with the custom tags used by the entity request
// structs registered. Field names resolve to their json tag so ErrorMap
// keys match what the client sent.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("course_code", func(fl validator.FieldLevel) bool {
		return courseCodeRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone_digits", func(fl validator.FieldLevel) bool {
		return phoneDigitsRe.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates v against its validate tags and returns per-field
// messages. A nil-length map means the input is valid.
func Struct(v interface{}) ErrorMap {
	errs := ErrorMap{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		field := fe.Field()
		if field == "" {
			field = fe.StructField()
		}
		if _, seen := errs[field]; !seen {
			errs[field] = message(fe)
		}
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "course_code":
		return "must be 2-5 letters followed by 2-4 digits, e.g. CS101"
	case "phone_digits":
		return "must contain 9-10 digits"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	default:
		return fmt.Sprintf("is invalid (%s)", fe.Tag())
	}
}
