package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	global *validator.Validate

	phoneRegex      = regexp.MustCompile(`^\(\d{2}\)\d{5}-\d{4}$`)
	nationalIDRegex = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

func init() {
	SetValidator(New())
}

// New builds the validator with the custom tags used by the entity model:
// phone_br for the (99)99999-9999 contact format and national_id for the
// 999.999.999-99 document format. Field names in messages come from the
// json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone_br", validatePhone)
	_ = v.RegisterValidation("national_id", validateNationalID)
	return v
}

// SetValidator replaces the package-level validator. Intended for tests.
func SetValidator(v *validator.Validate) {
	global = v
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateNationalID(fl validator.FieldLevel) bool {
	return nationalIDRegex.MatchString(fl.Field().String())
}

// Check validates item against its declared field rules and returns one
// message per violated rule. A nil result means the item is valid.
func Check(item any) []string {
	err := global.Struct(item)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return field + " must have at most " + fe.Param() + " characters"
		}
		return field + " must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must have at least " + fe.Param() + " characters"
		}
		return field + " must be at least " + fe.Param()
	case "email":
		return field + " must be a valid email address"
	case "phone_br":
		return field + " must match the format (99)99999-9999"
	case "national_id":
		return field + " must match the format 999.999.999-99"
	default:
		return field + " is invalid"
	}
}
