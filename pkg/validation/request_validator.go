package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// SupportedLanguages lists the language codes every service accepts, in
// the order the language select shows them.
var SupportedLanguages = []string{"en", "es", "fr", "de", "it", "pt"}

const invalidLanguageMessage = "Invalid language code"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	langPattern = regexp.MustCompile(`^[a-zA-Z]{2}$`)

	requiredMessages = map[string]string{
		"content":         "Content is required",
		"text":            "Text is required",
		"target_tone":     "Target tone is required",
		"original_text":   "Original text is required",
		"comparison_text": "Comparison text is required",
	}
)

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

// Error implements the error interface with a stable field order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe[field]))
	}
	return strings.Join(parts, "; ")
}

// IsSupportedLanguage reports whether code is one of SupportedLanguages,
// ignoring case.
func IsSupportedLanguage(code string) bool {
	if !langPattern.MatchString(code) {
		return false
	}
	lower := strings.ToLower(code)
	for _, supported := range SupportedLanguages {
		if lower == supported {
			return true
		}
	}
	return false
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their form name so messages line up with inputs.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
			return IsSupportedLanguage(fl.Field().String())
		})

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		validateInst = v
	})

	return validateInst
}

// ValidateRequest runs the struct rules of a service request and returns one
// message per failing field, or nil when the request is valid.
func ValidateRequest(req interface{}) FieldErrors {
	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return FieldErrors{"request": err.Error()}
	}

	out := make(FieldErrors, len(ves))
	for _, fe := range ves {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = messageFor(field, fe.Tag())
	}
	return out
}

func messageFor(field, tag string) string {
	if field == "lang" {
		return invalidLanguageMessage
	}
	if msg, ok := requiredMessages[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed validation for tag '%s'", field, tag)
}
