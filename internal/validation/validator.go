// Package validation provides the custom validator tags used for deal format checks.
package validation

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// New returns a validator with the custom deal tags registered.
func New() *validator.Validate {
	v := validator.New()
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// Initialize registers the custom tags on gin's binding engine.
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := Register(v); err != nil {
			panic(err)
		}
	}
}

// Register adds the "currencycode" and "trimmed" tags to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("currencycode", validateCurrencyCode); err != nil {
		return err
	}
	return v.RegisterValidation("trimmed", validateTrimmed)
}

// validateCurrencyCode checks for exactly three uppercase ASCII letters
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}

// validateTrimmed rejects values with leading or trailing whitespace
func validateTrimmed(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) == value
}
