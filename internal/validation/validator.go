package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"subtrack/internal/forecast"

	"github.com/go-playground/validator/v10"
)

const maxCategoryRunes = 50

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("billing_cycle", validateBillingCycle)
	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("category_name", validateCategoryName)
	_ = v.RegisterValidation("single_line", validateSingleLine)

	// error fields are reported by their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateBillingCycle accepts monthly, yearly and weekly in any case
func validateBillingCycle(fl validator.FieldLevel) bool {
	return forecast.IsValidBillingCycle(fl.Field().String())
}

// validateCurrencyCode accepts a 3-letter upper-case ISO 4217 style code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(fl.Field().String())
}

func validateCategoryName(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if strings.TrimSpace(category) == "" {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(category)) <= maxCategoryRunes
}

// validateSingleLine rejects control characters such as CR, LF and NUL
func validateSingleLine(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}
