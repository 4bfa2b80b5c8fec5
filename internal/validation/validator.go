package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"budget-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.@+-]+$`)

// Validator wraps go-playground/validator with the domain rules the API
// relies on. Field names in validation errors use JSON tags so responses
// match the wire format.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// entry_type restricts a field to the two ledger entry kinds.
	_ = v.RegisterValidation("entry_type", func(fl validator.FieldLevel) bool {
		return models.IsValidEntryType(fl.Field().String())
	})

	// username allows letters, digits and @ . + - _ like the account rules.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	// money requires a positive amount with at most two decimal places.
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		amount, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return amount.IsPositive() && amount.Equal(amount.Round(2))
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens validator errors into a field -> message map for
// error responses. Returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "entry_type":
		return fmt.Sprintf("Must be %q or %q", models.EntryTypeIncome, models.EntryTypeExpense)
	case "username":
		return "Only letters, digits and @/./+/-/_ are allowed"
	case "money":
		return "Must be a positive amount with at most two decimal places"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("Must be a date in %s format", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
