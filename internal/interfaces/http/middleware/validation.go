package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kdirani/farms/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// SetupValidator configures gin's validator with JSON field names and the
// custom tags used by request DTOs
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	RegisterValidations(v)
}

// RegisterValidations installs the custom tags on v
func RegisterValidations(v *validator.Validate) {
	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("decimal_gte0", validateDecimalGTE0)
	_ = v.RegisterValidation("invoice_type", validateInvoiceType)
}

func validateDecimalGTE0(fl validator.FieldLevel) bool {
	switch val := fl.Field().Interface().(type) {
	case string:
		d, err := decimal.NewFromString(val)
		return err == nil && !d.IsNegative()
	case decimal.Decimal:
		return !val.IsNegative()
	default:
		return false
	}
}

func validateInvoiceType(fl validator.FieldLevel) bool {
	return invoice.Type(fl.Field().String()).IsValid()
}

// ValidationMessage turns a binding error into one readable line
func ValidationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request: " + err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, fieldPath(e)+": "+getValidationMessage(e))
	}
	return strings.Join(parts, "; ")
}

// fieldPath drops the struct name from the namespace, e.g. items[0].quantity
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "datetime":
		return "Must be a date in " + e.Param() + " layout"
	case "decimal_gte0":
		return "Must be zero or greater"
	case "invoice_type":
		return "Must be buy or sell"
	default:
		return "Invalid value"
	}
}
