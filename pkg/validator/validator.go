package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Dated is implemented by calendar types that wrap a time.Time. Registered
// dated types validate like a time.Time and count as empty when zero.
type Dated interface {
	AsTime() time.Time
}

type CustomValidator struct {
	validator *validator.Validate
	now       func() time.Time
}

// NewValidator panics when a custom rule cannot be registered.
func NewValidator(datedTypes ...Dated) *CustomValidator {
	cv := &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
		now:       time.Now,
	}

	cv.validator.RegisterTagNameFunc(fieldLabel)
	if err := cv.validator.RegisterValidation("notfuture", cv.notFuture); err != nil {
		panic(fmt.Sprintf("validator: register notfuture: %v", err))
	}

	if len(datedTypes) > 0 {
		samples := make([]interface{}, len(datedTypes))
		for i, t := range datedTypes {
			samples[i] = t
		}
		cv.validator.RegisterCustomTypeFunc(datedValue, samples...)
	}

	return cv
}

// fieldLabel names a field by its `label` tag, then its json name.
func fieldLabel(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

func datedValue(field reflect.Value) interface{} {
	dated, ok := field.Interface().(Dated)
	if !ok {
		return nil
	}
	t := dated.AsTime()
	if t.IsZero() {
		return nil
	}
	return t
}

func (cv *CustomValidator) notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return true
	}
	y, m, d := cv.now().UTC().Date()
	return !t.After(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors renders one message per failed rule, in field order.
func (cv *CustomValidator) FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" cannot be null or empty")
		case "max":
			messages = append(messages, fmt.Sprintf("%s cannot be longer than %s characters", field, e.Param()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s cannot be shorter than %s characters", field, e.Param()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s cannot be less than %s", field, e.Param()))
		case "lte":
			messages = append(messages, fmt.Sprintf("%s cannot be greater than %s", field, e.Param()))
		case "notfuture":
			messages = append(messages, field+" cannot be in the future")
		default:
			messages = append(messages, field+" is not a valid value")
		}
	}

	return messages
}
