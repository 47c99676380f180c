package http

import (
	"errors"
	"reflect"
	"strings"

	"foodcourt/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks request bodies against their `validate` tags and
// reports the first failing field by its JSON name.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return errs.NewValueIsRequiredError(fe.Field())
		}
		return errs.NewValueIsInvalidErrorWithCause(fe.Field(), err)
	}
	return errs.NewValueIsInvalidErrorWithCause("request", err)
}
