package validator

import (
	"errors"
	"strings"

	"tripbook/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"notblank": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"email":    "{field} must be a valid email address",
	"day":      "{field} must be a date formatted as YYYY-MM-DD",
	"clock":    "{field} must be a clock time formatted as HH:MM",
	"dive":     "{field} contains an invalid entry",
	"len":      "{field} must be exactly {param} characters long",
	"alpha":    "{field} must contain letters only",
	"ltefield": "{field} must not exceed {param}",
}

// Invalid is a bad request naming every failing field, keyed by its json path.
type Invalid struct {
	err    error
	fields map[string]string
}

func (e *Invalid) Error() string {
	return e.err.Error()
}

func (e *Invalid) Unwrap() error {
	return e.err
}

func (e *Invalid) Details() map[string]any {
	return map[string]any{"fields": e.fields}
}

func describe(fieldErr val.FieldError) string {
	tmpl, ok := templates[fieldErr.Tag()]
	if !ok {
		return fieldErr.Error()
	}

	return strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl)
}

// path drops the root struct name from the namespace, so "Request.contact.email" becomes
// "contact.email".
func path(fieldErr val.FieldError) string {
	ns := fieldErr.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func message(err error) string {
	var valErrors val.ValidationErrors
	if errors.As(err, &valErrors) && len(valErrors) > 0 {
		return describe(valErrors[0])
	}

	return err.Error()
}

// invalid turns a validator error into a 400. The message is the first failure so that
// clients showing a single line still get a useful one.
func invalid(err error) error {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return failure.BadRequestFromString(err.Error())
	}

	fields := make(map[string]string, len(valErrors))
	for _, fieldErr := range valErrors {
		if _, seen := fields[path(fieldErr)]; !seen {
			fields[path(fieldErr)] = describe(fieldErr)
		}
	}

	return &Invalid{
		err:    failure.BadRequestFromString(message(valErrors)),
		fields: fields,
	}
}
