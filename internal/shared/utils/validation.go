package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ticketdesk/internal/shared/errors"
)

// JSONTagName makes validation errors report JSON field names.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// BindingError converts an error returned by gin's ShouldBind* into a
// validation AppError with a user-friendly message.
func BindingError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, getFieldErrorMessage(fieldError))
		}
		return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.Is(err, io.EOF):
		return errors.NewValidationError("Request body is required")
	case stderrors.As(err, &syntaxErr):
		return errors.NewValidationError("Malformed JSON request body")
	case stderrors.As(err, &typeErr):
		return errors.NewValidationError("Invalid request body", fmt.Sprintf("%s has the wrong type", typeErr.Field))
	}

	return errors.NewValidationError("Invalid request body", err.Error())
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "ticket_status":
		return fmt.Sprintf("%s must be one of [OPEN IN_PROGRESS RESOLVED CLOSED]", field)
	case "ticket_priority":
		return fmt.Sprintf("%s must be one of [LOW MEDIUM HIGH CRITICAL]", field)
	case "ticket_severity":
		return fmt.Sprintf("%s must be one of [MINOR MAJOR BLOCKER]", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
