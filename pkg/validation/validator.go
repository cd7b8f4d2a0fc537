package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
)

// Init configures the global validator used by Gin's binding to report
// JSON tag names instead of Go field names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ToFieldErrors converts binding failures into the field/message list the
// API returns. Validation errors are collected exhaustively, never
// fail-fast.
func ToFieldErrors(err error) []apperrors.FieldError {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []apperrors.FieldError{{Field: "payload", Message: "invalid json"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, apperrors.FieldError{Field: fe.Field(), Message: messageFor(fe)})
		}
		return out
	}

	return []apperrors.FieldError{{Field: "payload", Message: "invalid payload"}}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters long"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters long"
		}
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		if fe.Param() != "" {
			return "failed validation '" + fe.Tag() + "=" + fe.Param() + "'"
		}
		return "failed validation '" + fe.Tag() + "'"
	}
}
