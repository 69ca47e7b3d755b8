package utils

import (
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	appErrors "github.com/clothingmenvy-dot/menvy-client/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

var strictPolicy = bluemonday.StrictPolicy()

// NewValidator returns a validator that reports fields by their JSON names and
// compares decimal amounts numerically.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(r.Body)

	if err != nil {
		slog.Error("Failed to read request body",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
		return errors.New("request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		slog.Warn("Failed to parse request JSON",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ValidateStruct runs the validator tags of data and folds any failure into a
// single ValidationError listing every offending field.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return appErrors.InternalError("Unexpected validation error").WithError(err)
	}

	messages := ValidationMessages(validationErrs)

	return appErrors.ValidationError(messages[0]).
		WithDetail(strings.Join(messages, "; ")).
		WithError(validationErrs)
}

func ValidationMessages(errs validator.ValidationErrors) []string {
	var errMsgs []string

	for _, err := range errs {

		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", err.Field())
		case "email":
			message = fmt.Sprintf("Field %s must be a valid email address", err.Field())
		case "min":
			message = fmt.Sprintf("Field %s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("Field %s must be at most %s characters", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("Field %s must be greater than %s", err.Field(), err.Param())
		case "gte":
			message = fmt.Sprintf("Field %s must be at least %s", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("Field %s must be one of: %s", err.Field(), err.Param())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", err.Field(), err.Tag(), err.Param())
		}

		errMsgs = append(errMsgs, message)
	}

	return errMsgs
}

const maxSanitizePasses = 8

// Sanitize strips all markup from operator-typed text and returns it decoded,
// so names like "Home & Garden" survive unchanged. Decoding can expose markup
// that was sent escaped, so the text is cleaned again until it stops changing.
func Sanitize(s string) string {
	out := s
	for range maxSanitizePasses {
		next := html.UnescapeString(strictPolicy.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}

	// still unwrapping layers of escaping; keep the escaped form
	return strings.TrimSpace(strictPolicy.Sanitize(out))
}
