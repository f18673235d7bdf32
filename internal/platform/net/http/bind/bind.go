// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "falnama/internal/platform/errors"
	"falnama/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidatorSvc bundles the shared validator with its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *ValidatorSvc
)

// Get returns the process wide validator, building it on first use.
// Validation messages use json tag names and short english phrasing.
func Get() *ValidatorSvc {
	once.Do(func() {
		locale := en.New()
		trans, _ := ut.New(locale, locale).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonTagName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		for tag, tmpl := range map[string]string{
			"min": "{0} must be at least {1}",
			"max": "{0} must be at most {1}",
		} {
			overrideTranslation(v, trans, tag, tmpl)
		}

		svc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return svc
}

// RegisterValidation registers a custom tag on the shared validator
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

func jsonTagName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "" || tag == "-" {
		return fld.Name
	}
	if i := strings.Index(tag, ","); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

func overrideTranslation(v *validator.Validate, trans ut.Translator, tag, tmpl string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, tmpl, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// JSONOptions controls ParseJSON behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

// ParseJSON decodes the body into T, validates it and maps failures
// to the service error taxonomy
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	body := io.Reader(r.Body)
	if !o.AllowEmptyBody {
		peek := make([]byte, 1)
		n, _ := r.Body.Read(peek)
		if n == 0 {
			// bodyless requests are fine on safe methods
			switch r.Method {
			case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
				return zero, nil
			}
			return zero, perr.JSONErrf("empty body")
		}
		body = io.MultiReader(bytes.NewReader(peek[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := firstViolation(err)
		return zero, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
	}
	return dst, nil
}

// firstViolation reports the first failing field and its translated message
func firstViolation(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}
