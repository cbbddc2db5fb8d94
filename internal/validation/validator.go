// Package validation checks decoded request payloads with go-playground/validator
// and reports failures as a map of JSON field name to messages.
//
// Request structs use pointer fields so that a missing field (nil) and a blank
// one ("") can be told apart:
//
//	type contactRequest struct {
//	    Name  *string `json:"name" validate:"required,notblank,max=200"`
//	    Phone *string `json:"phone" validate:"omitempty,max=20"`
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Messages returned for each failing rule.
const (
	MsgRequired      = "This field is required."
	MsgBlank         = "This field may not be blank."
	MsgEmail         = "Enter a valid email address."
	MsgURL           = "Enter a valid URL."
	MsgIncorrectType = "Incorrect type."
	MsgInvalid       = "Invalid value."
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldErrors maps a JSON field name to the messages describing why it was rejected.
type FieldErrors map[string][]string

// Add appends msg to the messages for field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Chooser is implemented by closed enumerations such as model.ProjectType.
type Chooser interface {
	Valid() bool
}

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		// Registration only fails for an empty tag or nil func.
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("choice", isChoice)
		validate = v
	})
	return validate
}

func isChoice(fl validator.FieldLevel) bool {
	c, ok := fl.Field().Interface().(Chooser)
	if !ok {
		return false
	}
	return c.Valid()
}

// Validate runs the struct's validate tags. It returns nil, FieldErrors, or
// a wrapped error when s cannot be validated at all.
func Validate(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "notblank":
		return MsgBlank
	case "email":
		return MsgEmail
	case "url", "http_url":
		return MsgURL
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "choice":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	default:
		return MsgInvalid
	}
}

// NilIfBlank returns nil for a nil or whitespace-only string, and a pointer
// to the trimmed value otherwise. Optional text fields go through it before
// validation so that "" is treated as absent.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// Trim returns a pointer to s with surrounding whitespace removed, keeping
// nil as nil. Required text fields use it so that "  " fails notblank.
func Trim(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
