package validation

import (
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MessageShouldExist    = "Should exist."
	MessageShouldNotEmpty = "Should not be empty."
	MessageShouldBeEmail  = "Should be an email."
	MessageShouldBeString = "Should be a string."
	MessageInvalid        = "Is invalid."
)

var ErrInvalidInput = errors.New("invalid input")

var ruleMessages = map[string]string{
	"email": MessageShouldBeEmail,
	"min":   "Is too short.",
	"max":   "Is too long.",

	"maxbytes": "Is too long.",
}

type (
	Sanitizer func(string) string

	// Field describes one input value addressed by a dotted path (data.email).
	// Prepare runs before the checks, Sanitize after them.
	Field struct {
		Name     string
		Required bool
		Rules    string
		Prepare  []Sanitizer
		Sanitize []Sanitizer
	}

	FieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}

	Error struct {
		Fields []FieldError
	}

	// Values holds sanitized field values by field name.
	Values map[string]string

	Schema struct {
		fields   []Field
		validate *validator.Validate
	}
)

var (
	Trim   Sanitizer = strings.TrimSpace
	Escape Sanitizer = html.EscapeString
)

func NewSchema(fields ...Field) Schema {
	validate := validator.New()
	err := validate.RegisterValidation("maxbytes", maxBytes)
	if err != nil {
		panic(fmt.Errorf("register maxbytes rule: %w", err))
	}

	return Schema{
		fields:   fields,
		validate: validate,
	}
}

// maxBytes limits the encoded length of a string, unlike max which counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate evaluates every field once and reports all failures together.
func (s Schema) Validate(input map[string]any) (Values, error) {
	values := make(Values, len(s.fields))
	var fieldErrs []FieldError
	for _, field := range s.fields {
		value, present, err := s.check(field, input)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: field.Name, Message: err.Error()})
			continue
		}
		if present {
			values[field.Name] = value
		}
	}
	if len(fieldErrs) > 0 {
		return nil, &Error{Fields: fieldErrs}
	}

	return values, nil
}

func (s Schema) check(field Field, input map[string]any) (string, bool, error) {
	raw, present := lookup(input, field.Name)
	if !present {
		if field.Required {
			return "", false, errors.New(MessageShouldExist)
		}
		return "", false, nil
	}

	value, ok := stringValue(raw)
	if !ok {
		return "", true, errors.New(MessageShouldBeString)
	}

	value = apply(value, field.Prepare)
	if value == "" {
		if field.Required {
			return "", true, errors.New(MessageShouldNotEmpty)
		}
		return value, true, nil
	}

	if field.Rules != "" {
		err := s.validate.Var(value, field.Rules)
		if err != nil {
			return "", true, errors.New(ruleMessage(err))
		}
	}

	return apply(value, field.Sanitize), true, nil
}

func (v Values) Get(name string) string {
	return v[name]
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field.Field, field.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return ErrInvalidInput
}

func lookup(input map[string]any, path string) (any, bool) {
	var current any = input
	for _, key := range strings.Split(path, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		current, ok = object[key]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

func stringValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case float64, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

func apply(value string, sanitizers []Sanitizer) string {
	for _, sanitize := range sanitizers {
		value = sanitize(value)
	}
	return value
}

func ruleMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return MessageInvalid
	}

	msg, ok := ruleMessages[validationErrs[0].Tag()]
	if !ok {
		return MessageInvalid
	}
	return msg
}
