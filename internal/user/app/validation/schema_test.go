package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/dashboard-auth/internal/user/app/validation"
)

var loginSchema = validation.NewSchema(
	validation.Field{
		Name:     "data.email",
		Required: true,
		Rules:    "email",
		Prepare:  []validation.Sanitizer{validation.Trim},
		Sanitize: []validation.Sanitizer{validation.Escape},
	},
	validation.Field{
		Name:     "data.password",
		Required: true,
		Prepare:  []validation.Sanitizer{validation.Trim},
	},
	validation.Field{
		Name:     "data.nickname",
		Rules:    "min=3",
		Prepare:  []validation.Sanitizer{validation.Trim},
		Sanitize: []validation.Sanitizer{validation.Escape},
	},
)

func decode(t *testing.T, body string) map[string]any {
	t.Helper()

	var input map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &input))
	return input
}

func TestSchema_Validate_ReportsFieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []validation.FieldError
	}{
		{
			name: "missing data",
			body: `{}`,
			expected: []validation.FieldError{
				{Field: "data.email", Message: validation.MessageShouldExist},
				{Field: "data.password", Message: validation.MessageShouldExist},
			},
		},
		{
			name: "blank values",
			body: `{"data":{"email":"   ","password":null}}`,
			expected: []validation.FieldError{
				{Field: "data.email", Message: validation.MessageShouldNotEmpty},
				{Field: "data.password", Message: validation.MessageShouldNotEmpty},
			},
		},
		{
			name: "not an email",
			body: `{"data":{"email":"john","password":"secret"}}`,
			expected: []validation.FieldError{
				{Field: "data.email", Message: validation.MessageShouldBeEmail},
			},
		},
		{
			name: "non string value",
			body: `{"data":{"email":{"$gt":""},"password":"secret"}}`,
			expected: []validation.FieldError{
				{Field: "data.email", Message: validation.MessageShouldBeString},
			},
		},
		{
			name: "optional field with failed rule",
			body: `{"data":{"email":"john@example.com","password":"secret","nickname":"jo"}}`,
			expected: []validation.FieldError{
				{Field: "data.nickname", Message: "Is too short."},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := loginSchema.Validate(decode(t, tt.body))
			require.ErrorIs(t, err, validation.ErrInvalidInput)
			require.Nil(t, values)

			var validationErr *validation.Error
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.expected, validationErr.Fields)
		})
	}
}

func TestSchema_Validate_SanitizesValues(t *testing.T) {
	values, err := loginSchema.Validate(decode(t, `{"data":{"email":" john@example.com ","password":"  <pa&ss>  ","nickname":" <b>bob</b> "}}`))
	require.NoError(t, err)

	require.Equal(t, "john@example.com", values.Get("data.email"))
	require.Equal(t, "<pa&ss>", values.Get("data.password"))
	require.Equal(t, "&lt;b&gt;bob&lt;/b&gt;", values.Get("data.nickname"))
}

func TestSchema_Validate_SkipsAbsentOptionalField(t *testing.T) {
	values, err := loginSchema.Validate(decode(t, `{"data":{"email":"john@example.com","password":"secret"}}`))
	require.NoError(t, err)

	_, ok := values["data.nickname"]
	require.False(t, ok)
}

func TestSchema_Validate_MaxBytesCountsEncodedLength(t *testing.T) {
	schema := validation.NewSchema(validation.Field{
		Name:     "data.password",
		Required: true,
		Rules:    "maxbytes=8",
	})

	_, err := schema.Validate(map[string]any{"data": map[string]any{"password": "abcdefgh"}})
	require.NoError(t, err)

	_, err = schema.Validate(map[string]any{"data": map[string]any{"password": "ééééé"}})
	var validationErr *validation.Error
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, []validation.FieldError{{Field: "data.password", Message: "Is too long."}}, validationErr.Fields)
}
