package http

import (
	"github.com/klwxsrx/dashboard-auth/internal/user/app/validation"
)

const (
	fieldEmail     = "data.email"
	fieldPassword  = "data.password"
	fieldFirstName = "data.firstName"
	fieldLastName  = "data.lastName"

	maxPasswordBytes = "72"
)

var (
	emailField = validation.Field{
		Name:     fieldEmail,
		Required: true,
		Rules:    "email",
		Prepare:  []validation.Sanitizer{validation.Trim},
		Sanitize: []validation.Sanitizer{validation.Escape},
	}
	passwordField = validation.Field{
		Name:     fieldPassword,
		Required: true,
		Rules:    "maxbytes=" + maxPasswordBytes,
		Prepare:  []validation.Sanitizer{validation.Trim},
	}

	loginSchema = validation.NewSchema(
		emailField,
		passwordField,
	)

	registerSchema = validation.NewSchema(
		emailField,
		passwordField,
		nameField(fieldFirstName),
		nameField(fieldLastName),
	)

	refreshTokenSchema = validation.NewSchema(
		validation.Field{
			Name:    fieldPassword,
			Rules:   "maxbytes=" + maxPasswordBytes,
			Prepare: []validation.Sanitizer{validation.Trim},
		},
	)
)

func nameField(name string) validation.Field {
	return validation.Field{
		Name:     name,
		Required: true,
		Prepare:  []validation.Sanitizer{validation.Trim},
		Sanitize: []validation.Sanitizer{validation.Escape},
	}
}
