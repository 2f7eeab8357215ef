package auth

import (
	"github.com/google/uuid"
)

type Principal struct {
	UserID uuid.UUID
	Email  string
}
