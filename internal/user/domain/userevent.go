package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventUserRegistered struct {
	EventID    uuid.UUID `json:"eventID"`
	UserID     UserID    `json:"userID"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (e EventUserRegistered) ID() uuid.UUID {
	return e.EventID
}

func (e EventUserRegistered) Type() string {
	return fmt.Sprintf("%s.registered", AggregateNameUser)
}

func (e EventUserRegistered) Key() string {
	return e.UserID.String()
}

// Topic returns the broker topic for the user aggregate events.
func Topic() string {
	return fmt.Sprintf("persistent://public/default/%s.domain-event.%s", Name, AggregateNameUser)
}
