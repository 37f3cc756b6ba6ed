package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment is a directed giver -> receiver pairing produced once per exchange.
type Assignment struct {
	ID         uuid.UUID
	ExchangeID uuid.UUID
	GiverID    uuid.UUID
	ReceiverID uuid.UUID
	CreatedAt  time.Time
}

// AssignmentWithNames is an Assignment with both display names joined in.
type AssignmentWithNames struct {
	Assignment
	GiverName    string
	ReceiverName string
}
