package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinParticipants is the smallest group that can be paired.
	MinParticipants = 2
	// MinMagicWordLength is the minimum length of a join secret.
	MinMagicWordLength = 3
	// SpendingLimitStep is the granularity of spending limits.
	SpendingLimitStep = 5
)

// Exchange is a single gift-pairing event owned by one organizer.
type Exchange struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Name               string
	SpendingLimit      int
	Currency           string
	MagicWord          string
	Status             ExchangeStatus
	ShowRecipientNames bool
	StartedAt          *time.Time
	EndedAt            *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsOwnedBy reports whether userID is the organizer of the exchange.
func (e *Exchange) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && e.OwnerID == userID
}

// Public strips organizer-only fields (magic word, owner) for participants.
func (e *Exchange) Public() PublicExchange {
	return PublicExchange{
		ID:                 e.ID,
		Name:               e.Name,
		SpendingLimit:      e.SpendingLimit,
		Currency:           e.Currency,
		Status:             e.Status,
		ShowRecipientNames: e.ShowRecipientNames,
	}
}

// PublicExchange is the exchange information any participant may read.
type PublicExchange struct {
	ID                 uuid.UUID
	Name               string
	SpendingLimit      int
	Currency           string
	Status             ExchangeStatus
	ShowRecipientNames bool
}

// ExchangeUpdateParams holds optional fields for a settings update.
// A nil field is left unchanged.
type ExchangeUpdateParams struct {
	Name               *string
	SpendingLimit      *int
	Currency           *string
	MagicWord          *string
	JoinKey            *string
	ShowRecipientNames *bool
}
