package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Participant is a person who joined an exchange to give and receive a gift.
type Participant struct {
	ID           uuid.UUID
	ExchangeID   uuid.UUID
	FirstName    string
	LastName     string
	VisitorToken *string
	CreatedAt    time.Time
}

// DisplayName joins first and last name, omitting an empty last name.
func (p *Participant) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// NameKey is the normalized form used for case-insensitive name lookup.
func (p *Participant) NameKey() string {
	return ParticipantNameKey(p.FirstName, p.LastName)
}

// TokenMatches implements the return-visit ownership rule: a mismatch only
// counts when both the stored participant and the caller carry a token.
func (p *Participant) TokenMatches(token string) bool {
	if p.VisitorToken == nil || *p.VisitorToken == "" || token == "" {
		return true
	}
	return *p.VisitorToken == token
}
