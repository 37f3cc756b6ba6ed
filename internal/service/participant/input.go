package participant

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

const (
	maxNameLength  = 50
	maxTokenLength = 128
)

// FindExchangeInput identifies an active exchange the way invitees know it:
// the organizer's surname and the magic word.
type FindExchangeInput struct {
	OwnerLastName string
	MagicWord     string
}

func (i FindExchangeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.OwnerLastName) == "" {
		errs = append(errs, domain.FieldError{Field: "owner_last_name", Message: "required"})
	}
	if strings.TrimSpace(i.MagicWord) == "" {
		errs = append(errs, domain.FieldError{Field: "magic_word", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds the parameters for joining an exchange.
type RegisterInput struct {
	ExchangeID   uuid.UUID
	FirstName    string
	LastName     string
	VisitorToken string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.ExchangeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "exchange_id", Message: "required"})
	}

	first := strings.TrimSpace(i.FirstName)
	if first == "" {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "required"})
	} else if utf8.RuneCountInString(first) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "first_name", Message: "max 50 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.LastName)) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "max 50 characters"})
	}
	if len(i.VisitorToken) > maxTokenLength {
		errs = append(errs, domain.FieldError{Field: "visitor_token", Message: "max 128 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// JoinResult reports who the caller is in the exchange and whether they
// were already registered.
type JoinResult struct {
	Participant *domain.Participant
	Exchange    domain.PublicExchange
	Returning   bool
}
