package exchange

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/currency"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

const maxNameLength = 100

// CreateExchangeInput holds the parameters for creating an exchange.
type CreateExchangeInput struct {
	Name               string
	SpendingLimit      int
	Currency           string
	MagicWord          string
	ShowRecipientNames bool
}

// Validate checks all fields and collects all errors.
func (i CreateExchangeInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateSpendingLimit(errs, i.SpendingLimit)
	errs = validateCurrency(errs, i.Currency)
	errs = validateMagicWord(errs, i.MagicWord)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettingsInput holds the parameters for changing exchange settings.
// Nil fields are left untouched.
type UpdateSettingsInput struct {
	ExchangeID         uuid.UUID
	Name               *string
	SpendingLimit      *int
	Currency           *string
	MagicWord          *string
	ShowRecipientNames *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.ExchangeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "exchange_id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.SpendingLimit != nil {
		errs = validateSpendingLimit(errs, *i.SpendingLimit)
	}
	if i.Currency != nil {
		errs = validateCurrency(errs, *i.Currency)
	}
	if i.MagicWord != nil {
		errs = validateMagicWord(errs, *i.MagicWord)
	}
	if i.Name == nil && i.SpendingLimit == nil && i.Currency == nil && i.MagicWord == nil && i.ShowRecipientNames == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateSpendingLimit(errs []domain.FieldError, limit int) []domain.FieldError {
	if limit <= 0 {
		return append(errs, domain.FieldError{Field: "spending_limit", Message: "must be positive"})
	}
	if limit%domain.SpendingLimitStep != 0 {
		return append(errs, domain.FieldError{Field: "spending_limit", Message: "must be a multiple of 5"})
	}
	return errs
}

func validateCurrency(errs []domain.FieldError, code string) []domain.FieldError {
	if _, err := currency.ParseISO(strings.TrimSpace(code)); err != nil {
		return append(errs, domain.FieldError{Field: "currency", Message: "unknown ISO 4217 code"})
	}
	return errs
}

func validateMagicWord(errs []domain.FieldError, word string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(word)) < domain.MinMagicWordLength {
		return append(errs, domain.FieldError{Field: "magic_word", Message: "min 3 characters"})
	}
	return errs
}

// normalizeCurrency returns the canonical upper-case ISO code.
// The code must already have passed validateCurrency.
func normalizeCurrency(code string) string {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return strings.ToUpper(strings.TrimSpace(code))
	}
	return unit.String()
}
