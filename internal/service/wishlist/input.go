package wishlist

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"mvdan.cc/xurls/v2"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

const maxDescriptionLength = 500

var urlPattern = xurls.Strict()

// AddItemInput holds the parameters for adding a wishlist item.
type AddItemInput struct {
	ParticipantID uuid.UUID
	VisitorToken  string
	Description   string
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ParticipantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "participant_id", Message: "required"})
	}

	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if utf8.RuneCountInString(desc) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetCompletedInput marks or unmarks a receiver's item as bought by the giver.
type SetCompletedInput struct {
	GiverID      uuid.UUID
	VisitorToken string
	ItemID       uuid.UUID
	Completed    bool
}

// Validate checks all fields and collects all errors.
func (i SetCompletedInput) Validate() error {
	var errs []domain.FieldError

	if i.GiverID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "participant_id", Message: "required"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExtractURL returns the first http(s) link in text, or nil. Links with
// other schemes are skipped.
func ExtractURL(text string) *string {
	for _, m := range urlPattern.FindAllString(text, -1) {
		u, err := url.Parse(m)
		if err != nil || u.Host == "" {
			continue
		}
		if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
			continue
		}
		return &m
	}
	return nil
}
