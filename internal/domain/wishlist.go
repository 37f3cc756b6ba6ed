package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxWishlistItems is the per-participant wishlist cap.
const MaxWishlistItems = 10

// WishlistItem is one entry of a participant's wishlist.
type WishlistItem struct {
	ID            uuid.UUID
	ParticipantID uuid.UUID
	Description   string
	URL           *string
	Preview       LinkPreview
	Completed     bool
	CompletedBy   *uuid.UUID
	CompletedAt   *time.Time
	CreatedAt     time.Time
}

// LinkPreview is metadata about the item's URL, filled by an external fetcher.
type LinkPreview struct {
	ImageURL    *string
	Title       *string
	Description *string
}
