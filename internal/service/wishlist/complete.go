package wishlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// SetCompleted lets a giver mark an item on their receiver's wishlist as
// bought, or clear the mark. Only the giver matched to the item's owner may
// do so, and only after the exchange has started.
func (s *Service) SetCompleted(ctx context.Context, input SetCompletedInput) (*domain.WishlistItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	giver, err := s.participants.GetByID(ctx, input.GiverID)
	if err != nil {
		return nil, err
	}
	if err := authorize(giver, input.VisitorToken); err != nil {
		return nil, err
	}

	ex, err := s.exchanges.GetByID(ctx, giver.ExchangeID)
	if err != nil {
		return nil, err
	}
	if !ex.Status.IsMatched() {
		return nil, domain.ErrNotStarted
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	a, err := s.assignments.GetByReceiver(ctx, ex.ID, item.ParticipantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	if a.GiverID != giver.ID {
		return nil, domain.ErrForbidden
	}

	by, at := completionMark(input, time.Now().UTC())

	var updated *domain.WishlistItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err = s.items.SetCompleted(txCtx, item.ID, by, at)
		if err != nil {
			return fmt.Errorf("set completed: %w", err)
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			ExchangeID: ex.ID,
			EntityType: domain.EntityTypeWishlistItem,
			EntityID:   &item.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"completed": input.Completed},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "wishlist item completion changed",
		slog.String("exchange_id", ex.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.Bool("completed", input.Completed),
	)

	return updated, nil
}

// completionMark returns the completed_by and completed_at values to store.
func completionMark(input SetCompletedInput, now time.Time) (*uuid.UUID, *time.Time) {
	if !input.Completed {
		return nil, nil
	}
	giver := input.GiverID
	return &giver, &now
}
