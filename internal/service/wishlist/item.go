package wishlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// ListOwn returns the caller's own wishlist in creation order.
func (s *Service) ListOwn(ctx context.Context, participantID uuid.UUID, token string) ([]domain.WishlistItem, error) {
	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if err := authorize(p, token); err != nil {
		return nil, err
	}

	items, err := s.items.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}

// AddItem appends an item to the caller's wishlist. The list is editable only
// while the exchange is active and holds at most the configured number of
// items. The first link in the description is kept as the item URL.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.WishlistItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.WishlistItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Row lock on the owner serializes concurrent adds against the cap.
		p, err := s.participants.GetByIDForUpdate(txCtx, input.ParticipantID)
		if err != nil {
			return err
		}
		if err := authorize(p, input.VisitorToken); err != nil {
			return err
		}
		if err := s.requireEditable(txCtx, p.ExchangeID, "add wishlist item"); err != nil {
			return err
		}

		count, err := s.items.CountByParticipant(txCtx, p.ID)
		if err != nil {
			return fmt.Errorf("count wishlist: %w", err)
		}
		if count >= s.maxItems {
			return domain.NewValidationError("wishlist", fmt.Sprintf("max %d items", s.maxItems))
		}

		desc := strings.TrimSpace(input.Description)
		created, err = s.items.Create(txCtx, &domain.WishlistItem{
			ID:            uuid.New(),
			ParticipantID: p.ID,
			Description:   desc,
			URL:           ExtractURL(desc),
			CreatedAt:     time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create wishlist item: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ExchangeID: p.ExchangeID,
			EntityType: domain.EntityTypeWishlistItem,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"participant_id": p.ID.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "wishlist item added",
		slog.String("participant_id", created.ParticipantID.String()),
		slog.String("item_id", created.ID.String()),
	)

	return created, nil
}

// DeleteItem removes one of the caller's items while the exchange is active.
func (s *Service) DeleteItem(ctx context.Context, participantID uuid.UUID, token string, itemID uuid.UUID) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.participants.GetByID(txCtx, participantID)
		if err != nil {
			return err
		}
		if err := authorize(p, token); err != nil {
			return err
		}
		if err := s.requireEditable(txCtx, p.ExchangeID, "delete wishlist item"); err != nil {
			return err
		}

		if err := s.items.Delete(txCtx, participantID, itemID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			ExchangeID: p.ExchangeID,
			EntityType: domain.EntityTypeWishlistItem,
			EntityID:   &itemID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"participant_id": participantID.String()},
		})
	})
}

// requireEditable fails unless the exchange is still active. It must run
// inside the edit's transaction: the share lock keeps StartExchange from
// flipping the status until the edit commits.
func (s *Service) requireEditable(ctx context.Context, exchangeID uuid.UUID, op string) error {
	ex, err := s.exchanges.GetByIDForShare(ctx, exchangeID)
	if err != nil {
		return err
	}
	if ex.Status != domain.ExchangeStatusActive {
		return domain.NewStateError(op, ex.Status)
	}
	return nil
}
