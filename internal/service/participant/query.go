package participant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// ResolveVisitor returns the participant currently holding token.
func (s *Service) ResolveVisitor(ctx context.Context, token string) (*domain.Participant, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.participants.GetByVisitorToken(ctx, token)
}

// ListParticipants returns an exchange's participants in join order.
// Owner only.
func (s *Service) ListParticipants(ctx context.Context, exchangeID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.ownedExchange(ctx, exchangeID); err != nil {
		return nil, err
	}

	list, err := s.participants.ListByExchange(ctx, exchangeID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return list, nil
}

// RemoveParticipant deletes a participant in any exchange status. Their
// wishlist and any assignment rows that reference them go too.
func (s *Service) RemoveParticipant(ctx context.Context, exchangeID, participantID uuid.UUID) error {
	ex, err := s.ownedExchange(ctx, exchangeID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.participants.Delete(txCtx, exchangeID, participantID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &ex.OwnerID,
			ExchangeID: exchangeID,
			EntityType: domain.EntityTypeParticipant,
			EntityID:   &participantID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"status": ex.Status.String()},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "participant removed",
		slog.String("owner_id", ex.OwnerID.String()),
		slog.String("exchange_id", exchangeID.String()),
		slog.String("participant_id", participantID.String()),
	)

	return nil
}

func (s *Service) ownedExchange(ctx context.Context, exchangeID uuid.UUID) (*domain.Exchange, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ex, err := s.exchanges.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if !ex.IsOwnedBy(ownerID) {
		return nil, domain.ErrUnauthorized
	}
	return ex, nil
}
