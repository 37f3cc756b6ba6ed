package exchange

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// DeleteExchange removes an exchange in any state. Participants, wishlists
// and assignments go with it through cascading foreign keys.
func (s *Service) DeleteExchange(ctx context.Context, exchangeID uuid.UUID) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	ex, err := s.getOwned(ctx, ownerID, exchangeID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.exchanges.Delete(txCtx, exchangeID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &ownerID,
			ExchangeID: exchangeID,
			EntityType: domain.EntityTypeExchange,
			EntityID:   &exchangeID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"status": ex.Status.String()},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "exchange deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("exchange_id", exchangeID.String()),
		slog.String("status", ex.Status.String()),
	)

	return nil
}
