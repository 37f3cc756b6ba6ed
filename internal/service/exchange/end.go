package exchange

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// EndExchange moves a started exchange to ended, revealing who gave to whom.
func (s *Service) EndExchange(ctx context.Context, exchangeID uuid.UUID) (*domain.Exchange, error) {
	ctx, span := s.tracer.Start(ctx, "exchange.end")
	defer span.End()
	span.SetAttributes(attribute.String("exchange.id", exchangeID.String()))

	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var ended *domain.Exchange
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ex, err := s.exchanges.GetByIDForUpdate(txCtx, exchangeID)
		if err != nil {
			return err
		}
		if !ex.IsOwnedBy(ownerID) {
			return domain.ErrUnauthorized
		}
		if !ex.Status.CanTransitionTo(domain.ExchangeStatusEnded) {
			return domain.NewStateError("end exchange", ex.Status)
		}

		now := time.Now().UTC()
		flipped, err := s.exchanges.TransitionStatus(txCtx, exchangeID, domain.ExchangeStatusStarted, domain.ExchangeStatusEnded, now)
		if err != nil {
			return err
		}
		if !flipped {
			return domain.NewStateError("end exchange", domain.ExchangeStatusEnded)
		}

		ex.Status = domain.ExchangeStatusEnded
		ex.EndedAt = &now
		ex.UpdatedAt = now
		ended = ex

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &ownerID,
			ExchangeID: exchangeID,
			EntityType: domain.EntityTypeExchange,
			EntityID:   &exchangeID,
			Action:     domain.AuditActionEnd,
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.log.InfoContext(ctx, "exchange ended",
		slog.String("owner_id", ownerID.String()),
		slog.String("exchange_id", exchangeID.String()),
	)

	return ended, nil
}
