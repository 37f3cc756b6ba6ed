package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// CreateExchange creates an active exchange owned by the caller. The owner's
// surname plus the magic word must not match another active exchange.
func (s *Service) CreateExchange(ctx context.Context, input CreateExchangeInput) (*domain.Exchange, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get owner: %w", err)
	}

	magicWord := strings.TrimSpace(input.MagicWord)
	joinKey := domain.JoinKey(owner.LastName, magicWord)

	var created *domain.Exchange
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		taken, err := s.exchanges.ExistsActiveJoinKey(txCtx, joinKey, uuid.Nil)
		if err != nil {
			return fmt.Errorf("check join key: %w", err)
		}
		if taken {
			return fmt.Errorf("magic word in use: %w", domain.ErrAlreadyExists)
		}

		now := time.Now().UTC()
		created, err = s.exchanges.Create(txCtx, &domain.Exchange{
			ID:                 uuid.New(),
			OwnerID:            ownerID,
			Name:               strings.TrimSpace(input.Name),
			SpendingLimit:      input.SpendingLimit,
			Currency:           normalizeCurrency(input.Currency),
			MagicWord:          magicWord,
			Status:             domain.ExchangeStatusActive,
			ShowRecipientNames: input.ShowRecipientNames,
			CreatedAt:          now,
			UpdatedAt:          now,
		}, joinKey)
		if err != nil {
			return fmt.Errorf("create exchange: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &ownerID,
			ExchangeID: created.ID,
			EntityType: domain.EntityTypeExchange,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":           created.Name,
				"spending_limit": created.SpendingLimit,
				"currency":       created.Currency,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "exchange created",
		slog.String("owner_id", ownerID.String()),
		slog.String("exchange_id", created.ID.String()),
	)

	return created, nil
}
