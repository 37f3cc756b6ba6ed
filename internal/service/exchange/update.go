package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// UpdateSettings changes exchange settings. Settings are frozen once the
// exchange has started.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*domain.Exchange, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Exchange
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ex, err := s.exchanges.GetByIDForUpdate(txCtx, input.ExchangeID)
		if err != nil {
			return err
		}
		if !ex.IsOwnedBy(ownerID) {
			return domain.ErrUnauthorized
		}
		// Settings freeze once the exchange can no longer be started.
		if !ex.Status.CanTransitionTo(domain.ExchangeStatusStarted) {
			return domain.NewStateError("update settings", ex.Status)
		}

		params := domain.ExchangeUpdateParams{
			SpendingLimit:      input.SpendingLimit,
			ShowRecipientNames: input.ShowRecipientNames,
		}
		changes := map[string]any{}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			params.Name = &name
			changes["name"] = name
		}
		if input.SpendingLimit != nil {
			changes["spending_limit"] = *input.SpendingLimit
		}
		if input.Currency != nil {
			code := normalizeCurrency(*input.Currency)
			params.Currency = &code
			changes["currency"] = code
		}
		if input.ShowRecipientNames != nil {
			changes["show_recipient_names"] = *input.ShowRecipientNames
		}
		if input.MagicWord != nil {
			owner, err := s.users.GetByID(txCtx, ownerID)
			if err != nil {
				return fmt.Errorf("get owner: %w", err)
			}
			word := strings.TrimSpace(*input.MagicWord)
			key := domain.JoinKey(owner.LastName, word)

			taken, err := s.exchanges.ExistsActiveJoinKey(txCtx, key, ex.ID)
			if err != nil {
				return fmt.Errorf("check join key: %w", err)
			}
			if taken {
				return fmt.Errorf("magic word in use: %w", domain.ErrAlreadyExists)
			}
			params.MagicWord = &word
			params.JoinKey = &key
			changes["magic_word"] = "changed"
		}

		updated, err = s.exchanges.Update(txCtx, ex.ID, params, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("update exchange: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &ownerID,
			ExchangeID: ex.ID,
			EntityType: domain.EntityTypeExchange,
			EntityID:   &ex.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "exchange settings updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("exchange_id", updated.ID.String()),
	)

	return updated, nil
}
