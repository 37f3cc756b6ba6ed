package participant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// FindExchange resolves an active exchange from the organizer's surname and
// the magic word, both compared case-insensitively.
func (s *Service) FindExchange(ctx context.Context, input FindExchangeInput) (*domain.PublicExchange, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ex, err := s.exchanges.FindActiveByJoinKey(ctx, domain.JoinKey(input.OwnerLastName, input.MagicWord))
	if err != nil {
		return nil, err
	}

	pub := ex.Public()
	return &pub, nil
}

// Register adds a participant to an exchange in any status. Callers that
// face invitees must go through Join, which refuses new rows once the
// exchange has started.
//
// A visitor token already held by another participant is moved to the new
// one (last write wins).
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Participant, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.exchanges.GetByID(ctx, input.ExchangeID); err != nil {
		return nil, err
	}

	return s.register(ctx, input)
}

func (s *Service) register(ctx context.Context, input RegisterInput) (*domain.Participant, error) {
	p := &domain.Participant{
		ID:         uuid.New(),
		ExchangeID: input.ExchangeID,
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		CreatedAt:  time.Now().UTC(),
	}
	if input.VisitorToken != "" {
		token := input.VisitorToken
		p.VisitorToken = &token
	}

	var created *domain.Participant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if p.VisitorToken != nil {
			if err := s.claimToken(txCtx, *p.VisitorToken); err != nil {
				return err
			}
		}

		var err error
		created, err = s.participants.Create(txCtx, p)
		if err != nil {
			return fmt.Errorf("create participant: %w", err)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			ExchangeID: created.ExchangeID,
			EntityType: domain.EntityTypeParticipant,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"name": created.DisplayName()},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "participant registered",
		slog.String("exchange_id", created.ExchangeID.String()),
		slog.String("participant_id", created.ID.String()),
	)

	return created, nil
}
