package participant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// Join is the invitee entry point. While the exchange is active it
// registers a new participant. Once started or ended it never creates rows:
// the caller is resolved by name to their existing registration, and a
// supplied visitor token is re-attached to that participant.
func (s *Service) Join(ctx context.Context, input RegisterInput) (*JoinResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ex, err := s.exchanges.GetByID(ctx, input.ExchangeID)
	if err != nil {
		return nil, err
	}

	if ex.Status == domain.ExchangeStatusActive {
		p, err := s.register(ctx, input)
		if err != nil {
			return nil, err
		}
		return &JoinResult{Participant: p, Exchange: ex.Public()}, nil
	}

	p, err := s.LookupByName(ctx, input.ExchangeID, input.FirstName, input.LastName)
	if err != nil {
		return nil, err
	}

	if input.VisitorToken != "" && (p.VisitorToken == nil || *p.VisitorToken != input.VisitorToken) {
		p, err = s.reattach(ctx, p.ID, input.VisitorToken)
		if err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "participant returned",
		slog.String("exchange_id", ex.ID.String()),
		slog.String("participant_id", p.ID.String()),
		slog.String("status", ex.Status.String()),
	)

	return &JoinResult{Participant: p, Exchange: ex.Public(), Returning: true}, nil
}

// LookupByName finds a participant of the exchange by full name, compared
// case-insensitively. The earliest registration wins when names repeat.
func (s *Service) LookupByName(ctx context.Context, exchangeID uuid.UUID, firstName, lastName string) (*domain.Participant, error) {
	key := domain.ParticipantNameKey(firstName, lastName)
	if key == "" {
		return nil, domain.NewValidationError("first_name", "required")
	}
	return s.participants.FindByName(ctx, exchangeID, key)
}

func (s *Service) reattach(ctx context.Context, participantID uuid.UUID, token string) (*domain.Participant, error) {
	var p *domain.Participant
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.claimToken(txCtx, token); err != nil {
			return err
		}
		var err error
		p, err = s.participants.AttachVisitorToken(txCtx, participantID, token)
		if err != nil {
			return fmt.Errorf("attach visitor token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
