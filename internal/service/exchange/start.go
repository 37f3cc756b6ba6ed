package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/internal/pairing"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// StartExchange draws the pairs and moves the exchange to started.
//
// Preconditions are checked in order and the first failure wins: caller is
// the owner, status is active, at least two participants, no assignment
// rows yet. All of them are re-read under a row lock inside the same
// transaction that writes the assignments and flips the status, so two
// concurrent starts cannot both succeed.
func (s *Service) StartExchange(ctx context.Context, exchangeID uuid.UUID) (*StartResult, error) {
	ctx, span := s.tracer.Start(ctx, "exchange.start")
	defer span.End()
	span.SetAttributes(attribute.String("exchange.id", exchangeID.String()))

	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var result *StartResult
	var participantCount int

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ex, err := s.exchanges.GetByIDForUpdate(txCtx, exchangeID)
		if err != nil {
			return err
		}
		if !ex.IsOwnedBy(ownerID) {
			return domain.ErrUnauthorized
		}
		if !ex.Status.CanTransitionTo(domain.ExchangeStatusStarted) {
			return domain.NewStateError("start exchange", ex.Status)
		}

		participants, err := s.participants.ListByExchange(txCtx, exchangeID)
		if err != nil {
			return fmt.Errorf("list participants: %w", err)
		}
		participantCount = len(participants)
		if participantCount < domain.MinParticipants {
			return &domain.InsufficientParticipantsError{Count: participantCount}
		}

		existing, err := s.assignments.CountByExchange(txCtx, exchangeID)
		if err != nil {
			return fmt.Errorf("count assignments: %w", err)
		}
		if existing > 0 {
			return domain.ErrAlreadyStarted
		}

		ids := make([]uuid.UUID, len(participants))
		for i, p := range participants {
			ids[i] = p.ID
		}
		if err := pairing.Validate(ids); err != nil {
			return err
		}

		rng, err := s.newRand()
		if err != nil {
			return fmt.Errorf("seed pairing: %w", err)
		}
		pairs := pairing.Generate(ids, rng)

		now := time.Now().UTC()
		assignments, err := s.assignments.BulkInsert(txCtx, exchangeID, pairs, now)
		if err != nil {
			return fmt.Errorf("insert assignments: %w", err)
		}

		flipped, err := s.exchanges.TransitionStatus(txCtx, exchangeID, domain.ExchangeStatusActive, domain.ExchangeStatusStarted, now)
		if err != nil {
			return fmt.Errorf("flip status: %w", err)
		}
		if !flipped {
			return domain.NewStateError("start exchange", domain.ExchangeStatusStarted)
		}

		ex.Status = domain.ExchangeStatusStarted
		ex.StartedAt = &now
		ex.UpdatedAt = now

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     &ownerID,
			ExchangeID: exchangeID,
			EntityType: domain.EntityTypeExchange,
			EntityID:   &exchangeID,
			Action:     domain.AuditActionStart,
			Changes:    map[string]any{"participants": participantCount},
		}); err != nil {
			return err
		}

		result = &StartResult{Exchange: ex, Assignments: assignments}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("exchange.participants", participantCount))

	s.log.InfoContext(ctx, "exchange started",
		slog.String("owner_id", ownerID.String()),
		slog.String("exchange_id", exchangeID.String()),
		slog.Int("participants", participantCount),
	)

	return result, nil
}
