package exchange

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/pkg/ctxutil"
)

// GetExchange returns one of the caller's exchanges.
func (s *Service) GetExchange(ctx context.Context, exchangeID uuid.UUID) (*domain.Exchange, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.getOwned(ctx, ownerID, exchangeID)
}

// ListExchanges returns the caller's exchanges, newest first.
func (s *Service) ListExchanges(ctx context.Context) ([]domain.Exchange, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.exchanges.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list exchanges: %w", err)
	}
	return list, nil
}

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// History returns the exchange's audit trail, newest first. A non-positive
// limit means the default; larger limits are capped.
func (s *Service) History(ctx context.Context, exchangeID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.getOwned(ctx, ownerID, exchangeID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	records, err := s.audit.ListByExchange(ctx, exchangeID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// Overview returns the organizer's pairing overview: the exchange, its
// participants in join order and every pair with names. Pairs are empty
// while the exchange is active.
func (s *Service) Overview(ctx context.Context, exchangeID uuid.UUID) (*Overview, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ex, err := s.getOwned(ctx, ownerID, exchangeID)
	if err != nil {
		return nil, err
	}

	out := &Overview{Exchange: ex}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		participants, err := s.participants.ListByExchange(gctx, exchangeID)
		if err != nil {
			return fmt.Errorf("list participants: %w", err)
		}
		out.Participants = participants
		return nil
	})
	if ex.Status.IsMatched() {
		g.Go(func() error {
			pairs, err := s.assignments.ListWithNames(gctx, exchangeID)
			if err != nil {
				return fmt.Errorf("list assignments: %w", err)
			}
			out.Assignments = pairs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
