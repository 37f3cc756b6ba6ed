package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

type exchangeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error)
}

type participantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
}

type assignmentRepo interface {
	GetByGiver(ctx context.Context, exchangeID, participantID uuid.UUID) (*domain.Assignment, error)
	GetByReceiver(ctx context.Context, exchangeID, participantID uuid.UUID) (*domain.Assignment, error)
	ReceiverWishlist(ctx context.Context, exchangeID, participantID uuid.UUID) ([]domain.WishlistItem, error)
}

// Service builds a participant's view of their match.
type Service struct {
	exchanges    exchangeRepo
	participants participantRepo
	assignments  assignmentRepo
	log          *slog.Logger
}

// NewService creates a new Match service.
func NewService(log *slog.Logger, exchanges exchangeRepo, participants participantRepo, assignments assignmentRepo) *Service {
	return &Service{
		exchanges:    exchanges,
		participants: participants,
		assignments:  assignments,
		log:          log.With("service", "match"),
	}
}

// MatchView is what a giver sees about their receiver. Names are nil when
// the current policy withholds them, and also when the counterpart was
// removed after the draw: removal cascades the assignment row, so the view
// degrades to an empty wishlist and no name rather than failing.
type MatchView struct {
	Exchange      domain.PublicExchange
	WishlistItems []domain.WishlistItem
	ReceiverName  *string
	GiverName     *string
	Visibility    Visibility
}

// GetMatchView returns the receiver's wishlist for participantID, with names
// revealed as Policy allows. It fails with ErrNotStarted while the exchange
// is active, even if assignment rows exist.
func (s *Service) GetMatchView(ctx context.Context, participantID uuid.UUID, token string) (*MatchView, error) {
	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if !p.TokenMatches(token) {
		return nil, domain.ErrForbidden
	}

	ex, err := s.exchanges.GetByID(ctx, p.ExchangeID)
	if err != nil {
		return nil, err
	}
	if !ex.Status.IsMatched() {
		return nil, domain.ErrNotStarted
	}

	vis := Policy(ex.Status, ex.ShowRecipientNames)
	view := &MatchView{Exchange: ex.Public(), Visibility: vis}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.assignments.ReceiverWishlist(gctx, ex.ID, p.ID)
		if err != nil {
			return fmt.Errorf("receiver wishlist: %w", err)
		}
		view.WishlistItems = items
		return nil
	})

	if vis.ReceiverName {
		g.Go(func() error {
			a, err := s.assignments.GetByGiver(gctx, ex.ID, p.ID)
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			view.ReceiverName, err = s.displayName(gctx, a.ReceiverID)
			return err
		})
	}

	if vis.GiverName {
		g.Go(func() error {
			a, err := s.assignments.GetByReceiver(gctx, ex.ID, p.ID)
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			view.GiverName, err = s.displayName(gctx, a.GiverID)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "match view served",
		slog.String("exchange_id", ex.ID.String()),
		slog.String("participant_id", p.ID.String()),
		slog.String("status", ex.Status.String()),
	)

	return view, nil
}

// displayName is nil when the participant no longer exists.
func (s *Service) displayName(ctx context.Context, participantID uuid.UUID) (*string, error) {
	p, err := s.participants.GetByID(ctx, participantID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	name := p.DisplayName()
	return &name, nil
}
