package wishlist

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/config"
	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exchangeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error)
	GetByIDForShare(ctx context.Context, id uuid.UUID) (*domain.Exchange, error)
}

type participantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
}

type wishlistRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WishlistItem, error)
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.WishlistItem, error)
	CountByParticipant(ctx context.Context, participantID uuid.UUID) (int, error)
	Create(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completedBy *uuid.UUID, at *time.Time) (*domain.WishlistItem, error)
	Delete(ctx context.Context, participantID, id uuid.UUID) error
}

type assignmentRepo interface {
	GetByReceiver(ctx context.Context, exchangeID, participantID uuid.UUID) (*domain.Assignment, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages participants' own wishlists and the giver's completion
// marks on the receiver's list.
type Service struct {
	exchanges    exchangeRepo
	participants participantRepo
	items        wishlistRepo
	assignments  assignmentRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
	maxItems     int
}

// NewService creates a new Wishlist service.
func NewService(
	log *slog.Logger,
	exchanges exchangeRepo,
	participants participantRepo,
	items wishlistRepo,
	assignments assignmentRepo,
	audit auditLogger,
	tx txManager,
	cfg config.ExchangeConfig,
) *Service {
	maxItems := cfg.MaxWishlistItems
	if maxItems <= 0 || maxItems > domain.MaxWishlistItems {
		maxItems = domain.MaxWishlistItems
	}
	return &Service{
		exchanges:    exchanges,
		participants: participants,
		items:        items,
		assignments:  assignments,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "wishlist"),
		maxItems:     maxItems,
	}
}

// authorize checks the caller's visitor token against the participant's.
func authorize(p *domain.Participant, token string) error {
	if !p.TokenMatches(token) {
		return domain.ErrForbidden
	}
	return nil
}
