package participant

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exchangeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error)
	FindActiveByJoinKey(ctx context.Context, joinKey string) (*domain.Exchange, error)
}

type participantRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	GetByVisitorToken(ctx context.Context, token string) (*domain.Participant, error)
	FindByName(ctx context.Context, exchangeID uuid.UUID, nameKey string) (*domain.Participant, error)
	ListByExchange(ctx context.Context, exchangeID uuid.UUID) ([]domain.Participant, error)
	Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	LockVisitorToken(ctx context.Context, token string) error
	DetachVisitorToken(ctx context.Context, token string) (int64, error)
	AttachVisitorToken(ctx context.Context, id uuid.UUID, token string) (*domain.Participant, error)
	Delete(ctx context.Context, exchangeID, id uuid.UUID) error
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

// Service is the participant registry: joining, return visits and the
// organizer's participant management.
type Service struct {
	exchanges    exchangeRepo
	participants participantRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new Participant service.
func NewService(
	log *slog.Logger,
	exchanges exchangeRepo,
	participants participantRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		exchanges:    exchanges,
		participants: participants,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "participant"),
	}
}

// claimToken releases token from every current holder. It must run inside
// the transaction that then gives the token to its new holder; the advisory
// lock serializes concurrent claims so at most one participant holds it.
func (s *Service) claimToken(ctx context.Context, token string) error {
	if err := s.participants.LockVisitorToken(ctx, token); err != nil {
		return err
	}
	released, err := s.participants.DetachVisitorToken(ctx, token)
	if err != nil {
		return err
	}
	if released > 0 {
		s.log.DebugContext(ctx, "visitor token detached", slog.Int64("released", released))
	}
	return nil
}
