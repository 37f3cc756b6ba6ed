package exchange

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/internal/pairing"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exchangeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Exchange, error)
	ExistsActiveJoinKey(ctx context.Context, joinKey string, exceptID uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Exchange, error)
	Create(ctx context.Context, ex *domain.Exchange, joinKey string) (*domain.Exchange, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ExchangeUpdateParams, now time.Time) (*domain.Exchange, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.ExchangeStatus, now time.Time) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type participantRepo interface {
	ListByExchange(ctx context.Context, exchangeID uuid.UUID) ([]domain.Participant, error)
}

type assignmentRepo interface {
	CountByExchange(ctx context.Context, exchangeID uuid.UUID) (int, error)
	BulkInsert(ctx context.Context, exchangeID uuid.UUID, pairs []pairing.Pair[uuid.UUID], now time.Time) ([]domain.Assignment, error)
	ListWithNames(ctx context.Context, exchangeID uuid.UUID) ([]domain.AssignmentWithNames, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByExchange(ctx context.Context, exchangeID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service owns the exchange lifecycle: active -> started -> ended.
type Service struct {
	exchanges    exchangeRepo
	users        userRepo
	participants participantRepo
	assignments  assignmentRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
	tracer       trace.Tracer
	newRand      func() (pairing.Rand, error)
}

// NewService creates a new Exchange service.
func NewService(
	log *slog.Logger,
	exchanges exchangeRepo,
	users userRepo,
	participants participantRepo,
	assignments assignmentRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		exchanges:    exchanges,
		users:        users,
		participants: participants,
		assignments:  assignments,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "exchange"),
		tracer:       otel.Tracer("github.com/heartmarshall/secret-santa-backend/internal/service/exchange"),
		newRand:      defaultRand,
	}
}

func defaultRand() (pairing.Rand, error) {
	return pairing.NewRand()
}

// getOwned loads an exchange and checks that the caller owns it.
func (s *Service) getOwned(ctx context.Context, ownerID, exchangeID uuid.UUID) (*domain.Exchange, error) {
	ex, err := s.exchanges.GetByID(ctx, exchangeID)
	if err != nil {
		return nil, err
	}
	if !ex.IsOwnedBy(ownerID) {
		return nil, domain.ErrUnauthorized
	}
	return ex, nil
}
