// Package participant implements the Participant repository using PostgreSQL.
package participant

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

const table = "participants"

var columns = []string{"id", "exchange_id", "first_name", "last_name", "visitor_token", "created_at"}

// Join order: created_at, then id for rows inserted in the same microsecond.
var joinOrder = []string{"created_at", "id"}

// Repo provides participant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new participant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a participant by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	return r.getOne(ctx, r.selectBuilder().Where(squirrel.Eq{"id": id}), id)
}

// GetByIDForUpdate returns a participant and locks its row for the
// enclosing transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Participant, error) {
	return r.getOne(ctx, r.selectBuilder().Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

// GetByVisitorToken returns the participant currently holding token.
func (r *Repo) GetByVisitorToken(ctx context.Context, token string) (*domain.Participant, error) {
	return r.getOne(ctx, r.selectBuilder().Where(squirrel.Eq{"visitor_token": token}), "visitor token")
}

// FindByName returns the earliest participant of the exchange whose
// normalized full name equals nameKey.
func (r *Repo) FindByName(ctx context.Context, exchangeID uuid.UUID, nameKey string) (*domain.Participant, error) {
	b := r.selectBuilder().
		Where(squirrel.Eq{"exchange_id": exchangeID, "name_key": nameKey}).
		OrderBy(joinOrder...).
		Limit(1)
	return r.getOne(ctx, b, nameKey)
}

// ListByExchange returns the exchange's participants in join order.
func (r *Repo) ListByExchange(ctx context.Context, exchangeID uuid.UUID) ([]domain.Participant, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"exchange_id": exchangeID}).
		OrderBy(joinOrder...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build participant list: %w", err)
	}

	var rows []participantRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list participants of exchange %s: %w", exchangeID, err)
	}

	out := make([]domain.Participant, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a participant along with its normalized name key.
func (r *Repo) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "exchange_id", "first_name", "last_name", "name_key", "visitor_token", "created_at").
		Values(p.ID, p.ExchangeID, p.FirstName, p.LastName, p.NameKey(), p.VisitorToken, p.CreatedAt).
		Suffix("RETURNING id, exchange_id, first_name, last_name, visitor_token, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build participant insert: %w", err)
	}

	return r.scanOne(ctx, query, args, p.ID)
}

// LockVisitorToken takes a transaction-scoped advisory lock on token so two
// detach-then-attach sequences for the same token cannot interleave.
// It must run inside a transaction.
func (r *Repo) LockVisitorToken(ctx context.Context, token string) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock visitor token: no transaction in context")
	}
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", token)
	if err != nil {
		return postgres.MapError(err, "visitor token", "lock")
	}
	return nil
}

// DetachVisitorToken clears token from every participant holding it and
// returns how many rows were released.
func (r *Repo) DetachVisitorToken(ctx context.Context, token string) (int64, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("visitor_token", squirrel.Expr("NULL")).
		Where(squirrel.Eq{"visitor_token": token}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build visitor token detach: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "visitor token", "detach")
	}
	return tag.RowsAffected(), nil
}

// AttachVisitorToken assigns token to participant id.
func (r *Repo) AttachVisitorToken(ctx context.Context, id uuid.UUID, token string) (*domain.Participant, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("visitor_token", token).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, exchange_id, first_name, last_name, visitor_token, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build visitor token attach: %w", err)
	}

	return r.scanOne(ctx, query, args, id)
}

// Delete removes a participant of the given exchange; its wishlist and any
// assignment rows referencing it cascade.
func (r *Repo) Delete(ctx context.Context, exchangeID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "exchange_id": exchangeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build participant delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "participant", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participant %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func (r *Repo) getOne(ctx context.Context, b squirrel.SelectBuilder, key any) (*domain.Participant, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build participant query: %w", err)
	}
	return r.scanOne(ctx, query, args, key)
}

func (r *Repo) scanOne(ctx context.Context, query string, args []any, key any) (*domain.Participant, error) {
	var row participantRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "participant", key)
	}
	p := row.toDomain()
	return &p, nil
}

type participantRow struct {
	ID           uuid.UUID `db:"id"`
	ExchangeID   uuid.UUID `db:"exchange_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	VisitorToken *string   `db:"visitor_token"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r participantRow) toDomain() domain.Participant {
	return domain.Participant{
		ID:           r.ID,
		ExchangeID:   r.ExchangeID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		VisitorToken: r.VisitorToken,
		CreatedAt:    r.CreatedAt,
	}
}
