// Package exchange implements the Exchange repository using PostgreSQL.
package exchange

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

const table = "exchanges"

// JoinKeyConstraint is the partial unique index over active join keys.
const JoinKeyConstraint = "ux_exchanges_active_join_key"

var columns = []string{
	"id", "owner_id", "name", "spending_limit", "currency", "magic_word", "status",
	"show_recipient_names", "started_at", "ended_at", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides exchange persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new exchange repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an exchange by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Exchange, error) {
	return r.getOne(ctx, r.selectBuilder().Where(squirrel.Eq{"id": id}), id)
}

// GetByIDForUpdate returns an exchange and locks its row until the enclosing
// transaction ends. Concurrent lifecycle transitions queue behind the lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Exchange, error) {
	return r.getOne(ctx, r.selectBuilder().Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"), id)
}

// GetByIDForShare returns an exchange and holds a share lock on its row
// until the enclosing transaction ends. Readers proceed together while a
// concurrent start or end waits for them.
func (r *Repo) GetByIDForShare(ctx context.Context, id uuid.UUID) (*domain.Exchange, error) {
	return r.getOne(ctx, r.selectBuilder().Where(squirrel.Eq{"id": id}).Suffix("FOR SHARE"), id)
}

// FindActiveByJoinKey returns the active exchange whose join key matches.
func (r *Repo) FindActiveByJoinKey(ctx context.Context, joinKey string) (*domain.Exchange, error) {
	return r.getOne(ctx,
		r.selectBuilder().Where(squirrel.Eq{"join_key": joinKey, "status": string(domain.ExchangeStatusActive)}),
		"join key",
	)
}

// ExistsActiveJoinKey reports whether an active exchange other than exceptID
// already uses joinKey. Pass uuid.Nil to check against all exchanges.
func (r *Repo) ExistsActiveJoinKey(ctx context.Context, joinKey string, exceptID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"join_key": joinKey, "status": string(domain.ExchangeStatusActive)}).
		Where(squirrel.NotEq{"id": exceptID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build join key query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "exchange", "join key")
	}
	return exists, nil
}

// ListByOwner returns the owner's exchanges, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Exchange, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exchange list: %w", err)
	}

	var rows []exchangeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list exchanges by owner %s: %w", ownerID, err)
	}

	out := make([]domain.Exchange, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new exchange together with its normalized join key.
func (r *Repo) Create(ctx context.Context, ex *domain.Exchange, joinKey string) (*domain.Exchange, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "owner_id", "name", "spending_limit", "currency", "magic_word", "join_key",
			"status", "show_recipient_names", "created_at", "updated_at",
		).
		Values(
			ex.ID, ex.OwnerID, ex.Name, ex.SpendingLimit, ex.Currency, ex.MagicWord, joinKey,
			string(ex.Status), ex.ShowRecipientNames, ex.CreatedAt, ex.UpdatedAt,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exchange insert: %w", err)
	}

	return r.scanOne(ctx, query, args, ex.ID)
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ExchangeUpdateParams, now time.Time) (*domain.Exchange, error) {
	set := map[string]any{"updated_at": now}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.SpendingLimit != nil {
		set["spending_limit"] = *params.SpendingLimit
	}
	if params.Currency != nil {
		set["currency"] = *params.Currency
	}
	if params.MagicWord != nil {
		set["magic_word"] = *params.MagicWord
	}
	if params.JoinKey != nil {
		set["join_key"] = *params.JoinKey
	}
	if params.ShowRecipientNames != nil {
		set["show_recipient_names"] = *params.ShowRecipientNames
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exchange update: %w", err)
	}

	return r.scanOne(ctx, query, args, id)
}

// TransitionStatus flips status from -> to only if the row is still in from,
// stamping started_at or ended_at. It reports whether a row changed.
// Steps other than active -> started -> ended are refused without a query.
func (r *Repo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.ExchangeStatus, now time.Time) (bool, error) {
	if !from.CanTransitionTo(to) {
		return false, domain.NewStateError(fmt.Sprintf("transition to %s", to), from)
	}

	b := postgres.Builder().
		Update(table).
		Set("status", string(to)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "status": string(from)})

	switch to {
	case domain.ExchangeStatusStarted:
		b = b.Set("started_at", now)
	case domain.ExchangeStatusEnded:
		b = b.Set("ended_at", now)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return false, fmt.Errorf("build exchange transition: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "exchange", id)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes an exchange; participants, wishlists and assignments
// cascade with it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build exchange delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "exchange", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exchange %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func (r *Repo) getOne(ctx context.Context, b squirrel.SelectBuilder, key any) (*domain.Exchange, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exchange query: %w", err)
	}
	return r.scanOne(ctx, query, args, key)
}

func (r *Repo) scanOne(ctx context.Context, query string, args []any, key any) (*domain.Exchange, error) {
	var row exchangeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "exchange", key)
	}
	ex := row.toDomain()
	return &ex, nil
}

type exchangeRow struct {
	ID                 uuid.UUID  `db:"id"`
	OwnerID            uuid.UUID  `db:"owner_id"`
	Name               string     `db:"name"`
	SpendingLimit      int        `db:"spending_limit"`
	Currency           string     `db:"currency"`
	MagicWord          string     `db:"magic_word"`
	Status             string     `db:"status"`
	ShowRecipientNames bool       `db:"show_recipient_names"`
	StartedAt          *time.Time `db:"started_at"`
	EndedAt            *time.Time `db:"ended_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r exchangeRow) toDomain() domain.Exchange {
	return domain.Exchange{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		Name:               r.Name,
		SpendingLimit:      r.SpendingLimit,
		Currency:           r.Currency,
		MagicWord:          r.MagicWord,
		Status:             domain.ExchangeStatus(r.Status),
		ShowRecipientNames: r.ShowRecipientNames,
		StartedAt:          r.StartedAt,
		EndedAt:            r.EndedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
