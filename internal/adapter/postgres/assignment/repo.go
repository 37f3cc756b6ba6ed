// Package assignment implements the Assignment store using PostgreSQL.
//
// Assignments are written once, in bulk, inside the transaction that starts
// an exchange, and are never updated afterwards. Receiver wishlists are only
// reachable through a giver's assignment row.
package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/wishlist"
	"github.com/heartmarshall/secret-santa-backend/internal/domain"
	"github.com/heartmarshall/secret-santa-backend/internal/pairing"
)

const table = "assignments"

var columns = []string{"id", "exchange_id", "giver_id", "receiver_id", "created_at"}

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new assignment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// BulkInsert writes every pair in a single multi-row INSERT. It must run in
// the same transaction as the status flip to started.
func (r *Repo) BulkInsert(ctx context.Context, exchangeID uuid.UUID, pairs []pairing.Pair[uuid.UUID], now time.Time) ([]domain.Assignment, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("bulk insert assignments: no transaction in context")
	}

	b := postgres.Builder().Insert(table).Columns(columns...)
	out := make([]domain.Assignment, len(pairs))
	for i, p := range pairs {
		out[i] = domain.Assignment{
			ID:         uuid.New(),
			ExchangeID: exchangeID,
			GiverID:    p.Giver,
			ReceiverID: p.Receiver,
			CreatedAt:  now,
		}
		b = b.Values(out[i].ID, exchangeID, p.Giver, p.Receiver, now)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignment insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "assignments of exchange", exchangeID)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// CountByExchange returns how many assignment rows the exchange has.
func (r *Repo) CountByExchange(ctx context.Context, exchangeID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"exchange_id": exchangeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build assignment count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count assignments of exchange %s: %w", exchangeID, err)
	}
	return n, nil
}

// GetByGiver returns the assignment in which participantID gives.
func (r *Repo) GetByGiver(ctx context.Context, exchangeID, participantID uuid.UUID) (*domain.Assignment, error) {
	return r.getOne(ctx, squirrel.Eq{"exchange_id": exchangeID, "giver_id": participantID}, participantID)
}

// GetByReceiver returns the assignment in which participantID receives.
func (r *Repo) GetByReceiver(ctx context.Context, exchangeID, participantID uuid.UUID) (*domain.Assignment, error) {
	return r.getOne(ctx, squirrel.Eq{"exchange_id": exchangeID, "receiver_id": participantID}, participantID)
}

// ListWithNames returns every pair of the exchange with giver and receiver
// display names joined in, ordered by the giver's join time.
func (r *Repo) ListWithNames(ctx context.Context, exchangeID uuid.UUID) ([]domain.AssignmentWithNames, error) {
	query, args, err := postgres.Builder().
		Select(
			"a.id", "a.exchange_id", "a.giver_id", "a.receiver_id", "a.created_at",
			"btrim(g.first_name || ' ' || g.last_name) AS giver_name",
			"btrim(rc.first_name || ' ' || rc.last_name) AS receiver_name",
		).
		From(table + " a").
		Join("participants g ON g.id = a.giver_id").
		Join("participants rc ON rc.id = a.receiver_id").
		Where(squirrel.Eq{"a.exchange_id": exchangeID}).
		OrderBy("g.created_at", "g.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignment overview: %w", err)
	}

	var rows []namedRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list named assignments of exchange %s: %w", exchangeID, err)
	}

	out := make([]domain.AssignmentWithNames, len(rows))
	for i, row := range rows {
		out[i] = domain.AssignmentWithNames{
			Assignment: domain.Assignment{
				ID:         row.ID,
				ExchangeID: row.ExchangeID,
				GiverID:    row.GiverID,
				ReceiverID: row.ReceiverID,
				CreatedAt:  row.CreatedAt,
			},
			GiverName:    row.GiverName,
			ReceiverName: row.ReceiverName,
		}
	}
	return out, nil
}

// ReceiverWishlist returns the wishlist of whoever participantID gives to,
// resolved through the assignment row. Empty when no assignment exists.
func (r *Repo) ReceiverWishlist(ctx context.Context, exchangeID, participantID uuid.UUID) ([]domain.WishlistItem, error) {
	cols := make([]string, len(wishlist.Columns))
	for i, c := range wishlist.Columns {
		cols[i] = "w." + c
	}

	query, args, err := postgres.Builder().
		Select(cols...).
		From("wishlist_items w").
		Join("assignments a ON a.receiver_id = w.participant_id").
		Where(squirrel.Eq{"a.exchange_id": exchangeID, "a.giver_id": participantID}).
		OrderBy("w.created_at", "w.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build receiver wishlist query: %w", err)
	}

	items, err := wishlist.ScanItems(ctx, postgres.QuerierFromCtx(ctx, r.db), query, args)
	if err != nil {
		return nil, fmt.Errorf("receiver wishlist of giver %s: %w", participantID, err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, key any) (*domain.Assignment, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build assignment query: %w", err)
	}

	var row assignmentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "assignment for participant", key)
	}
	a := row.toDomain()
	return &a, nil
}

type assignmentRow struct {
	ID         uuid.UUID `db:"id"`
	ExchangeID uuid.UUID `db:"exchange_id"`
	GiverID    uuid.UUID `db:"giver_id"`
	ReceiverID uuid.UUID `db:"receiver_id"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r assignmentRow) toDomain() domain.Assignment {
	return domain.Assignment{
		ID:         r.ID,
		ExchangeID: r.ExchangeID,
		GiverID:    r.GiverID,
		ReceiverID: r.ReceiverID,
		CreatedAt:  r.CreatedAt,
	}
}

type namedRow struct {
	ID           uuid.UUID `db:"id"`
	ExchangeID   uuid.UUID `db:"exchange_id"`
	GiverID      uuid.UUID `db:"giver_id"`
	ReceiverID   uuid.UUID `db:"receiver_id"`
	CreatedAt    time.Time `db:"created_at"`
	GiverName    string    `db:"giver_name"`
	ReceiverName string    `db:"receiver_name"`
}
