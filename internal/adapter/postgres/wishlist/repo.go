// Package wishlist implements the WishlistItem repository using PostgreSQL.
package wishlist

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

const table = "wishlist_items"

// Columns lists the wishlist_items columns in scan order.
var Columns = []string{
	"id", "participant_id", "description", "url",
	"preview_image_url", "preview_title", "preview_description",
	"completed", "completed_by", "completed_at", "created_at",
}

var returning = "RETURNING " + strings.Join(Columns, ", ")

// Repo provides wishlist persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new wishlist repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a wishlist item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WishlistItem, error) {
	query, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build wishlist query: %w", err)
	}
	return r.scanOne(ctx, query, args, id)
}

// ListByParticipant returns a participant's items in creation order.
func (r *Repo) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.WishlistItem, error) {
	query, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(squirrel.Eq{"participant_id": participantID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build wishlist list: %w", err)
	}

	items, err := ScanItems(ctx, postgres.QuerierFromCtx(ctx, r.db), query, args)
	if err != nil {
		return nil, fmt.Errorf("list wishlist of participant %s: %w", participantID, err)
	}
	return items, nil
}

// CountByParticipant returns how many items a participant has.
func (r *Repo) CountByParticipant(ctx context.Context, participantID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"participant_id": participantID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build wishlist count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count wishlist of participant %s: %w", participantID, err)
	}
	return n, nil
}

// Create inserts a wishlist item.
func (r *Repo) Create(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "participant_id", "description", "url",
			"preview_image_url", "preview_title", "preview_description", "created_at").
		Values(item.ID, item.ParticipantID, item.Description, item.URL,
			item.Preview.ImageURL, item.Preview.Title, item.Preview.Description, item.CreatedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build wishlist insert: %w", err)
	}
	return r.scanOne(ctx, query, args, item.ID)
}

// SetCompleted records (completed=true) or clears the completion of an item.
func (r *Repo) SetCompleted(ctx context.Context, id uuid.UUID, completedBy *uuid.UUID, at *time.Time) (*domain.WishlistItem, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("completed", completedBy != nil).
		Set("completed_by", completedBy).
		Set("completed_at", at).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build wishlist completion: %w", err)
	}
	return r.scanOne(ctx, query, args, id)
}

// Delete removes an item owned by participantID.
func (r *Repo) Delete(ctx context.Context, participantID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "participant_id": participantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build wishlist delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "wishlist_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wishlist_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) scanOne(ctx context.Context, query string, args []any, key any) (*domain.WishlistItem, error) {
	var row ItemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "wishlist_item", key)
	}
	item := row.ToDomain()
	return &item, nil
}

// ScanItems runs query and maps every row selected with Columns.
func ScanItems(ctx context.Context, q postgres.Querier, query string, args []any) ([]domain.WishlistItem, error) {
	var rows []ItemRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]domain.WishlistItem, len(rows))
	for i, row := range rows {
		items[i] = row.ToDomain()
	}
	return items, nil
}

// ItemRow is the scan target for a wishlist_items row.
type ItemRow struct {
	ID                 uuid.UUID  `db:"id"`
	ParticipantID      uuid.UUID  `db:"participant_id"`
	Description        string     `db:"description"`
	URL                *string    `db:"url"`
	PreviewImageURL    *string    `db:"preview_image_url"`
	PreviewTitle       *string    `db:"preview_title"`
	PreviewDescription *string    `db:"preview_description"`
	Completed          bool       `db:"completed"`
	CompletedBy        *uuid.UUID `db:"completed_by"`
	CompletedAt        *time.Time `db:"completed_at"`
	CreatedAt          time.Time  `db:"created_at"`
}

// ToDomain converts the row into a domain.WishlistItem.
func (r ItemRow) ToDomain() domain.WishlistItem {
	return domain.WishlistItem{
		ID:            r.ID,
		ParticipantID: r.ParticipantID,
		Description:   r.Description,
		URL:           r.URL,
		Preview: domain.LinkPreview{
			ImageURL:    r.PreviewImageURL,
			Title:       r.PreviewTitle,
			Description: r.PreviewDescription,
		},
		Completed:   r.Completed,
		CompletedBy: r.CompletedBy,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}
