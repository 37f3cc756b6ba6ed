package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an organizer with a unique email and surname.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "owner-" + suffix + "@example.com",
		FirstName: "Owner",
		LastName:  "Claus-" + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, first_name, last_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedExchange creates an active exchange owned by owner.
func SeedExchange(t *testing.T, pool *pgxpool.Pool, owner domain.User) domain.Exchange {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ex := domain.Exchange{
		ID:            uuid.New(),
		OwnerID:       owner.ID,
		Name:          "Exchange " + uniqueSuffix(),
		SpendingLimit: 25,
		Currency:      "EUR",
		MagicWord:     "tinsel-" + uniqueSuffix(),
		Status:        domain.ExchangeStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO exchanges (id, owner_id, name, spending_limit, currency, magic_word, join_key,
		                        status, show_recipient_names, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		ex.ID, ex.OwnerID, ex.Name, ex.SpendingLimit, ex.Currency, ex.MagicWord,
		domain.JoinKey(owner.LastName, ex.MagicWord), string(ex.Status), ex.ShowRecipientNames,
		ex.CreatedAt, ex.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExchange insert: %v", err)
	}

	return ex
}

// SeedParticipants adds n participants to the exchange with strictly
// increasing join times, returned in join order.
func SeedParticipants(t *testing.T, pool *pgxpool.Pool, exchangeID uuid.UUID, n int) []domain.Participant {
	t.Helper()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Microsecond)
	out := make([]domain.Participant, 0, n)
	for i := 0; i < n; i++ {
		p := domain.Participant{
			ID:         uuid.New(),
			ExchangeID: exchangeID,
			FirstName:  "Guest" + uniqueSuffix(),
			LastName:   "Elf",
			CreatedAt:  base.Add(time.Duration(i) * time.Millisecond),
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO participants (id, exchange_id, first_name, last_name, name_key, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.ExchangeID, p.FirstName, p.LastName, p.NameKey(), p.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedParticipants insert: %v", err)
		}
		out = append(out, p)
	}

	return out
}

// SeedWishlistItem adds one wishlist item for the participant.
func SeedWishlistItem(t *testing.T, pool *pgxpool.Pool, participantID uuid.UUID, description string) domain.WishlistItem {
	t.Helper()
	ctx := context.Background()

	item := domain.WishlistItem{
		ID:            uuid.New(),
		ParticipantID: participantID,
		Description:   description,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(ctx,
		`INSERT INTO wishlist_items (id, participant_id, description, created_at) VALUES ($1, $2, $3, $4)`,
		item.ID, item.ParticipantID, item.Description, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWishlistItem insert: %v", err)
	}

	return item
}

// Count returns SELECT count(*) for a table filtered by one column.
func Count(t *testing.T, pool *pgxpool.Pool, table, column string, value any) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		"SELECT count(*) FROM "+table+" WHERE "+column+" = $1", value,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: Count %s: %v", table, err)
	}
	return n
}
