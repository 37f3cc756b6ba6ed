package cli

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/secret-santa-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/secret-santa-backend/internal/auth"
	"github.com/heartmarshall/secret-santa-backend/internal/domain"
)

const maxOwnerNameLength = 50

type ownerStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateOwnerToken(ownerID uuid.UUID) (string, time.Time, error)
}

// ownerInput holds the organizer fields collected from flags.
type ownerInput struct {
	Email     string
	FirstName string
	LastName  string
}

func (i ownerInput) Validate() error {
	var errs []domain.FieldError

	if _, err := mail.ParseAddress(strings.TrimSpace(i.Email)); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid address"})
	}
	for _, f := range []struct{ field, value string }{
		{"first_name", i.FirstName},
		{"last_name", i.LastName},
	} {
		v := strings.TrimSpace(f.value)
		if v == "" {
			errs = append(errs, domain.FieldError{Field: f.field, Message: "required"})
		} else if utf8.RuneCountInString(v) > maxOwnerNameLength {
			errs = append(errs, domain.FieldError{Field: f.field, Message: "max 50 characters"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// NewOwnerCommand creates the owner command group.
func NewOwnerCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage organizer accounts",
	}

	cmd.AddCommand(newOwnerCreateCommand(rootOpts))
	cmd.AddCommand(newOwnerTokenCommand(rootOpts))

	return cmd
}

func newOwnerCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var in ownerInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organizer and print a bearer token",
		Long: `Create an organizer account and print a bearer token for the API.

The organizer's last name is part of every exchange's join key, so it
should be the surname invitees know.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withOwnerDeps(cmd.Context(), rootOpts, func(store ownerStore, issuer tokenIssuer) error {
				return createOwner(cmd.Context(), cmd.OutOrStdout(), store, issuer, in)
			})
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "organizer email (unique)")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "organizer first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "organizer last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}

func newOwnerTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a fresh bearer token for an existing organizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withOwnerDeps(cmd.Context(), rootOpts, func(store ownerStore, issuer tokenIssuer) error {
				return issueOwnerToken(cmd.Context(), cmd.OutOrStdout(), store, issuer, email)
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "organizer email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// withOwnerDeps connects to the database and hands fn the user repository
// and token issuer built from config.
func withOwnerDeps(ctx context.Context, rootOpts *RootOptions, fn func(ownerStore, tokenIssuer) error) error {
	cfg, _, err := rootOpts.load()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	return fn(userrepo.New(pool), jwt)
}

func createOwner(ctx context.Context, out io.Writer, store ownerStore, issuer tokenIssuer, in ownerInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	u, err := store.Create(ctx, &domain.User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("create owner: %w", err)
	}

	return printToken(out, issuer, u)
}

func issueOwnerToken(ctx context.Context, out io.Writer, store ownerStore, issuer tokenIssuer, email string) error {
	u, err := store.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return fmt.Errorf("find owner %q: %w", email, err)
	}
	return printToken(out, issuer, u)
}

func printToken(out io.Writer, issuer tokenIssuer, u *domain.User) error {
	token, expires, err := issuer.GenerateOwnerToken(u.ID)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	fmt.Fprintf(out, "owner:   %s <%s>\n", u.ID, u.Email)
	fmt.Fprintf(out, "expires: %s\n", expires.Format(time.RFC3339))
	fmt.Fprintf(out, "token:   %s\n", token)
	return nil
}
