package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// SchemaInspector compares the database's goose version with the newest
// embedded migration. The pool is shared, not owned.
type SchemaInspector struct {
	provider *goose.Provider
}

// NewSchemaInspector builds a goose provider over a database/sql view of pool.
func NewSchemaInspector(pool *pgxpool.Pool) (*SchemaInspector, error) {
	provider, err := NewMigrator(stdlib.OpenDBFromPool(pool))
	if err != nil {
		return nil, err
	}
	return &SchemaInspector{provider: provider}, nil
}

// SchemaVersion returns the applied version and the latest embedded one.
// current < latest means `santa migrate up` has not been run.
func (s *SchemaInspector) SchemaVersion(ctx context.Context) (current, latest int64, err error) {
	current, err = s.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("goose db version: %w", err)
	}
	if sources := s.provider.ListSources(); len(sources) > 0 {
		latest = sources[len(sources)-1].Version
	}
	return current, latest, nil
}
