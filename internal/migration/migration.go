// Package migration manages the database schema.
package migration

import (
	"context"

	"offerforge/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Runner applies schema migrations in order
type Runner struct {
	version string
}

// NewRunner creates a migration runner
func NewRunner() *Runner {
	return &Runner{version: "1.0.0"}
}

// Version returns the schema version this runner produces
func (r *Runner) Version() string {
	return r.version
}

// Run executes all migrations. Statements are idempotent so the runner
// is safe to invoke on every boot.
func (r *Runner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createOffersTable(ctx, db); err != nil {
		return errors.Wrap(err, "create offers table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "create indexes")
	}
	return nil
}

func (r *Runner) createOffersTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS offers (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL,
			package JSONB NOT NULL,
			tags TEXT[] NOT NULL DEFAULT '{}',
			metadata JSONB NOT NULL DEFAULT '{}',
			performance_history JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (r *Runner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_offers_owner_created ON offers(owner_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_offers_tags ON offers USING GIN(tags)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
