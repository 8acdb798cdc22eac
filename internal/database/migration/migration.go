package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_pgcrypto",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	},
	{
		Name: "create_table_partner_applications",
		SQL: `CREATE TABLE IF NOT EXISTS partner_applications (
  id           UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  name         TEXT        NOT NULL,
  email        TEXT        NOT NULL,
  company      TEXT        NOT NULL,
  website      TEXT        NOT NULL DEFAULT '',
  partner_type TEXT        NOT NULL CHECK (partner_type IN ('referral', 'reseller', 'technology')),
  message      TEXT        NOT NULL DEFAULT '',
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_partner_applications_email",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_partner_applications_email ON partner_applications (email);`,
	},
	{
		Name: "create_index_partner_applications_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_partner_applications_created_at ON partner_applications (created_at);`,
	},
	{
		Name: "create_table_trust_downloads",
		SQL: `CREATE TABLE IF NOT EXISTS trust_downloads (
  id         UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL,
  company    TEXT        NOT NULL,
  document   TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_trust_downloads_document",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_trust_downloads_document ON trust_downloads (document);`,
	},
}

// sentinelTable is the table created last; its presence means the schema is complete.
const sentinelTable = "public.trust_downloads"

// EnsureMigrated runs the migration steps in order unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	start := time.Now()
	log = log.With().Str("component", "database").Logger()

	log.Info().Str("event", "db_migration_check").Msg("checking schema")

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		log.Error().Err(err).
			Str("event", "db_migration_failed").
			Dur("duration", time.Since(start)).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info().
			Str("event", "db_migration_skip").
			Dur("duration", time.Since(start)).
			Msg("schema already exists, skipping migration")
		return nil
	}

	log.Info().Str("event", "db_migration_start").Int("steps", len(steps)).Msg("migrating schema")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("migration_step", step.Name).
				Dur("duration", time.Since(start)).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("migration_step", step.Name).
			Dur("step_duration", time.Since(stepStart)).
			Msg("migration step applied")
	}

	log.Info().
		Str("event", "db_migration_success").
		Dur("duration", time.Since(start)).
		Msg("schema migrated")

	return nil
}
