// Package database opens the Postgres pool that stores partner applications and trust downloads.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"stereos/internal/config"
)

const pingTimeout = 5 * time.Second

// ErrInvalidConfig is returned when neither DATABASE_URL nor the discrete settings are usable.
var ErrInvalidConfig = errors.New("invalid database config")

// replaced in tests
var sqlOpen = sql.Open

var (
	registerOnce sync.Once
	tracedName   string
	tracedErr    error
)

// tracedDriver registers the otelsql-wrapped pgx driver on first use. database/sql
// drivers cannot be unregistered, so retries must share one registration.
func tracedDriver() (string, error) {
	registerOnce.Do(func() {
		tracedName, tracedErr = otelsql.Register("pgx",
			otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
			otelsql.WithSQLCommenter(true),
		)
		if tracedErr != nil {
			tracedErr = fmt.Errorf("register traced driver: %w", tracedErr)
		}
	})
	return tracedName, tracedErr
}

// DSN returns the connection string for c. DATABASE_URL (as issued by Neon and
// most hosted Postgres providers) wins over the discrete DB_* settings.
func DSN(c config.DatabaseConfig) (string, error) {
	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err != nil {
			return "", fmt.Errorf("%w: DATABASE_URL: %v", ErrInvalidConfig, err)
		}
		if u.Scheme != "postgres" && u.Scheme != "postgresql" {
			return "", fmt.Errorf("%w: DATABASE_URL scheme %q", ErrInvalidConfig, u.Scheme)
		}
		return c.URL, nil
	}

	var missing []string
	for _, f := range [][2]string{{"DB_HOST", c.Host}, {"DB_PORT", c.Port}, {"DB_USER", c.User}, {"DB_NAME", c.Name}} {
		if f[1] == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: set DATABASE_URL or %v", ErrInvalidConfig, missing)
	}

	u := url.URL{Scheme: "postgres", Host: c.Host + ":" + c.Port, Path: c.Name}
	if c.Password == "" {
		u.User = url.User(c.User)
	} else {
		u.User = url.UserPassword(c.User, c.Password)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}
	return u.String(), nil
}

// Open registers the traced pgx driver, applies pool limits and pings once.
func Open(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := DSN(c)
	if err != nil {
		return nil, err
	}

	driver, err := tracedDriver()
	if err != nil {
		return nil, err
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	configurePool(db, c)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

func configurePool(db *sql.DB, c config.DatabaseConfig) {
	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}
}

// ConnectWithRetry calls Open with exponential backoff until it succeeds, ctx is
// done or ConnectRetryMaxSec elapses. Config errors fail immediately.
func ConnectWithRetry(ctx context.Context, c config.DatabaseConfig, log zerolog.Logger) (*sql.DB, error) {
	if _, err := DSN(c); err != nil {
		return nil, err
	}

	maxElapsed := time.Duration(c.ConnectRetryMaxSec) * time.Second
	if maxElapsed <= 0 {
		maxElapsed = time.Minute
	}

	attempt := 0
	db, err := backoff.Retry[*sql.DB](ctx, func() (*sql.DB, error) {
		attempt++
		db, err := Open(ctx, c)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database not ready")
			return nil, err
		}
		return db, nil
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(maxElapsed),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to database after %d attempts: %w", attempt, err)
	}
	log.Info().Int("attempt", attempt).Msg("connected to database")
	return db, nil
}
