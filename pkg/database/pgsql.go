package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RetryPolicy controls startup connection retries. Attempts counts the total
// number of tries, not the number of retries after the first failure.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// NewPgxPool creates a new PostgreSQL connection pool, retrying the initial
// connection per the given policy before giving up.
func NewPgxPool(ctx context.Context, databaseURL string, retry RetryPolicy) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			lastErr = fmt.Errorf("failed to create connection pool: %w", err)
		} else if err = pool.Ping(ctx); err != nil {
			pool.Close()
			lastErr = fmt.Errorf("failed to ping database: %w", err)
		} else {
			log.Println("Successfully connected to PostgreSQL database.")
			return pool, nil
		}

		if attempt < retry.MaxAttempts {
			log.Printf("Database connection attempt %d/%d failed: %v. Retrying in %s.\n",
				attempt, retry.MaxAttempts, lastErr, retry.Delay)
			select {
			case <-time.After(retry.Delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("database connection cancelled: %w", ctx.Err())
			}
		}
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", retry.MaxAttempts, lastErr)
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
		log.Println("PostgreSQL connection pool closed.")
	}
}
