// Package postgres implements the repository interfaces on PostgreSQL
// via database/sql and the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories. It is
// satisfied by *sql.DB, *sql.Tx and the circuit breaker wrapper, so the same
// repository code serves both the shared pool and a single transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
