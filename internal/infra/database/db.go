package database

import (
	"context"
	"database/sql"
)

// dbtx is the subset of *sql.DB and *sql.Tx the repositories need, so the
// same repository code runs standalone or inside a unit of work.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
