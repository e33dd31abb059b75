package dialect

import "context"

// Dialect names.
const (
	// Postgres is the primary dialect; the literal and DDL syntax produced
	// by the field subsystem follows it.
	Postgres = "postgres"
	// SQLite is supported for embedded and test setups.
	SQLite = "sqlite"
	// MySQL is recognized but untested.
	MySQL = "mysql"
)

// ExecQuerier wraps the basic Exec and Query methods. It is implemented by
// both Driver and Tx.
type ExecQuerier interface {
	// Exec executes a query that does not return rows. For example, in SQL,
	// INSERT or UPDATE. It scans the result into v.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows. It scans the result into v.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the minimal interface a database backend must implement.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(ctx context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx is a transaction created by Driver.Tx.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
