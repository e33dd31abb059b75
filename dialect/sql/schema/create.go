package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/pcinkh/asyncorm/dialect"
	"github.com/pcinkh/asyncorm/schema/field"
)

// Table is the subset of the schema table surface the creation layer needs.
// *schema.Table implements it.
type Table interface {
	Name() string
	Fields() []*field.Descriptor
	CreationQueries() []string
	JoinTables() []string
}

// Creator assembles and executes the CREATE TABLE statements of a set of
// tables. All statements of one Create call run inside a single
// transaction.
type Creator struct {
	drv         dialect.Driver
	ifNotExists bool
	dropTables  bool
}

// CreatorOption configures a Creator.
type CreatorOption func(*Creator)

// WithIfNotExists renders CREATE TABLE IF NOT EXISTS so that re-running
// creation against an existing database is not an error.
func WithIfNotExists() CreatorOption {
	return func(c *Creator) {
		c.ifNotExists = true
	}
}

// WithDropTables drops every table (join tables included) before creating
// it. Destructive; meant for tests and throwaway databases.
func WithDropTables() CreatorOption {
	return func(c *Creator) {
		c.dropTables = true
	}
}

// NewCreator returns a Creator for the given driver.
func NewCreator(drv dialect.Driver, opts ...CreatorOption) *Creator {
	c := &Creator{drv: drv}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create validates the tables and executes their creation statements in
// declaration order, so referenced tables must precede their referrers.
func (c *Creator) Create(ctx context.Context, tables ...Table) error {
	if res := Validate(tables...); res.HasErrors() {
		return fmt.Errorf("sql/schema: %s", res)
	}
	tx, err := c.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("sql/schema: begin: %w", err)
	}
	if err := c.create(ctx, tx, tables); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

func (c *Creator) create(ctx context.Context, conn dialect.ExecQuerier, tables []Table) error {
	if c.dropTables {
		// Reverse order, so referrers are dropped before their targets.
		for i := len(tables) - 1; i >= 0; i-- {
			t := tables[i]
			for _, name := range append(t.JoinTables(), t.Name()) {
				query := fmt.Sprintf("DROP TABLE IF EXISTS %s", name)
				if err := conn.Exec(ctx, query, []any{}, nil); err != nil {
					return fmt.Errorf("sql/schema: drop table %s: %w", name, err)
				}
			}
		}
	}
	for _, t := range tables {
		for _, query := range t.CreationQueries() {
			if c.ifNotExists {
				query = strings.Replace(query, "CREATE TABLE ", "CREATE TABLE IF NOT EXISTS ", 1)
			}
			if err := conn.Exec(ctx, query, []any{}, nil); err != nil {
				return fmt.Errorf("sql/schema: create table %s: %w", t.Name(), err)
			}
		}
	}
	return nil
}

// Create is a convenience wrapper around NewCreator(drv, opts...).Create.
func Create(ctx context.Context, drv dialect.Driver, tables []Table, opts ...CreatorOption) error {
	return NewCreator(drv, opts...).Create(ctx, tables...)
}
