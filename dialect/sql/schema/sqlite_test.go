package schema_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/pcinkh/asyncorm/dialect"
	"github.com/pcinkh/asyncorm/dialect/sql"
	sqlschema "github.com/pcinkh/asyncorm/dialect/sql/schema"
	"github.com/pcinkh/asyncorm/schema"
	"github.com/pcinkh/asyncorm/schema/field"
)

// TestSQLite runs the creation path against a real in-memory database.
// Timestamp defaults are left out since sqlite has no now() function in
// column defaults, and ids are inserted explicitly since serial columns
// do not auto-increment outside postgres.
func TestSQLite(t *testing.T) {
	t.Parallel()
	drv, err := sql.Open(dialect.SQLite, ":memory:")
	require.NoError(t, err)
	defer drv.Close()
	// Every pooled connection gets its own in-memory database.
	drv.DB().SetMaxOpenConns(1)
	require.Equal(t, dialect.SQLite, drv.Dialect())

	authors, err := schema.New("authors",
		field.Char("name").MaxLen(50),
		field.Int("age").Nullable(),
	)
	require.NoError(t, err)
	books, err := schema.New("library",
		field.Char("name").MaxLen(50),
		field.Char("synopsis").MaxLen(255).Nullable(),
		field.ForeignKey("author").References("authors").Nullable(),
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sqlschema.Create(ctx, drv, []sqlschema.Table{authors, books}))

	err = drv.Exec(ctx, "INSERT INTO authors (id, name, age) VALUES (?, ?, ?)",
		[]any{1, "Kurt Vonnegut", 84}, nil)
	require.NoError(t, err)
	err = drv.Exec(ctx, "INSERT INTO library (id, name, author) VALUES (?, ?, ?)",
		[]any{1, "Slaughterhouse-Five", 1}, nil)
	require.NoError(t, err)

	var rows sql.Rows
	err = drv.Query(ctx, "SELECT b.name, a.name FROM library b JOIN authors a ON b.author = a.id",
		[]any{}, &rows)
	require.NoError(t, err)
	defer rows.Close()
	require.True(t, rows.Next())
	var book, author string
	require.NoError(t, rows.Scan(&book, &author))
	assert.Equal(t, "Slaughterhouse-Five", book)
	assert.Equal(t, "Kurt Vonnegut", author)
	assert.False(t, rows.Next())
	require.NoError(t, rows.Err())
}
