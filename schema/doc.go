// Package schema assembles field descriptors into tables.
//
// A table is declared once, at startup, from the builders of the field
// subpackage:
//
//	books, err := schema.New("library",
//	    field.Char("name").MaxLen(50),
//	    field.JSON("content").MaxLen(100),
//	    field.ForeignKey("author").References("authors"),
//	    field.Date("date_created").AutoNow(),
//	    field.Decimal("price").Digits(10, 2).Nullable(),
//	    field.Int("quantity").Nullable(),
//	)
//
// New finalizes every builder, so malformed declarations fail here as
// startup errors rather than at row time. When no primary key is declared,
// a serial "id" column is prepended automatically.
//
// CreationQueries renders the CREATE TABLE statements for the table and the
// join tables of its multi-target references; the dialect/sql/schema
// package executes them.
//
// The process-wide registry resolves tables by name:
//
//	schema.Register(books)
//	t, err := schema.Lookup("library")
package schema
