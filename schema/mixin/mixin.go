package mixin

import (
	"github.com/pcinkh/asyncorm/schema"
	"github.com/pcinkh/asyncorm/schema/field"
)

// A Mixin is a reusable set of field declarations shared between tables.
type Mixin interface {
	Fields() []schema.Field
}

// Schema is the default Mixin implementation, meant to be embedded in
// custom mixin definitions.
type Schema struct{}

// Fields returns the fields of the mixin.
func (Schema) Fields() []schema.Field { return nil }

var _ Mixin = (*Schema)(nil)

// Timestamps adds a date_created column stamped by the database on insert.
type Timestamps struct {
	Schema
}

func (Timestamps) Fields() []schema.Field {
	return []schema.Field{
		field.Date("date_created").AutoNow(),
	}
}

// SoftDelete adds a nullable date_deleted column. A set value marks the
// row as deleted without removing it.
type SoftDelete struct {
	Schema
}

func (SoftDelete) Fields() []schema.Field {
	return []schema.Field{
		field.Date("date_deleted").Nullable(),
	}
}

// Fields flattens the fields of the given mixins, in order. Splice the
// result into a table declaration:
//
//	schema.New("library", append(
//	    mixin.Fields(mixin.Timestamps{}),
//	    field.Char("name").MaxLen(50),
//	)...)
func Fields(mixins ...Mixin) []schema.Field {
	var out []schema.Field
	for _, m := range mixins {
		out = append(out, m.Fields()...)
	}
	return out
}
