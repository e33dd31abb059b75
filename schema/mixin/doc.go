// Package mixin provides reusable field sets for table declarations.
//
// A mixin bundles columns that several tables share, such as an audit
// timestamp. Custom mixins embed Schema and override Fields:
//
//	type Audit struct {
//	    mixin.Schema
//	}
//
//	func (Audit) Fields() []schema.Field {
//	    return []schema.Field{
//	        field.Date("date_created").AutoNow(),
//	        field.Char("created_by").MaxLen(50).Nullable(),
//	    }
//	}
//
// Mixin fields are spliced into a table declaration with Fields:
//
//	schema.New("library", append(
//	    mixin.Fields(Audit{}),
//	    field.Char("name").MaxLen(50),
//	)...)
package mixin
