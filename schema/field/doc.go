// Package field provides fluent builders for declaring table columns.
//
// A builder configures exactly one column and is finalized with Descriptor,
// which runs the construction-time constraint checks once:
//
//	field.Char("name").MaxLen(100)
//	field.Int("age")
//	field.Bool("active").Default(true)
//	field.Date("created_at").AutoNow()
//	field.JSON("metadata").MaxLen(1024)
//	field.Decimal("price").Digits(10, 2)
//	field.UUID("uid").DefaultFunc(uuid.New)
//	field.Email("email").MaxLen(255)
//
// Relation fields reference rows of another table:
//
//	field.ForeignKey("author").References("authors")
//	field.ManyToMany("tags").References("tags")
//
// # Options
//
// Each builder exposes only the options that are legal for its kind:
//
//	field.Char("status").
//	    MaxLen(16).
//	    Nullable().             // NULL instead of NOT NULL
//	    Unique().               // UNIQUE constraint
//	    Default("pending").     // DEFAULT literal in the DDL
//	    Choices(                // restrict the legal value domain
//	        field.Choice{Value: "pending", Label: "Pending"},
//	        field.Choice{Value: "done", Label: "Done"},
//	    )
//
// Defaults may be literals or nullary producers:
//
//	field.Date("updated_at").DefaultFunc(time.Now)
//
// # Descriptor operations
//
// The finalized Descriptor is immutable and safe for concurrent use. The
// model layer drives its per-row pipeline:
//
//	Validate(v)   // nullability, choices, runtime type, format
//	Sanitize(v)   // textual SQL literal, validating as a side effect
//	Serialize(v)  // transport-ready value
//	Recompose(v)  // stored representation back to application value
//
// and the schema-creation layer collects CreationFragment from every field
// of a table to assemble the CREATE TABLE statement.
//
// Malformed declarations are reported as *asyncorm.DeclarationError on
// Descriptor.Err; per-value failures are *asyncorm.ValidationError.
package field
