// Package asyncorm holds the shared error types of the asyncorm schema
// toolkit.
//
// The toolkit is organized as a small set of packages:
//
//   - schema/field declares columns with fluent builders and drives the
//     per-row value pipeline (validate, sanitize, serialize, recompose).
//   - schema assembles columns into tables, derives table names and keeps
//     the process-wide table registry.
//   - schema/mixin bundles field sets shared between tables.
//   - dialect and dialect/sql wrap database/sql behind a small driver
//     interface.
//   - dialect/sql/schema validates a table set and executes its CREATE
//     TABLE statements in one transaction.
//   - serializer shapes stored rows into JSON or msgpack payloads.
//   - config loads the yaml settings file.
//
// Two error kinds flow through all of them: a DeclarationError reports a
// malformed column declaration at schema-definition time, a ValidationError
// reports a value rejected for a column at runtime. Both carry sentinels
// for errors.Is and predicates for quick checks:
//
//	if asyncorm.IsValidation(err) {
//	    // reject the request, the schema itself is fine
//	}
package asyncorm
