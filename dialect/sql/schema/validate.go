package schema

import (
	"fmt"
	"strings"
)

// Issue describes a single finding of a pre-flight schema validation.
type Issue struct {
	Table   string
	Column  string
	Message string
}

func (e *Issue) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s.%s: %s", e.Table, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Table, e.Message)
}

// Result holds the findings of a pre-flight schema validation.
type Result struct {
	Errors   []*Issue
	Warnings []*Issue
}

// HasErrors returns true if there are any validation errors.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any validation warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of the validation result.
func (r *Result) String() string {
	var sb strings.Builder
	if len(r.Errors) > 0 {
		sb.WriteString("Errors:\n")
		for _, e := range r.Errors {
			sb.WriteString("  - ")
			sb.WriteString(e.Error())
			sb.WriteString("\n")
		}
	}
	if len(r.Warnings) > 0 {
		sb.WriteString("Warnings:\n")
		for _, w := range r.Warnings {
			sb.WriteString("  - ")
			sb.WriteString(w.Error())
			sb.WriteString("\n")
		}
	}
	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}
	return sb.String()
}

func (r *Result) errorf(table, column, format string, args ...any) {
	r.Errors = append(r.Errors, &Issue{Table: table, Column: column, Message: fmt.Sprintf(format, args...)})
}

func (r *Result) warnf(table, column, format string, args ...any) {
	r.Warnings = append(r.Warnings, &Issue{Table: table, Column: column, Message: fmt.Sprintf(format, args...)})
}

// Validate runs pre-flight checks over a set of tables before their
// creation statements are executed: table name collisions (join tables
// included) are errors; a reference to a table that is not part of the set
// is a warning, since it may already exist in the database; a reference to
// a table created later in the set is a warning, since the statements run
// in declaration order.
func Validate(tables ...Table) *Result {
	r := &Result{}
	position := make(map[string]int, len(tables))
	for i, t := range tables {
		if t.Name() == "" {
			r.errorf("", "", "table with empty name")
			continue
		}
		if prev, ok := position[t.Name()]; ok {
			r.errorf(t.Name(), "", "table name collides with table #%d", prev)
			continue
		}
		position[t.Name()] = i
		if len(t.Fields()) == 0 {
			r.errorf(t.Name(), "", "table has no fields")
		}
	}
	for i, t := range tables {
		for _, name := range t.JoinTables() {
			if _, ok := position[name]; ok {
				r.errorf(t.Name(), "", "join table %s collides with a declared table", name)
			}
		}
		for _, d := range t.Fields() {
			if !d.Type.Relation() {
				continue
			}
			at, ok := position[d.RefTable]
			switch {
			case !ok:
				r.warnf(t.Name(), d.Name, "references table %s outside this set", d.RefTable)
			case at > i:
				r.warnf(t.Name(), d.Name, "references table %s created later in the set", d.RefTable)
			}
		}
	}
	return r
}
