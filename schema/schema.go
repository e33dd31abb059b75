package schema

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/pcinkh/asyncorm/schema/field"
)

// Field is implemented by every field builder.
type Field interface {
	Descriptor() *field.Descriptor
}

// Table is an ordered, named set of field descriptors. It is built once at
// schema-definition time and treated as immutable, shared-read state
// thereafter.
type Table struct {
	name   string
	fields []*field.Descriptor
	pk     *field.Descriptor
}

// New finalizes the given field builders into a table. Any malformed
// declaration surfaces here as a *asyncorm.DeclarationError, before row
// processing can begin. When no primary key is declared, a serial "id"
// column is prepended.
func New(name string, fields ...Field) (*Table, error) {
	if name == "" {
		return nil, fmt.Errorf("asyncorm/schema: table name cannot be empty")
	}
	t := &Table{name: name}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("asyncorm/schema: table %q: %w", name, d.Err)
		}
		if _, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("asyncorm/schema: table %q: duplicate column %q", name, d.Name)
		}
		seen[d.Name] = struct{}{}
		if d.Type.Relation() {
			d.OwnerTable = name
		}
		if d.Type == field.TypePk {
			if t.pk != nil {
				return nil, fmt.Errorf("asyncorm/schema: table %q: multiple primary keys", name)
			}
			t.pk = d
		}
		t.fields = append(t.fields, d)
	}
	if t.pk == nil {
		d := field.Pk().Descriptor()
		if _, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("asyncorm/schema: table %q: column %q conflicts with the implicit primary key", name, d.Name)
		}
		t.pk = d
		t.fields = append([]*field.Descriptor{d}, t.fields...)
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Pk returns the primary key descriptor.
func (t *Table) Pk() *field.Descriptor { return t.pk }

// Fields returns the table's descriptors in declaration order. The returned
// slice must not be mutated.
func (t *Table) Fields() []*field.Descriptor { return t.fields }

// Field returns the descriptor of the named column.
func (t *Table) Field(name string) (*field.Descriptor, bool) {
	for _, d := range t.fields {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// CreationQueries returns the CREATE TABLE statements for this table: the
// main table assembled from the non-relation-table fragments, followed by
// one join table per multi-target reference.
func (t *Table) CreationQueries() []string {
	cols := make([]string, 0, len(t.fields))
	var joins []string
	for _, d := range t.fields {
		if d.Type == field.TypeManyToMany {
			body := strings.ReplaceAll(d.CreationFragment(), "\n", "\n  ")
			joins = append(joins, fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", JoinTable(t.name, d.RefTable), body))
			continue
		}
		cols = append(cols, d.CreationFragment())
	}
	main := fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", t.name, strings.Join(cols, ",\n  "))
	return append([]string{main}, joins...)
}

// JoinTables returns the names of the join tables backing the table's
// multi-target references, in declaration order.
func (t *Table) JoinTables() []string {
	var names []string
	for _, d := range t.fields {
		if d.Type == field.TypeManyToMany {
			names = append(names, JoinTable(t.name, d.RefTable))
		}
	}
	return names
}

// TableName derives the conventional table name from a model name:
// "BookAuthor" becomes "book_authors".
func TableName(model string) string {
	return inflect.Pluralize(inflect.Underscore(model))
}

// JoinTable returns the name of the join table backing a multi-target
// reference between the owning and the referenced table.
func JoinTable(owner, ref string) string {
	return owner + "_" + ref
}
