package field

// ForeignKey returns a new single-target reference builder. The column
// holds the integer identifier of a row in the referenced table.
// References is required.
func ForeignKey(name string) *ForeignKeyBuilder {
	return &ForeignKeyBuilder{desc: &Descriptor{Type: TypeForeignKey, Name: name}}
}

// ForeignKeyBuilder configures a single-target reference column.
type ForeignKeyBuilder struct {
	desc *Descriptor
}

// References sets the referenced table.
func (b *ForeignKeyBuilder) References(table string) *ForeignKeyBuilder {
	b.desc.RefTable = table
	return b
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *ForeignKeyBuilder) Nullable() *ForeignKeyBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *ForeignKeyBuilder) Unique() *ForeignKeyBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default referenced identifier.
func (b *ForeignKeyBuilder) Default(id int) *ForeignKeyBuilder {
	b.desc.Default = id
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *ForeignKeyBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}

// ManyToMany returns a new multi-target reference builder. Its value space
// is a single identifier or a sequence of identifiers of rows in the
// referenced table; its DDL describes a two-column join table rather than
// a column of the owning table. References is required; the owning table
// is bound by the schema layer.
func ManyToMany(name string) *ManyToManyBuilder {
	return &ManyToManyBuilder{desc: &Descriptor{Type: TypeManyToMany, Name: name}}
}

// ManyToManyBuilder configures a multi-target reference.
type ManyToManyBuilder struct {
	desc *Descriptor
}

// References sets the referenced table.
func (b *ManyToManyBuilder) References(table string) *ManyToManyBuilder {
	b.desc.RefTable = table
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *ManyToManyBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}
