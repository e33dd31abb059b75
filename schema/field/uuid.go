package field

import "github.com/google/uuid"

// UUID returns a new uuid field builder. Values may be uuid.UUID or their
// canonical string form.
func UUID(name string) *UUIDBuilder {
	return &UUIDBuilder{desc: &Descriptor{Type: TypeUUID, Name: name}}
}

// UUIDBuilder configures a uuid column.
type UUIDBuilder struct {
	desc *Descriptor
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *UUIDBuilder) Nullable() *UUIDBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *UUIDBuilder) Unique() *UUIDBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column.
func (b *UUIDBuilder) Default(v uuid.UUID) *UUIDBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a producer invoked when the default literal is rendered,
// e.g. DefaultFunc(uuid.New).
func (b *UUIDBuilder) DefaultFunc(fn func() uuid.UUID) *UUIDBuilder {
	b.desc.Default = fn
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *UUIDBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}
