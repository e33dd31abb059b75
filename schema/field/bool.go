package field

// Bool returns a new boolean field builder.
func Bool(name string) *BoolBuilder {
	return &BoolBuilder{desc: &Descriptor{Type: TypeBool, Name: name}}
}

// BoolBuilder configures a boolean column.
type BoolBuilder struct {
	desc *Descriptor
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *BoolBuilder) Nullable() *BoolBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *BoolBuilder) Unique() *BoolBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column. It is rendered bare
// (true/false) in the DDL, not quoted.
func (b *BoolBuilder) Default(v bool) *BoolBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a producer invoked when the default literal is rendered.
func (b *BoolBuilder) DefaultFunc(fn func() bool) *BoolBuilder {
	b.desc.Default = fn
	return b
}

// Descriptor finalizes the builder. Construction-time constraint checks run
// here, once; violations are recorded on Descriptor.Err.
func (b *BoolBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}
