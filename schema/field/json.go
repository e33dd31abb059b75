package field

// JSON returns a new structured-text field builder. Values may be
// structured (map[string]any, []any) or their textual json encoding; both
// are stored in their canonical text form. MaxLen is required and bounds
// the canonical text.
func JSON(name string) *JSONBuilder {
	return &JSONBuilder{desc: &Descriptor{Type: TypeJSON, Name: name}}
}

// JSONBuilder configures a json column stored as varchar.
type JSONBuilder struct {
	desc *Descriptor
}

// MaxLen sets the maximum length of the canonical json text, counted in
// characters as varchar(n) does.
func (b *JSONBuilder) MaxLen(i int) *JSONBuilder {
	b.desc.MaxLen = i
	return b
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *JSONBuilder) Nullable() *JSONBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *JSONBuilder) Unique() *JSONBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column.
func (b *JSONBuilder) Default(v map[string]any) *JSONBuilder {
	b.desc.Default = v
	return b
}

// Choices restricts the legal value domain to the given keys.
func (b *JSONBuilder) Choices(choices ...Choice) *JSONBuilder {
	b.desc.Choices = choices
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *JSONBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}
