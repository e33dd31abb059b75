package field

import "time"

// Date returns a new timestamp field builder.
func Date(name string) *DateBuilder {
	return &DateBuilder{desc: &Descriptor{Type: TypeDate, Name: name}}
}

// DateBuilder configures a timestamp column.
type DateBuilder struct {
	desc *Descriptor
}

// AutoNow makes the column default to now() when no explicit default is
// configured. An explicit default always wins over AutoNow.
func (b *DateBuilder) AutoNow() *DateBuilder {
	b.desc.AutoNow = true
	return b
}

// Format sets the layout used by Serialize. Defaults to time.DateOnly.
func (b *DateBuilder) Format(layout string) *DateBuilder {
	b.desc.Layout = layout
	return b
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *DateBuilder) Nullable() *DateBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *DateBuilder) Unique() *DateBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column.
func (b *DateBuilder) Default(v time.Time) *DateBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a producer invoked when the default literal is rendered.
func (b *DateBuilder) DefaultFunc(fn func() time.Time) *DateBuilder {
	b.desc.Default = fn
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *DateBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}
