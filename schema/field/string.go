package field

import "regexp"

var emailRe = regexp.MustCompile(`^[\w][\w0-9_.+-]+@[\w0-9-]+\.[\w0-9-.]+$`)

// Char returns a new character field builder. MaxLen is required.
func Char(name string) *CharBuilder {
	return &CharBuilder{desc: &Descriptor{Type: TypeChar, Name: name}}
}

// Email returns a new email field builder. It behaves like Char with an
// additional address-format check during validation.
func Email(name string) *CharBuilder {
	return &CharBuilder{desc: &Descriptor{Type: TypeEmail, Name: name}}
}

// CharBuilder configures a varchar column.
type CharBuilder struct {
	desc *Descriptor
}

// MaxLen sets the maximum length of the column, counted in characters as
// varchar(n) does. Values longer than this fail at sanitize time.
func (b *CharBuilder) MaxLen(i int) *CharBuilder {
	b.desc.MaxLen = i
	return b
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *CharBuilder) Nullable() *CharBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *CharBuilder) Unique() *CharBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column.
func (b *CharBuilder) Default(v string) *CharBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a producer invoked when the default literal is rendered.
func (b *CharBuilder) DefaultFunc(fn func() string) *CharBuilder {
	b.desc.Default = fn
	return b
}

// Choices restricts the legal value domain to the given keys.
// Declaration order is preserved.
func (b *CharBuilder) Choices(choices ...Choice) *CharBuilder {
	b.desc.Choices = choices
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *CharBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}
