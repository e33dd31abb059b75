package field

import "github.com/shopspring/decimal"

// Pk returns a new serial primary key builder named "id".
func Pk() *PkBuilder {
	return &PkBuilder{desc: &Descriptor{Type: TypePk, Name: "id"}}
}

// PkBuilder configures the serial primary key column.
type PkBuilder struct {
	desc *Descriptor
}

// Column overrides the default "id" column name.
func (b *PkBuilder) Column(name string) *PkBuilder {
	b.desc.Name = name
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *PkBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}

// Int returns a new integer field builder.
func Int(name string) *IntBuilder {
	return &IntBuilder{desc: &Descriptor{Type: TypeInt, Name: name}}
}

// IntBuilder configures an integer column.
type IntBuilder struct {
	desc *Descriptor
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *IntBuilder) Nullable() *IntBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *IntBuilder) Unique() *IntBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column.
func (b *IntBuilder) Default(v int) *IntBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a producer invoked when the default literal is rendered.
func (b *IntBuilder) DefaultFunc(fn func() int) *IntBuilder {
	b.desc.Default = fn
	return b
}

// Choices restricts the legal value domain to the given keys.
func (b *IntBuilder) Choices(choices ...Choice) *IntBuilder {
	b.desc.Choices = choices
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *IntBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}

// Decimal returns a new decimal field builder with the default
// decimal(10,2) precision.
func Decimal(name string) *DecimalBuilder {
	return &DecimalBuilder{desc: &Descriptor{
		Type:          TypeDecimal,
		Name:          name,
		MaxDigits:     10,
		DecimalPlaces: 2,
	}}
}

// DecimalBuilder configures a decimal column. Values may be
// decimal.Decimal, float64 or integers.
type DecimalBuilder struct {
	desc *Descriptor
}

// Digits sets the total digit count and the decimal places emitted in the
// DDL. The counts are not enforced at sanitize time unless StrictDigits
// is also set.
func (b *DecimalBuilder) Digits(maxDigits, decimalPlaces int) *DecimalBuilder {
	b.desc.MaxDigits = maxDigits
	b.desc.DecimalPlaces = decimalPlaces
	return b
}

// StrictDigits turns on sanitize-time enforcement of the configured
// digit counts.
func (b *DecimalBuilder) StrictDigits() *DecimalBuilder {
	b.desc.StrictDigits = true
	return b
}

// Nullable makes the column NULL instead of NOT NULL.
func (b *DecimalBuilder) Nullable() *DecimalBuilder {
	b.desc.Nullable = true
	return b
}

// Unique adds a UNIQUE constraint to the column.
func (b *DecimalBuilder) Unique() *DecimalBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the column.
func (b *DecimalBuilder) Default(v decimal.Decimal) *DecimalBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets a producer invoked when the default literal is rendered.
func (b *DecimalBuilder) DefaultFunc(fn func() decimal.Decimal) *DecimalBuilder {
	b.desc.Default = fn
	return b
}

// Choices restricts the legal value domain to the given keys.
func (b *DecimalBuilder) Choices(choices ...Choice) *DecimalBuilder {
	b.desc.Choices = choices
	return b
}

// Descriptor finalizes the builder and runs the constraint validator.
func (b *DecimalBuilder) Descriptor() *Descriptor {
	return b.desc.finalize()
}
