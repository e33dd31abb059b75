package field

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pcinkh/asyncorm"
)

// Type is the closed set of column kinds. New kinds are not expected to be
// added without touching this package.
type Type uint8

// Column kinds.
const (
	TypeInvalid Type = iota
	TypePk
	TypeBool
	TypeChar
	TypeEmail
	TypeJSON
	TypeInt
	TypeDecimal
	TypeDate
	TypeUUID
	TypeForeignKey
	TypeManyToMany
	endTypes
)

var typeNames = [endTypes]string{
	TypeInvalid:    "Invalid",
	TypePk:         "Pk",
	TypeBool:       "Bool",
	TypeChar:       "Char",
	TypeEmail:      "Email",
	TypeJSON:       "JSON",
	TypeInt:        "Int",
	TypeDecimal:    "Decimal",
	TypeDate:       "Date",
	TypeUUID:       "UUID",
	TypeForeignKey: "ForeignKey",
	TypeManyToMany: "ManyToMany",
}

// String returns the kind name as used in error messages.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return fmt.Sprintf("invalid(%d)", t)
}

// Relation reports whether the kind references rows of another table.
func (t Type) Relation() bool {
	return t == TypeForeignKey || t == TypeManyToMany
}

// Choice pairs an allowed value with its display label.
// Declaration order is preserved.
type Choice struct {
	Value any
	Label string
}

// Descriptor holds the immutable configuration of a single column. It is
// built once by a kind builder at schema-definition time and shared by every
// row of the table it describes. None of its methods mutate it, so any
// number of goroutines may use a descriptor concurrently once construction
// completed.
type Descriptor struct {
	Type     Type   // Column kind
	Name     string // Column name
	Nullable bool   // NULL instead of NOT NULL
	Unique   bool   // UNIQUE constraint
	Default  any    // Literal default or nullary producer
	Choices  []Choice

	MaxLen        int    // Char, Email and JSON kinds
	MaxDigits     int    // Decimal kind
	DecimalPlaces int    // Decimal kind
	StrictDigits  bool   // Enforce digit counts at sanitize time
	AutoNow       bool   // Date kind: DEFAULT now() when no explicit default
	Layout        string // Date kind: serialization layout

	RefTable   string // Relation kinds: referenced table
	OwnerTable string // Relation kinds: owning table, bound by the schema layer

	Err error // Declaration error recorded by the builder
}

// finalize runs the constraint validator and returns the descriptor.
// Builders call it from their Descriptor method; a recorded error is never
// overwritten.
func (d *Descriptor) finalize() *Descriptor {
	if d.Err == nil {
		d.Err = d.checkDeclaration()
	}
	return d
}

// checkDeclaration runs the construction-time constraint checks. It is
// invoked exactly once, when a builder is finalized, never per row.
func (d *Descriptor) checkDeclaration() error {
	kind := d.Type.String()
	switch d.Type {
	case TypeChar, TypeEmail, TypeJSON:
		if d.MaxLen <= 0 {
			return asyncorm.NewDeclarationError(kind, "MaxLen", "requires a positive max length")
		}
	case TypeDecimal:
		if d.MaxDigits <= 0 {
			return asyncorm.NewDeclarationError(kind, "Digits", "requires a positive digit count")
		}
		if d.DecimalPlaces < 0 || d.DecimalPlaces > d.MaxDigits {
			return asyncorm.NewDeclarationError(kind, "Digits", "decimal places must be between 0 and the digit count")
		}
	case TypeForeignKey, TypeManyToMany:
		if d.RefTable == "" {
			return asyncorm.NewDeclarationError(kind, "References", "requires a referenced table")
		}
	}
	return d.checkColumn()
}

// checkColumn validates the column identifier. The "__" separator and
// leading/trailing underscores are reserved for relation traversal in the
// query layer.
func (d *Descriptor) checkColumn() error {
	kind := d.Type.String()
	switch name := d.Name; {
	case name == "":
		return asyncorm.NewDeclarationError(kind, "Name", "column name cannot be empty")
	case strings.Contains(name, "__"):
		return asyncorm.NewDeclarationError(kind, "Name", "column name %q cannot contain %q", name, "__")
	case strings.HasPrefix(name, "_"):
		return asyncorm.NewDeclarationError(kind, "Name", "column name %q cannot start with %q", name, "_")
	case strings.HasSuffix(name, "_"):
		return asyncorm.NewDeclarationError(kind, "Name", "column name %q cannot end with %q", name, "_")
	}
	return nil
}

// Validate checks a value against the descriptor's constraints: nullability,
// choice-domain membership and runtime type, plus kind refinements (email
// format, element-wise checks for multi-target references). It never
// mutates descriptor state.
func (d *Descriptor) Validate(v any) error {
	if v == nil {
		if d.Nullable {
			return nil
		}
		return asyncorm.NewValidationErrorf(d.Name, "null value in NOT NULL field")
	}
	if len(d.Choices) > 0 && !d.inChoices(v) {
		return asyncorm.NewValidationErrorf(d.Name, "%v not in field choices", v)
	}
	switch d.Type {
	case TypeEmail:
		s, ok := v.(string)
		if !ok {
			return d.wrongType(v)
		}
		if !emailRe.MatchString(s) {
			return asyncorm.NewValidationErrorf(d.Name, "%q is not a valid email address", s)
		}
	case TypeUUID:
		switch v := v.(type) {
		case uuid.UUID:
		case string:
			if _, err := uuid.Parse(v); err != nil {
				return asyncorm.NewValidationErrorf(d.Name, "%q is not a valid uuid", v)
			}
		default:
			return d.wrongType(v)
		}
	case TypeManyToMany:
		elems := relationElems(v)
		if elems == nil {
			return d.wrongType(v)
		}
		for _, id := range elems {
			if _, ok := asInt64(id); !ok {
				return d.wrongType(id)
			}
		}
	default:
		if !d.acceptsType(v) {
			return d.wrongType(v)
		}
	}
	return nil
}

func (d *Descriptor) wrongType(v any) error {
	return asyncorm.NewValidationErrorf(d.Name, "%v is a wrong datatype for %s field %q", v, d.Type, d.Name)
}

// acceptsType reports whether the value's runtime type is among the kind's
// internal types.
func (d *Descriptor) acceptsType(v any) bool {
	switch d.Type {
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeChar, TypeEmail:
		_, ok := v.(string)
		return ok
	case TypeJSON:
		switch v.(type) {
		case map[string]any, []any, string:
			return true
		}
		return false
	case TypePk, TypeInt, TypeForeignKey:
		_, ok := asInt64(v)
		return ok
	case TypeDecimal:
		switch v.(type) {
		case decimal.Decimal, float64:
			return true
		}
		_, ok := asInt64(v)
		return ok
	case TypeDate:
		_, ok := v.(time.Time)
		return ok
	case TypeUUID:
		switch v.(type) {
		case uuid.UUID, string:
			return true
		}
		return false
	case TypeManyToMany:
		return relationElems(v) != nil
	}
	return false
}

func (d *Descriptor) inChoices(v any) bool {
	for _, c := range d.Choices {
		if equalValue(c.Value, v) {
			return true
		}
	}
	return false
}

// Sanitize converts a value into its literal textual SQL form, validating as
// a side effect. A nil value yields the bare NULL token once the nullability
// check passed. A failed sanitize never produces a partial literal.
func (d *Descriptor) Sanitize(v any) (string, error) {
	if v == nil {
		if !d.Nullable {
			return "", asyncorm.NewValidationErrorf(d.Name, "null value in NOT NULL field")
		}
		return "NULL", nil
	}
	if err := d.Validate(v); err != nil {
		return "", err
	}
	switch d.Type {
	case TypeBool:
		return strconv.FormatBool(v.(bool)), nil
	case TypeChar, TypeEmail:
		s := v.(string)
		if n := utf8.RuneCountInString(s); n > d.MaxLen {
			return "", d.tooLong(n)
		}
		return quote(s), nil
	case TypeJSON:
		return d.sanitizeJSON(v)
	case TypePk, TypeInt, TypeForeignKey:
		i, _ := asInt64(v)
		return strconv.FormatInt(i, 10), nil
	case TypeDecimal:
		return d.sanitizeDecimal(v)
	case TypeDate:
		return quote(v.(time.Time).Format(sqlTimestampLayout)), nil
	case TypeUUID:
		switch v := v.(type) {
		case uuid.UUID:
			return quote(v.String()), nil
		default:
			id, _ := uuid.Parse(v.(string))
			return quote(id.String()), nil
		}
	case TypeManyToMany:
		ids := relationElems(v)
		if len(ids) == 0 {
			return "", asyncorm.NewValidationErrorf(d.Name, "empty sequence of referenced ids")
		}
		parts := make([]string, len(ids))
		for i, id := range ids {
			n, _ := asInt64(id)
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ", "), nil
	}
	return "", asyncorm.NewValidationErrorf(d.Name, "cannot sanitize %s field", d.Type)
}

func (d *Descriptor) tooLong(n int) error {
	return asyncorm.NewValidationErrorf(d.Name, "value of length %d is bigger than the max length defined (%d)", n, d.MaxLen)
}

// sanitizeJSON accepts either a structured value or its textual encoding.
// Textual input is parsed first, so malformed text fails before any output
// is produced, then the value is re-encoded to its canonical text.
func (d *Descriptor) sanitizeJSON(v any) (string, error) {
	if s, ok := v.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return "", asyncorm.NewValidationErrorf(d.Name, "value cannot be decoded as json")
		}
		v = decoded
	}
	text, err := json.Marshal(v)
	if err != nil {
		return "", asyncorm.NewValidationErrorf(d.Name, "value cannot be encoded as json")
	}
	if n := utf8.RuneCount(text); n > d.MaxLen {
		return "", d.tooLong(n)
	}
	return quote(string(text)), nil
}

// sanitizeDecimal formats without rounding. The configured digit counts are
// DDL-only unless StrictDigits was set on the builder.
func (d *Descriptor) sanitizeDecimal(v any) (string, error) {
	var text string
	switch v := v.(type) {
	case decimal.Decimal:
		text = v.String()
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		i, _ := asInt64(v)
		text = strconv.FormatInt(i, 10)
	}
	if d.StrictDigits {
		digits, places := countDigits(text)
		if digits > d.MaxDigits || places > d.DecimalPlaces {
			return "", asyncorm.NewValidationErrorf(d.Name, "%s exceeds decimal(%d,%d)", text, d.MaxDigits, d.DecimalPlaces)
		}
	}
	return text, nil
}

// Serialize converts a stored value into a representation suitable for
// outward-facing payloads. Identity for most kinds; Date values are
// formatted with the configured layout and UUID values as canonical text.
func (d *Descriptor) Serialize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch d.Type {
	case TypeDate:
		t, ok := v.(time.Time)
		if !ok {
			return nil, d.wrongType(v)
		}
		layout := d.Layout
		if layout == "" {
			layout = time.DateOnly
		}
		return t.Format(layout), nil
	case TypeUUID:
		switch v := v.(type) {
		case uuid.UUID:
			return v.String(), nil
		case string:
			id, err := uuid.Parse(v)
			if err != nil {
				return nil, asyncorm.NewValidationErrorf(d.Name, "%q is not a valid uuid", v)
			}
			return id.String(), nil
		default:
			return nil, d.wrongType(v)
		}
	}
	return v, nil
}

// Recompose converts a raw stored representation back into the application
// value. Identity for most kinds; textual JSON is parsed back into its
// structured form and UUID text into uuid.UUID.
func (d *Descriptor) Recompose(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch d.Type {
	case TypeJSON:
		s, ok := v.(string)
		if !ok {
			return v, nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil, asyncorm.NewValidationErrorf(d.Name, "stored value cannot be decoded as json")
		}
		return decoded, nil
	case TypeUUID:
		s, ok := v.(string)
		if !ok {
			return v, nil
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, asyncorm.NewValidationErrorf(d.Name, "stored value %q is not a valid uuid", s)
		}
		return id, nil
	}
	return v, nil
}

// sqlTimestampLayout is the literal layout for timestamp columns.
const sqlTimestampLayout = "2006-01-02 15:04:05"

// quote renders a single-quoted SQL string literal. Embedded quotes are
// doubled, so caller input cannot terminate the literal early.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// asInt64 normalizes the accepted integer widths.
func asInt64(v any) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// relationElems returns the identifier elements of a multi-target reference
// value, or nil if the value is neither an identifier nor a sequence of them.
// A single identifier is returned as a one-element sequence.
func relationElems(v any) []any {
	switch v := v.(type) {
	case []any:
		return v
	case []int:
		elems := make([]any, len(v))
		for i, id := range v {
			elems[i] = id
		}
		return elems
	case []int64:
		elems := make([]any, len(v))
		for i, id := range v {
			elems[i] = id
		}
		return elems
	case int, int32, int64:
		return []any{v}
	}
	return nil
}

// equalValue compares a candidate value against a choice key, normalizing
// integer widths so Choices(Choice{Value: 1}) matches an int64 row value.
// Structured keys (maps, slices) are compared structurally; the == operator
// would panic on them.
func equalValue(key, v any) bool {
	if ki, ok := asInt64(key); ok {
		vi, ok := asInt64(v)
		return ok && ki == vi
	}
	return reflect.DeepEqual(key, v)
}

// countDigits reports the total digit count and the decimal places of a
// plain numeric literal.
func countDigits(text string) (digits, places int) {
	text = strings.TrimPrefix(text, "-")
	whole, frac, _ := strings.Cut(text, ".")
	return len(whole) + len(frac), len(frac)
}

// invokeDefault resolves a configured default: a nullary producer is
// invoked, anything else is used directly. The produced value is formatted
// by the same rule as a literal default.
func invokeDefault(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return v
	}
	out := rv.Call(nil)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}
