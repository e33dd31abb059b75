package field

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// columnFragment assembles the typed pieces of a single column definition
// and renders them deterministically, always in the order
// <name> <type> <NULL|NOT NULL> [DEFAULT <literal>] [UNIQUE].
type columnFragment struct {
	name        string
	typeSyntax  string
	nullable    bool
	defaultExpr string
	unique      bool
}

func (f columnFragment) String() string {
	var b strings.Builder
	b.WriteString(f.name)
	b.WriteByte(' ')
	b.WriteString(f.typeSyntax)
	if f.nullable {
		b.WriteString(" NULL")
	} else {
		b.WriteString(" NOT NULL")
	}
	if f.defaultExpr != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(f.defaultExpr)
	}
	if f.unique {
		b.WriteString(" UNIQUE")
	}
	return b.String()
}

// CreationFragment produces the column definition contributed by this field
// to a CREATE TABLE statement. A multi-target reference describes a join
// table rather than a single column, so it bypasses the column fragment
// assembly entirely: a join table has no single nullable/default/unique
// column to suffix.
func (d *Descriptor) CreationFragment() string {
	if d.Type == TypeManyToMany {
		return fmt.Sprintf("%s integer references %s not null,\n%s integer references %s not null",
			d.OwnerTable, d.OwnerTable, d.RefTable, d.RefTable)
	}
	return columnFragment{
		name:        d.Name,
		typeSyntax:  d.typeSyntax(),
		nullable:    d.Nullable,
		defaultExpr: d.defaultExpr(),
		unique:      d.Unique,
	}.String()
}

// typeSyntax returns the column type token for the kind.
func (d *Descriptor) typeSyntax() string {
	switch d.Type {
	case TypePk:
		return "serial primary key"
	case TypeBool:
		return "boolean"
	case TypeChar, TypeEmail, TypeJSON:
		return fmt.Sprintf("varchar(%d)", d.MaxLen)
	case TypeInt:
		return "integer"
	case TypeDecimal:
		return fmt.Sprintf("decimal(%d,%d)", d.MaxDigits, d.DecimalPlaces)
	case TypeDate:
		return "timestamp"
	case TypeUUID:
		return "uuid"
	case TypeForeignKey:
		return "integer references " + d.RefTable
	}
	return d.Type.String()
}

// defaultExpr renders the DEFAULT literal. An explicit default always takes
// precedence over AutoNow; only when no default is configured does AutoNow
// contribute DEFAULT now(). A boolean default is written bare, everything
// else as a quoted string literal.
func (d *Descriptor) defaultExpr() string {
	if d.Default == nil {
		if d.Type == TypeDate && d.AutoNow {
			return "now()"
		}
		return ""
	}
	v := invokeDefault(d.Default)
	if v == nil {
		return ""
	}
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b)
	}
	return quote(plainText(v))
}

// plainText renders a value as unquoted literal text.
func plainText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int, int32, int64:
		i, _ := asInt64(v)
		return strconv.FormatInt(i, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case decimal.Decimal:
		return v.String()
	case time.Time:
		return v.Format(sqlTimestampLayout)
	case uuid.UUID:
		return v.String()
	case map[string]any, []any:
		text, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(text)
	}
	return fmt.Sprintf("%v", v)
}
