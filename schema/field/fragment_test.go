package field_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcinkh/asyncorm/schema/field"
)

func TestCreationFragment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fd   *field.Descriptor
		want string
	}{
		{
			"Pk",
			field.Pk().Descriptor(),
			"id serial primary key NOT NULL",
		},
		{
			"Bool",
			field.Bool("active").Descriptor(),
			"active boolean NOT NULL",
		},
		{
			"CharNullableUnique",
			field.Char("name").MaxLen(50).Nullable().Unique().Descriptor(),
			"name varchar(50) NULL UNIQUE",
		},
		{
			"CharDefault",
			field.Char("status").MaxLen(16).Default("pending").Descriptor(),
			"status varchar(16) NOT NULL DEFAULT 'pending'",
		},
		{
			"Int",
			field.Int("quantity").Nullable().Descriptor(),
			"quantity integer NULL",
		},
		{
			"IntDefault",
			field.Int("quantity").Default(1).Descriptor(),
			"quantity integer NOT NULL DEFAULT '1'",
		},
		{
			"Decimal",
			field.Decimal("price").Digits(10, 2).Nullable().Descriptor(),
			"price decimal(10,2) NULL",
		},
		{
			"JSON",
			field.JSON("content").MaxLen(100).Descriptor(),
			"content varchar(100) NOT NULL",
		},
		{
			"Date",
			field.Date("date_created").Nullable().Descriptor(),
			"date_created timestamp NULL",
		},
		{
			"UUID",
			field.UUID("uid").Unique().Descriptor(),
			"uid uuid NOT NULL UNIQUE",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.fd.Err)
			assert.Equal(t, tt.want, tt.fd.CreationFragment())
		})
	}
}

func TestBoolDefaultFragment(t *testing.T) {
	t.Parallel()
	fd := field.Bool("active").Default(true).Descriptor()
	require.NoError(t, fd.Err)
	frag := fd.CreationFragment()
	// a boolean default is written bare, not quoted
	assert.True(t, strings.HasSuffix(frag, "DEFAULT true"), frag)

	fd = field.Bool("active").Default(false).Unique().Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "active boolean NOT NULL DEFAULT false UNIQUE", fd.CreationFragment())
}

func TestDefaultFunc(t *testing.T) {
	t.Parallel()
	fd := field.Char("token").MaxLen(10).DefaultFunc(func() string { return "abc" }).Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "token varchar(10) NOT NULL DEFAULT 'abc'", fd.CreationFragment())

	// the produced value's runtime type drives the formatting rule,
	// same as a literal default
	bd := field.Bool("active").DefaultFunc(func() bool { return true }).Descriptor()
	require.NoError(t, bd.Err)
	assert.True(t, strings.HasSuffix(bd.CreationFragment(), "DEFAULT true"))
}

func TestAutoNowFragment(t *testing.T) {
	t.Parallel()
	fd := field.Date("date_created").AutoNow().Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "date_created timestamp NOT NULL DEFAULT now()", fd.CreationFragment())

	// an explicit default always takes precedence over AutoNow
	when := time.Date(2017, 6, 1, 12, 0, 0, 0, time.UTC)
	fd = field.Date("date_created").AutoNow().Default(when).Descriptor()
	require.NoError(t, fd.Err)
	frag := fd.CreationFragment()
	assert.NotContains(t, frag, "now()")
	assert.Equal(t, "date_created timestamp NOT NULL DEFAULT '2017-06-01 12:00:00'", frag)
}

func TestForeignKeyFragment(t *testing.T) {
	t.Parallel()
	fd := field.ForeignKey("author").References("users").Nullable().Descriptor()
	require.NoError(t, fd.Err)
	frag := fd.CreationFragment()
	assert.Equal(t, "author integer references users NULL", frag)
	assert.True(t, strings.HasSuffix(frag, " NULL"))
	assert.NotContains(t, frag, "UNIQUE")
	assert.NotContains(t, frag, "DEFAULT")

	fd = field.ForeignKey("author").References("users").Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "author integer references users NOT NULL", fd.CreationFragment())
}

func TestManyToManyFragment(t *testing.T) {
	t.Parallel()
	fd := field.ManyToMany("org").References("organizations").Descriptor()
	require.NoError(t, fd.Err)
	fd.OwnerTable = "developers"
	assert.Equal(t,
		"developers integer references developers not null,\n"+
			"organizations integer references organizations not null",
		fd.CreationFragment())
}

func TestDecimalDefaultFragment(t *testing.T) {
	t.Parallel()
	fd := field.Decimal("price").Default(decimal.RequireFromString("9.99")).Descriptor()
	require.NoError(t, fd.Err)
	assert.Equal(t, "price decimal(10,2) NOT NULL DEFAULT '9.99'", fd.CreationFragment())
}
