package mixin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcinkh/asyncorm/schema"
	"github.com/pcinkh/asyncorm/schema/field"
	"github.com/pcinkh/asyncorm/schema/mixin"
)

type audit struct {
	mixin.Schema
}

func (audit) Fields() []schema.Field {
	return []schema.Field{
		field.Date("date_created").AutoNow(),
		field.Char("created_by").MaxLen(50).Nullable(),
	}
}

func TestTimestamps(t *testing.T) {
	t.Parallel()
	fields := mixin.Timestamps{}.Fields()
	require.Len(t, fields, 1)
	d := fields[0].Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "date_created", d.Name)
	assert.True(t, d.AutoNow)
	assert.False(t, d.Nullable)
}

func TestSoftDelete(t *testing.T) {
	t.Parallel()
	fields := mixin.SoftDelete{}.Fields()
	require.Len(t, fields, 1)
	d := fields[0].Descriptor()
	require.NoError(t, d.Err)
	assert.Equal(t, "date_deleted", d.Name)
	assert.True(t, d.Nullable)
}

func TestFields(t *testing.T) {
	t.Parallel()
	fields := mixin.Fields(mixin.Timestamps{}, mixin.SoftDelete{})
	require.Len(t, fields, 2)

	tbl, err := schema.New("library", append(
		mixin.Fields(audit{}),
		field.Char("name").MaxLen(50),
	)...)
	require.NoError(t, err)
	names := make([]string, 0, len(tbl.Fields()))
	for _, d := range tbl.Fields() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"id", "date_created", "created_by", "name"}, names)
}

func TestEmptyMixin(t *testing.T) {
	t.Parallel()
	assert.Empty(t, mixin.Fields(mixin.Schema{}))
}
