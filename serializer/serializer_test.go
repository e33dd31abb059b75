package serializer_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/pcinkh/asyncorm/schema"
	"github.com/pcinkh/asyncorm/schema/field"
	"github.com/pcinkh/asyncorm/serializer"
)

func bookTable(t *testing.T) *schema.Table {
	t.Helper()
	tbl, err := schema.New("library",
		field.Char("name").MaxLen(50),
		field.Int("pages").Nullable(),
		field.Date("date_created").AutoNow(),
	)
	require.NoError(t, err)
	return tbl
}

func TestNew(t *testing.T) {
	t.Parallel()
	_, err := serializer.New(nil, "name")
	require.EqualError(t, err, "asyncorm/serializer: the serializer has to define the model it's serializing")

	_, err = serializer.New(bookTable(t))
	require.EqualError(t, err, "asyncorm/serializer: the serializer has to define the fields to serialize")
}

func TestSerialize(t *testing.T) {
	t.Parallel()
	s, err := serializer.New(bookTable(t), "name", "pages", "date_created")
	require.NoError(t, err)

	created := time.Date(1969, 3, 31, 12, 0, 0, 0, time.UTC)
	out, err := s.Serialize(map[string]any{
		"name":         "Slaughterhouse-Five",
		"pages":        275,
		"date_created": created,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":         "Slaughterhouse-Five",
		"pages":        275,
		"date_created": "1969-03-31",
	}, out)
}

func TestSerializeUnknownField(t *testing.T) {
	t.Parallel()
	s, err := serializer.New(bookTable(t), "name", "price")
	require.NoError(t, err)

	_, err = s.Serialize(map[string]any{"name": "Cat's Cradle"})
	require.EqualError(t, err, `asyncorm/serializer: "price" is not a correct argument for model "library"`)
}

func TestMethod(t *testing.T) {
	t.Parallel()
	s, err := serializer.New(bookTable(t), "name", "summary")
	require.NoError(t, err)
	s.Method("summary", func(row map[string]any) any {
		return fmt.Sprintf("%v, %v pages", row["name"], row["pages"])
	})

	out, err := s.Serialize(map[string]any{"name": "Mother Night", "pages": 282})
	require.NoError(t, err)
	assert.Equal(t, "Mother Night, 282 pages", out["summary"])
}

func TestMethodShadowsColumn(t *testing.T) {
	t.Parallel()
	s, err := serializer.New(bookTable(t), "name")
	require.NoError(t, err)
	s.Method("name", func(map[string]any) any { return "shadowed" })

	out, err := s.Serialize(map[string]any{"name": "Player Piano"})
	require.NoError(t, err)
	assert.Equal(t, "shadowed", out["name"])
}

func TestJSON(t *testing.T) {
	t.Parallel()
	s, err := serializer.New(bookTable(t), "name", "pages")
	require.NoError(t, err)

	b, err := s.JSON(map[string]any{"name": "Galapagos", "pages": 295})
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, map[string]any{"name": "Galapagos", "pages": float64(295)}, got)
}

func TestMsgpack(t *testing.T) {
	t.Parallel()
	s, err := serializer.New(bookTable(t), "name")
	require.NoError(t, err)

	b, err := s.Msgpack(map[string]any{"name": "Jailbird"})
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, msgpack.Unmarshal(b, &got))
	assert.Equal(t, map[string]any{"name": "Jailbird"}, got)
}
