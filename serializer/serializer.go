// Package serializer shapes stored rows into outward-facing payloads.
//
// A serializer is bound to a table and an explicit list of payload fields.
// Each field is either a column of the table, converted with the column's
// Serialize operation, or a registered method computing a derived value:
//
//	s, err := serializer.New(books, "name", "price", "summary")
//	s.Method("summary", func(row map[string]any) any {
//	    return fmt.Sprintf("%v (%v)", row["name"], row["date_created"])
//	})
//	payload, err := s.JSON(row)
package serializer

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/pcinkh/asyncorm/schema"
)

// Method computes a derived payload attribute from a row.
type Method func(row map[string]any) any

// Serializer converts rows of one table into transport-ready maps.
// Configure it fully before sharing it between goroutines; Serialize and
// the encoding helpers are read-only.
type Serializer struct {
	table   *schema.Table
	fields  []string
	methods map[string]Method
}

// New returns a serializer for the given table and payload fields.
func New(table *schema.Table, fields ...string) (*Serializer, error) {
	if table == nil {
		return nil, fmt.Errorf("asyncorm/serializer: the serializer has to define the model it's serializing")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("asyncorm/serializer: the serializer has to define the fields to serialize")
	}
	return &Serializer{
		table:   table,
		fields:  fields,
		methods: make(map[string]Method),
	}, nil
}

// Method registers a derived attribute. It takes precedence over a column
// of the same name.
func (s *Serializer) Method(name string, fn Method) *Serializer {
	s.methods[name] = fn
	return s
}

// Serialize shapes a row into a payload map. A configured field that is
// neither a registered method nor a column of the table is an error.
func (s *Serializer) Serialize(row map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.fields))
	for _, name := range s.fields {
		if fn, ok := s.methods[name]; ok {
			out[name] = fn(row)
			continue
		}
		d, ok := s.table.Field(name)
		if !ok {
			return nil, fmt.Errorf("asyncorm/serializer: %q is not a correct argument for model %q", name, s.table.Name())
		}
		v, err := d.Serialize(row[name])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// JSON serializes a row and encodes the payload as json.
func (s *Serializer) JSON(row map[string]any) ([]byte, error) {
	payload, err := s.Serialize(row)
	if err != nil {
		return nil, err
	}
	return json.Marshal(payload)
}

// Msgpack serializes a row and encodes the payload as msgpack.
func (s *Serializer) Msgpack(row map[string]any) ([]byte, error) {
	payload, err := s.Serialize(row)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(payload)
}
