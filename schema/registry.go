package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotRegistered is returned when looking up a table that was never
// registered.
var ErrNotRegistered = errors.New("asyncorm/schema: table not registered")

var registry = struct {
	sync.RWMutex
	tables map[string]*Table
}{tables: make(map[string]*Table)}

// Register adds a table to the process-wide registry so other modules can
// resolve it by name. Registration happens during schema definition, before
// concurrent row processing begins.
func Register(t *Table) error {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.tables[t.name]; ok {
		return fmt.Errorf("asyncorm/schema: table %q already registered", t.name)
	}
	registry.tables[t.name] = t
	return nil
}

// Lookup resolves a registered table by name.
func Lookup(name string) (*Table, error) {
	registry.RLock()
	defer registry.RUnlock()
	t, ok := registry.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}
	return t, nil
}

// Tables returns all registered tables sorted by name.
func Tables() []*Table {
	registry.RLock()
	defer registry.RUnlock()
	out := make([]*Table, 0, len(registry.tables))
	for _, t := range registry.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
