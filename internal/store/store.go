package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

// Collection persists one record type as a single JSON document of the
// shape {"<name>": [ ...records ]}. Reads and writes are whole-document;
// there is no partial-record primitive below this layer. A write replaces
// the collection with the caller's view, so the last writer wins across
// processes. Within a process the collection lock serializes
// read-modify-write sequences.
type Collection[T any] struct {
	name string
	path string
	mu   sync.Mutex
}

// NewCollection binds a collection named name to <dir>/<name>.json.
func NewCollection[T any](dir, name string) *Collection[T] {
	return &Collection[T]{
		name: name,
		path: filepath.Join(dir, name+".json"),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// ReadAll returns every record in the collection. A missing file is an
// empty collection; an unreadable or malformed file is an error, never
// fabricated data.
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.read()
}

// WriteAll replaces the entire collection.
func (c *Collection[T]) WriteAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.write(records)
}

// Update applies fn to the current records and persists its result, all
// under the collection lock.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read()
	if err != nil {
		return err
	}
	out, err := fn(records)
	if err != nil {
		return err
	}
	return c.write(out)
}

func (c *Collection[T]) read() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", c.name, err)
	}

	var doc map[string][]T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse collection %s: %w", c.name, err)
	}
	records, ok := doc[c.name]
	if !ok || records == nil {
		return []T{}, nil
	}
	return records, nil
}

func (c *Collection[T]) write(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(map[string][]T{c.name: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection %s: %w", c.name, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.name, err)
	}
	return nil
}
