package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Reader parses a pitch table.
type Reader interface {
	Read(r io.Reader) (*Table, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in readers. sheet
// selects the worksheet of xlsx inputs; empty means the first.
func DefaultRegistry(sheet string) *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{Sheet: sheet})
	return r
}

// Load reads the table at path. An empty format is inferred from the file
// extension.
func (r *Registry) Load(path, format string) (*Table, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	rd := r.Get(format)
	if rd == nil {
		return nil, fmt.Errorf("no reader for format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	tbl, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return tbl, nil
}
