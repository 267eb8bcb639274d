// Package importer seeds a session ledger from CSV files of past
// transactions. Files are input only; the ledger is never written
// back.
package importer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tally-dev/tally/internal/ledger"
)

// Parser converts a CSV file into ledger add parameters.
type Parser interface {
	Parse(r io.Reader) ([]ledger.AddParams, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&StandardParser{})
	return r
}

// ImportFile parses path with the named parser and adds every row to
// the ledger. Returns the number of transactions added. Nothing is
// added unless the whole file parses.
func ImportFile(l *ledger.Ledger, registry *Registry, format, path string) (int, error) {
	parser := registry.Get(format)
	if parser == nil {
		return 0, fmt.Errorf("unknown import format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, row := range rows {
		l.Add(row)
	}
	return len(rows), nil
}
