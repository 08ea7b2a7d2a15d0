// Package importer turns CSV exports into budget transactions.
package importer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tally-dev/tally/internal/budget"
	"github.com/tally-dev/tally/internal/model"
)

// Parser converts a CSV file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
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

// Lookup is Get with an error naming the known formats.
func (r *Registry) Lookup(format string) (Parser, error) {
	if p := r.Get(format); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("unknown import format %q (known: %s)", format, strings.Join(r.Formats(), ", "))
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&TallyParser{})
	r.Register(&ChaseParser{})
	return r
}

// TallyParser reads the CSV written by "tally budget export".
type TallyParser struct{}

// Format returns the parser name.
func (p *TallyParser) Format() string { return "tally" }

// Parse reads an exported transactions CSV.
func (p *TallyParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return budget.ReadTransactions(r)
}
