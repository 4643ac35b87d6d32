// Package registry holds the calculation registry and dispatch service: the
// single mechanism that resolves a score identifier to a calculator, invokes
// it with an opaque parameter bag, and normalizes every outcome into one
// response envelope and one error taxonomy.
package registry

import (
	"fmt"
	"sort"
	"strings"
)

// Metadata describes a calculator for the catalog endpoints.
type Metadata struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Calculator is one scoring formula: a pure, stateless computation from a
// validated parameter bag to a structured result. Implementations must not
// perform I/O, block, or retain state between invocations. Domain-constraint
// violations are reported as *ParameterError; anything else is treated as a
// bug by the Dispatcher.
type Calculator interface {
	Meta() Metadata
	Invoke(params Params) (Result, error)
}

// Registry is the process-wide score identifier -> calculator mapping. It is
// populated by an ordered sequence of Register calls during bootstrap, sealed
// with Freeze before the server accepts traffic, and read-only thereafter, so
// lookups need no synchronization.
type Registry struct {
	calculators map[string]Calculator
	frozen      bool
}

// New returns an empty, unfrozen registry.
func New() *Registry {
	return &Registry{calculators: make(map[string]Calculator)}
}

// Register adds a calculator under its declared identifier. It fails on a
// duplicate identifier, on an identifier mismatch, and after Freeze. Called
// only from bootstrap code; any error must abort startup.
func (r *Registry) Register(calc Calculator) error {
	if r.frozen {
		return fmt.Errorf("register %q: %w", calc.Meta().ID, ErrRegistryFrozen)
	}
	id := calc.Meta().ID
	if id == "" {
		return fmt.Errorf("register: calculator has empty identifier")
	}
	if _, exists := r.calculators[id]; exists {
		return fmt.Errorf("register %q: %w", id, ErrDuplicateIdentifier)
	}
	r.calculators[id] = calc
	return nil
}

// Freeze seals the registry. Further Register calls fail.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Resolve returns the calculator registered under id, or false when the
// identifier is unknown.
func (r *Registry) Resolve(id string) (Calculator, bool) {
	calc, ok := r.calculators[id]
	return calc, ok
}

// Exists reports whether id names a registered calculator.
func (r *Registry) Exists(id string) bool {
	_, ok := r.calculators[id]
	return ok
}

// Len returns the number of registered calculators.
func (r *Registry) Len() int {
	return len(r.calculators)
}

// All returns the metadata of every registered calculator sorted by
// identifier.
func (r *Registry) All() []Metadata {
	out := make([]Metadata, 0, len(r.calculators))
	for _, calc := range r.calculators {
		out = append(out, calc.Meta())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ByCategory returns the metadata of calculators in the given category
// (case-insensitive), sorted by identifier.
func (r *Registry) ByCategory(category string) []Metadata {
	var out []Metadata
	for _, m := range r.All() {
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}

// Search returns the metadata of calculators whose identifier, title or
// description contains the term (case-insensitive), sorted by identifier.
func (r *Registry) Search(term string) []Metadata {
	term = strings.ToLower(term)
	var out []Metadata
	for _, m := range r.All() {
		if strings.Contains(strings.ToLower(m.ID), term) ||
			strings.Contains(strings.ToLower(m.Title), term) ||
			strings.Contains(strings.ToLower(m.Description), term) {
			out = append(out, m)
		}
	}
	return out
}

// Categories returns the sorted set of distinct categories.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	for _, calc := range r.calculators {
		seen[calc.Meta().Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
