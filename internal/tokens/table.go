// Package tokens holds the static narrative→mint reference table. The table
// is built once at startup and never mutated afterwards, so it is safe to
// share across requests without locking.
package tokens

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tokens.yaml
var defaultTableYAML []byte

// Table maps lower-cased narrative names to the mint addresses associated
// with that narrative category.
type Table struct {
	mints map[string][]string
}

// New builds a table from an in-memory mapping. Keys are lower-cased and
// mint lists are copied so later mutation of the input cannot leak in.
func New(m map[string][]string) *Table {
	t := &Table{mints: make(map[string][]string, len(m))}
	for name, mints := range m {
		t.mints[strings.ToLower(name)] = append([]string(nil), mints...)
	}
	return t
}

// Load reads the reference table from path, or from the embedded default
// when path is empty.
func Load(path string) (*Table, error) {
	raw := defaultTableYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read token map %s: %w", path, err)
		}
		raw = b
	}

	var m map[string][]string
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse token map: %w", err)
	}
	return New(m), nil
}

// Default returns the table built into the binary. The embedded YAML is
// validated by tests, so a parse failure here is a build defect.
func Default() *Table {
	t, err := Load("")
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the mints associated with a narrative name. Matching is
// case-insensitive; an unknown narrative yields an empty slice, never an
// error.
func (t *Table) Lookup(narrative string) []string {
	mints := t.mints[strings.ToLower(narrative)]
	return append([]string(nil), mints...)
}

// AllMints returns the sorted, de-duplicated union of every mint in the
// table.
func (t *Table) AllMints() []string {
	seen := make(map[string]struct{})
	for _, mints := range t.mints {
		for _, m := range mints {
			seen[m] = struct{}{}
		}
	}

	all := make([]string, 0, len(seen))
	for m := range seen {
		all = append(all, m)
	}
	sort.Strings(all)
	return all
}

// Categories returns the sorted narrative names the table knows about.
func (t *Table) Categories() []string {
	names := make([]string, 0, len(t.mints))
	for name := range t.mints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
