// Package reconcile translates the book names used by an external Bible
// source into the canonical names of the canon registry.
package reconcile

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrAmbiguousMapping is returned when two external names map to one canonical name
	ErrAmbiguousMapping = errors.New("ambiguous book mapping")
	// ErrUnknownSource is returned by Load for a source with no mapping file
	ErrUnknownSource = errors.New("unknown reconciliation source")
)

// Mode controls how names without an explicit entry are treated
type Mode string

const (
	// ModeOpen passes unmapped names through unchanged
	ModeOpen Mode = "open"
	// ModeClosed treats every unmapped name as unknown
	ModeClosed Mode = "closed"
)

//go:embed sources/*.yaml
var sourceFiles embed.FS

// Source describes one external translation feed and its naming map
type Source struct {
	Name        string            `yaml:"source"`
	Version     int               `yaml:"version"`
	Translation string            `yaml:"translation"`
	URL         string            `yaml:"url"`
	Mode        Mode              `yaml:"mode"`
	Books       map[string]string `yaml:"books"`
}

// Map is an immutable external-name to canonical-name lookup
type Map struct {
	mode    Mode
	entries map[string]string
}

// New builds a Map from explicit entries
func New(entries map[string]string, mode Mode) (*Map, error) {
	if mode == "" {
		mode = ModeOpen
	}
	if mode != ModeOpen && mode != ModeClosed {
		return nil, fmt.Errorf("invalid mode %q", mode)
	}

	copied := make(map[string]string, len(entries))
	targets := make(map[string]string, len(entries))
	for _, external := range sortedKeys(entries) {
		canonical := entries[external]
		if prev, ok := targets[canonical]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %q", ErrAmbiguousMapping, prev, external, canonical)
		}
		targets[canonical] = external
		copied[external] = canonical
	}
	return &Map{mode: mode, entries: copied}, nil
}

// Resolve returns the canonical name for an external book name. Names without
// an entry resolve to themselves.
func (m *Map) Resolve(external string) string {
	if canonical, ok := m.entries[external]; ok {
		return canonical
	}
	return external
}

// Lookup reports the canonical name and whether the name is accepted by the
// map. Open maps accept every name; closed maps accept only listed names.
func (m *Map) Lookup(external string) (string, bool) {
	if canonical, ok := m.entries[external]; ok {
		return canonical, true
	}
	return external, m.mode == ModeOpen
}

// Mode returns the map's policy for unmapped names
func (m *Map) Mode() Mode {
	return m.mode
}

// Len returns the number of explicit entries
func (m *Map) Len() int {
	return len(m.entries)
}

// Load reads a built-in source definition by name (e.g. "douay-rheims")
func Load(name string) (*Source, *Map, error) {
	data, err := sourceFiles.ReadFile(path.Join("sources", name+".yaml"))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
	return parseSource(data)
}

// Sources lists the names of the built-in source definitions
func Sources() []string {
	entries, err := sourceFiles.ReadDir("sources")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

func parseSource(data []byte) (*Source, *Map, error) {
	var src Source
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, nil, fmt.Errorf("parse source definition: %w", err)
	}
	if src.Name == "" {
		return nil, nil, fmt.Errorf("source definition has no name")
	}
	m, err := New(src.Books, src.Mode)
	if err != nil {
		return nil, nil, fmt.Errorf("source %s: %w", src.Name, err)
	}
	if src.Mode == "" {
		src.Mode = m.Mode()
	}
	return &src, m, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
