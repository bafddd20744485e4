package reconcile

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultIgnore lists entries skipped when a wildcard cloud path is
// expanded.
var DefaultIgnore = []string{DefaultMarker, ".DS_Store"}

// IgnoreSet matches entry names excluded from wildcard expansion. Entries
// containing glob metacharacters are matched as doublestar patterns, the
// rest by exact name.
type IgnoreSet struct {
	names    mapset.Set[string]
	patterns []string
}

// NewIgnoreSet builds a set from names and patterns. Invalid patterns are
// kept as exact names.
func NewIgnoreSet(entries ...string) *IgnoreSet {
	s := &IgnoreSet{names: mapset.NewThreadUnsafeSet[string]()}
	s.Add(entries...)
	return s
}

// DefaultIgnoreSet returns a set holding DefaultIgnore.
func DefaultIgnoreSet() *IgnoreSet {
	return NewIgnoreSet(DefaultIgnore...)
}

// Add inserts entries into the set.
func (s *IgnoreSet) Add(entries ...string) {
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		if strings.ContainsAny(entry, "*?[{") && doublestar.ValidatePattern(entry) {
			s.patterns = append(s.patterns, entry)
			continue
		}
		s.names.Add(entry)
	}
}

// Match reports whether name is ignored.
func (s *IgnoreSet) Match(name string) bool {
	if s.names.Contains(name) {
		return true
	}
	for _, pattern := range s.patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Entries returns the exact names followed by the patterns.
func (s *IgnoreSet) Entries() []string {
	out := mapset.Sorted(s.names)
	return append(out, s.patterns...)
}
