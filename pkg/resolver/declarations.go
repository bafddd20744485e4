package resolver

import (
	"strings"

	"github.com/arthur-debert/potbin/pkg/errors"
)

// Declarations caches user-declared aliases for the lifetime of a run.
// Keys are stored with their leading marker ("$ff") so a path segment can
// be matched against them directly.
type Declarations struct {
	values map[string]string
	order  []string
}

// NewDeclarations returns an empty cache.
func NewDeclarations() *Declarations {
	return &Declarations{values: make(map[string]string)}
}

// Get returns the resolved value for an alias token.
func (d *Declarations) Get(name string) (string, bool) {
	v, ok := d.values[name]
	return v, ok
}

// Set stores a resolved value. It reports whether an earlier value was
// replaced.
func (d *Declarations) Set(name, value string) bool {
	_, exists := d.values[name]
	if !exists {
		d.order = append(d.order, name)
	}
	d.values[name] = value
	return exists
}

// Len returns the number of declared aliases.
func (d *Declarations) Len() int {
	return len(d.values)
}

// Names returns alias tokens in declaration order.
func (d *Declarations) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// ParseDeclaration splits a "$name = expression" line. Exactly one "=" is
// required and the name must be a single placeholder token.
func ParseDeclaration(line string) (name, expr string, err error) {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return "", "", errors.Newf(errors.ErrDeclarationInvalid,
			"expected exactly one '=' in %q", line).WithDetail("line", line)
	}

	name = strings.TrimSpace(parts[0])
	expr = strings.TrimSpace(parts[1])
	if !IsPlaceholder(name) || len(name) == len(Marker) || strings.ContainsAny(name, "/ \t") {
		return "", "", errors.Newf(errors.ErrDeclarationInvalid,
			"invalid alias name %q", name).WithDetail("line", line)
	}
	return name, expr, nil
}
