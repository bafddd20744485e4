package resolver

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/logging"
	"github.com/arthur-debert/potbin/pkg/paths"
	"github.com/arthur-debert/potbin/pkg/types"
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"
)

// Resolver expands local-path expressions. It carries the declaration cache
// and the environment lookups every resolution needs.
type Resolver struct {
	fs       types.FS
	decls    *Declarations
	home     func() (string, error)
	appDir   func(app, author string) string
	platform func() string
	logger   zerolog.Logger
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithHomeFunc overrides home directory lookup.
func WithHomeFunc(fn func() (string, error)) Option {
	return func(r *Resolver) { r.home = fn }
}

// WithAppDirFunc overrides the per-application data directory lookup.
func WithAppDirFunc(fn func(app, author string) string) Option {
	return func(r *Resolver) { r.appDir = fn }
}

// WithPlatform overrides the platform identifier.
func WithPlatform(platform string) Option {
	return func(r *Resolver) { r.platform = func() string { return platform } }
}

// New creates a Resolver reading INI files through fs and aliases from
// decls. A nil decls gets a fresh cache.
func New(fs types.FS, decls *Declarations, opts ...Option) *Resolver {
	if decls == nil {
		decls = NewDeclarations()
	}
	r := &Resolver{
		fs:       fs,
		decls:    decls,
		home:     paths.GetHomeDirectory,
		appDir:   paths.AppDataDir,
		platform: paths.Platform,
		logger:   logging.GetLogger("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Declarations returns the cache this resolver reads and writes.
func (r *Resolver) Declarations() *Declarations {
	return r.decls
}

// Expand resolves every "/"-separated segment of expr, left to right, and
// joins the results with "/". Empty segments are kept, so leading, trailing
// and doubled slashes survive.
func (r *Resolver) Expand(expr string) (string, error) {
	segs := strings.Split(expr, "/")
	resolved := make([]string, 0, len(segs))
	for _, seg := range segs {
		value, err := r.ResolveSegment(seg, resolved)
		if err != nil {
			return "", err
		}
		resolved = append(resolved, value)
	}

	out := strings.Join(resolved, "/")
	r.logger.Debug().Str("expr", expr).Str("resolved", out).Msg("Expanded path expression")
	return out, nil
}

// ResolveSegment resolves one segment given the segments already resolved
// before it.
func (r *Resolver) ResolveSegment(seg string, resolved []string) (string, error) {
	if !IsPlaceholder(seg) {
		return r.expandTilde(seg)
	}

	value, ok, err := r.resolvePlaceholder(seg, resolved)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.Newf(errors.ErrSegmentUnparsable, "segment %s could not be parsed", seg).
			WithDetail("segment", seg)
	}
	return value, nil
}

// Declare processes a "$name = expression" line: the expression is
// resolved and cached under name.
func (r *Resolver) Declare(line string) (string, string, error) {
	name, expr, err := ParseDeclaration(line)
	if err != nil {
		return "", "", err
	}

	value, err := r.Expand(expr)
	if err != nil {
		return name, "", errors.Wrapf(err, errors.ErrDeclarationInvalid,
			"cannot resolve declaration %s", name).WithDetail("line", line)
	}

	if replaced := r.decls.Set(name, value); replaced {
		r.logger.Warn().Str("name", name).Msg("Alias redeclared, later value wins")
	}
	r.logger.Debug().Str("name", name).Str("value", value).Msg("Cached declaration")
	return name, value, nil
}

// resolvePlaceholder walks the chain in priority order. The boolean is false
// when no form applies; an error means a form applied and failed.
func (r *Resolver) resolvePlaceholder(seg string, resolved []string) (string, bool, error) {
	if value, ok := r.decls.Get(seg); ok {
		return value, true, nil
	}

	ph, ok := ParsePlaceholder(seg)
	if !ok {
		return "", false, nil
	}

	switch ph.Kind {
	case KindHome:
		home, err := r.home()
		if err != nil {
			return "", false, err
		}
		return home, true, nil

	case KindAppFolder:
		switch len(ph.Args) {
		case 1:
			return r.appDir(ph.Args[0], ""), true, nil
		case 2:
			return r.appDir(ph.Args[0], ph.Args[1]), true, nil
		}
		return "", false, nil

	case KindIni:
		if len(ph.Args) != 3 {
			return "", false, nil
		}
		return r.lookupIni(resolved, ph.Args[0], ph.Args[1], ph.Args[2])

	case KindPlatform:
		return r.platform(), true, nil
	}
	return "", false, nil
}

// lookupIni reads [section] key from file inside the directory resolved so
// far. A missing file is not applicable; anything wrong with an existing
// file is an error.
func (r *Resolver) lookupIni(resolved []string, file, section, key string) (string, bool, error) {
	iniPath := strings.Join(resolved, "/") + "/" + file
	if _, err := r.fs.Stat(iniPath); err != nil {
		r.logger.Debug().Str("path", iniPath).Msg("INI file not found, placeholder not applicable")
		return "", false, nil
	}

	data, err := r.fs.ReadFile(iniPath)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrIniRead, "cannot read %s", iniPath).
			WithDetail("path", iniPath)
	}

	cfg, err := loadStrictIni(data)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrIniRead, "cannot parse %s", iniPath).
			WithDetail("path", iniPath)
	}

	sec, err := cfg.GetSection(section)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrIniRead, "no section [%s] in %s", section, iniPath).
			WithDetail("path", iniPath)
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrIniRead, "no key %s in [%s] of %s", key, section, iniPath).
			WithDetail("path", iniPath)
	}
	if k.String() == "" {
		return "", false, errors.Newf(errors.ErrIniRead, "empty value for %s in [%s] of %s", key, section, iniPath).
			WithDetail("path", iniPath)
	}
	return k.String(), true, nil
}

// loadStrictIni parses data as INI, rejecting what a strict reader would:
// keys before the first section header, repeated sections and repeated keys
// within a section. Values are kept verbatim, inline "#" or ";" text and
// surrounding quotes included.
func loadStrictIni(data []byte) (*ini.File, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:         true,
		AllowNonUniqueSections:  true,
		AllowShadows:            true,
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
	}, data)
	if err != nil {
		return nil, err
	}

	if line := keyBeforeHeader(data); line != "" {
		return nil, fmt.Errorf("%q appears before any section header", line)
	}

	seen := make(map[string]bool)
	for _, name := range cfg.SectionStrings() {
		if name == ini.DefaultSection {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("section [%s] appears more than once", name)
		}
		seen[name] = true

		for _, key := range cfg.Section(name).Keys() {
			if len(key.ValueWithShadows()) > 1 {
				return nil, fmt.Errorf("key %q appears more than once in [%s]", key.Name(), name)
			}
		}
	}
	return cfg, nil
}

// keyBeforeHeader returns the first content line preceding any section
// header, or "" when the file opens with a header. An explicit [DEFAULT]
// section is a header like any other.
func keyBeforeHeader(data []byte) string {
	text := strings.TrimPrefix(string(data), "\ufeff")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "#"), strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, "["):
			return ""
		}
		return line
	}
	return ""
}

func (r *Resolver) expandTilde(seg string) (string, error) {
	if !paths.HasHomePrefix(seg) {
		return seg, nil
	}
	home, err := r.home()
	if err != nil {
		return "", err
	}
	return paths.ExpandHomeWith(seg, home), nil
}
