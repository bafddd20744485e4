package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/logging"
	"github.com/arthur-debert/potbin/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "POTBIN_"

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// ConfigFile is an explicit user file, which must exist. Empty means the
	// default location, read only when present.
	ConfigFile string
	// Overrides are flat "section.key" values applied last.
	Overrides map[string]interface{}
}

// Default returns the embedded defaults only.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

// Load reads the layered configuration.
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	configFile, required := opts.ConfigFile, true
	if configFile == "" {
		required = false
		if p, err := paths.New(); err == nil {
			configFile = p.ConfigFilePath()
		}
	}
	if configFile != "" {
		configFile = paths.ExpandHome(configFile)
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configFile).
					WithDetail("path", configFile)
			}
			log.Debug().Str("path", configFile).Msg("Loaded config file")
		} else if required {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", configFile).
				WithDetail("path", configFile)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps POTBIN_SYNC_DEFAULT_LOCAL to sync.default_local: the first
// underscore separates the section, the rest belong to the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// Validate checks values the rest of potbin relies on.
func (c *Config) Validate() error {
	switch {
	case c.Declarations.Dir == "":
		return errors.New(errors.ErrConfigLoad, "declarations.dir must not be empty")
	case !strings.HasPrefix(c.Declarations.Extension, "."):
		return errors.Newf(errors.ErrConfigLoad, "declarations.extension %q must start with a dot", c.Declarations.Extension)
	case c.Sync.Marker == "" || strings.ContainsAny(c.Sync.Marker, `/\`):
		return errors.Newf(errors.ErrConfigLoad, "sync.marker %q must be a plain file name", c.Sync.Marker)
	case c.Sync.DefaultLocal == "":
		return errors.New(errors.ErrConfigLoad, "sync.default_local must not be empty")
	}
	return nil
}

// DeclarationsDir returns declarations.dir with a leading ~ expanded.
func (c *Config) DeclarationsDir() string {
	return paths.ExpandHome(c.Declarations.Dir)
}

// LockPath returns the lock file location: sync.lock when set, otherwise
// the lock file in the state directory.
func (c *Config) LockPath() (string, error) {
	if c.Sync.Lock != "" {
		return paths.ExpandHome(c.Sync.Lock), nil
	}
	p, err := paths.New()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigLoad, "cannot locate state directory")
	}
	return p.LockFilePath(), nil
}
