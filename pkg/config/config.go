package config

// Config is the complete potbin configuration.
type Config struct {
	Declarations Declarations `koanf:"declarations" toml:"declarations"`
	Sync         Sync         `koanf:"sync" toml:"sync"`
	Output       Output       `koanf:"output" toml:"output"`
}

// Declarations locates declaration files.
type Declarations struct {
	Dir       string `koanf:"dir" toml:"dir"`
	Extension string `koanf:"extension" toml:"extension"`
}

// Sync configures resolution and reconciliation.
type Sync struct {
	Marker       string   `koanf:"marker" toml:"marker"`
	Ignore       []string `koanf:"ignore" toml:"ignore"`
	DefaultLocal string   `koanf:"default_local" toml:"default_local"`
	Lock         string   `koanf:"lock" toml:"lock"`
}

// Output configures the progress reporter.
type Output struct {
	NoColor bool   `koanf:"no_color" toml:"no_color"`
	Quiet   bool   `koanf:"quiet" toml:"quiet"`
	Styles  string `koanf:"styles" toml:"styles"`
}
