// Package config loads potbin's configuration.
//
// Values are layered, later sources winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file ($XDG_CONFIG_HOME/potbin/config.toml, or --config)
//  3. POTBIN_<SECTION>_<KEY> environment variables
//  4. command line overrides
package config
