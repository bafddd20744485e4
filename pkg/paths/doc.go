// Package paths provides centralized path handling for potbin.
//
// This package implements the XDG Base Directory specification for potbin's
// own files and provides the primitives the path resolver builds on:
//
//   - Home directory lookup and "~" expansion
//   - Per-application data directories ($appfolder)
//   - The host platform identifier ($sysplatform)
//   - Locations of the config file, log file and run lock
//
// # Environment Variables
//
//   - POTBIN_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/potbin)
//   - POTBIN_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/potbin)
//
// # Usage
//
//	p, err := paths.New()
//	cfgFile := p.ConfigFilePath()
//	ff := paths.AppDataDir("firefox", "")
package paths
