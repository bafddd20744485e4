package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/potbin/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for potbin
	EnvConfigDir = "POTBIN_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for potbin
	EnvStateDir = "POTBIN_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DirName is the directory name for potbin-specific files
	DirName = "potbin"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "potbin.log"

	// LockFileName guards against concurrent runs
	LockFileName = "potbin.lock"
)

// Paths provides centralized path management for potbin
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
	LockFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New creates a Paths instance, respecting environment overrides.
func New() (Paths, error) {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, DirName)
	}

	// State directory - checked manually so XDG_STATE_HOME changes are
	// picked up without reloading the xdg package
	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = ExpandHome(stateDir)
	} else if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.xdgState = filepath.Join(stateHome, DirName)
	} else {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		p.xdgState = filepath.Join(homeDir, ".local", "state", DirName)
	}

	return p, nil
}

// ConfigDir returns the XDG config directory for potbin
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for potbin
func (p *paths) StateDir() string {
	return p.xdgState
}

// ConfigFilePath returns the default location of the user config file
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path to the potbin log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// LockFilePath returns the path of the run lock
func (p *paths) LockFilePath() string {
	return filepath.Join(p.xdgState, LockFileName)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a bare "~" or a leading "~/" to the home directory.
// Anything else, including "~user", is returned unchanged.
func ExpandHome(path string) string {
	if !HasHomePrefix(path) {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	return ExpandHomeWith(path, homeDir)
}

// HasHomePrefix reports whether path is "~" or starts with "~/".
func HasHomePrefix(path string) bool {
	if path == "" || path[0] != '~' {
		return false
	}
	return len(path) == 1 || path[1] == '/' || path[1] == filepath.Separator
}

// ExpandHomeWith is ExpandHome against a given home directory.
func ExpandHomeWith(path, home string) string {
	if !HasHomePrefix(path) {
		return path
	}
	if len(path) == 1 {
		return home
	}
	return filepath.Join(home, path[2:])
}

// AppDataDir returns the OS-appropriate per-user data directory for an
// application. The author only qualifies the path on Windows, where it
// defaults to the application name.
//
//	Linux:   $XDG_DATA_HOME/<app>            (~/.local/share/<app>)
//	macOS:   ~/Library/Application Support/<app>
//	Windows: %LOCALAPPDATA%\<author>\<app>
func AppDataDir(appName, appAuthor string) string {
	return appDataDir(runtime.GOOS, xdg.DataHome, appName, appAuthor)
}

func appDataDir(goos, dataHome, appName, appAuthor string) string {
	if goos == "windows" {
		if appAuthor == "" {
			appAuthor = appName
		}
		return filepath.Join(dataHome, appAuthor, appName)
	}
	return filepath.Join(dataHome, appName)
}

// Platform returns the host platform identifier.
func Platform() string {
	return runtime.GOOS
}
