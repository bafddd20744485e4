package potbin

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link and copy config files from a synced folder"
	MsgSyncShort       = "Apply declaration files"
	MsgResolveShort    = "Print what a local path expression resolves to"
	MsgGenconfigShort  = "Print the configuration as TOML"
	MsgSyntaxShort     = "Describe the declaration file format"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgVersionFormat = "potbin version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s\n"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrLoadStyles   = "failed to load styles: %w"
	MsgErrReadDecl     = "failed to read declarations: %w"
	MsgErrTopicsSetup  = "failed to set up help topics: %w"
	MsgErrKnownAliases = "%w (declared aliases: %s)"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/potbin/config.toml)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagDir      = "Directory holding declaration files"
	MsgFlagWith     = "Load declarations from this file first (repeatable)"
	MsgFlagFor      = "Apply basename inference against this cloud path"
	MsgFlagDefaults = "Print the commented default configuration instead"
	MsgFlagQuiet    = "Hide pairs that are already in place"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
