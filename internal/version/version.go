package version

import "fmt"

// Build information, stamped at release time with
// -X github.com/arthur-debert/potbin/internal/version.Version=...
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String is the one-line form used by --version and man page headers.
func String() string {
	if Commit == "unknown" {
		return Version
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", Version, short, Date)
}
