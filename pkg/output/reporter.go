package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/logging"
	"github.com/arthur-debert/potbin/pkg/output/styles"
	"github.com/arthur-debert/potbin/pkg/pdec"
	"github.com/arthur-debert/potbin/pkg/runner"
	"github.com/arthur-debert/potbin/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var _ runner.Reporter = (*Reporter)(nil)

// Reporter writes progress lines. Skips and failures go to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	sheet  *styles.Sheet
	// Quiet hides lines for pairs that were already in place.
	Quiet bool
}

// NewReporter creates a Reporter writing to out and errOut.
func NewReporter(out, errOut io.Writer, noColor bool) *Reporter {
	log := logging.GetLogger("output.Reporter")

	renderer := lipgloss.NewRenderer(out)
	if noColor || !ColorEnabled(out) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	log.Debug().
		Bool("noColor", noColor).
		Str("NO_COLOR_env", os.Getenv("NO_COLOR")).
		Str("colorProfile", fmt.Sprintf("%v", renderer.ColorProfile())).
		Msg("Creating reporter")

	return &Reporter{
		out:    out,
		errOut: errOut,
		sheet:  styles.NewSheet(renderer),
	}
}

// ColorEnabled reports whether w is a terminal that should get colors.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

func (r *Reporter) println(w io.Writer, parts ...string) {
	_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
}

func (r *Reporter) path(p string) string {
	return r.sheet.Render("Path", p)
}

func (r *Reporter) dryRun(result types.Result) string {
	if result.DryRun {
		return " " + r.sheet.Render("DryRun", "(dry run)")
	}
	return ""
}

// FileStarted prints the declaration file header.
func (r *Reporter) FileStarted(path string) {
	r.println(r.out, r.sheet.Render("Header", "Processing pdec file:"), r.path(path))
}

// Declared prints a cached alias.
func (r *Reporter) Declared(name, value string) {
	r.println(r.out, r.sheet.Render("Declared", "Cached custom declaration:"), name, "=", r.path(value))
}

// Marked prints a newly claimed sync directory.
func (r *Reporter) Marked(dir string, dryRun bool) {
	line := r.sheet.Render("Marked", "Marked sync directory") + " " + r.path(dir)
	if dryRun {
		line += " " + r.sheet.Render("DryRun", "(dry run)")
	}
	r.println(r.out, line)
}

// Synced prints the outcome of one pair.
func (r *Reporter) Synced(result types.Result) {
	cloud, local := r.path(result.Pair.Cloud), r.path(result.Pair.Local)

	var line string
	switch result.Outcome {
	case types.OutcomeLinked:
		line = fmt.Sprintf("%s %s to %s", r.sheet.Render("Linked", "Linked"), cloud, local)
		if result.Previous != "" {
			line += " (was " + r.path(result.Previous) + ")"
		}
	case types.OutcomeCopied:
		line = fmt.Sprintf("%s %s to %s (%s)", r.sheet.Render("Copied", "Copied"), cloud, local,
			humanize.Bytes(uint64(result.Bytes)))
	case types.OutcomeUpdatedCloud:
		line = fmt.Sprintf("%s %s with %s (%s)", r.sheet.Render("Updated", "Updated"), cloud, local,
			humanize.Bytes(uint64(result.Bytes)))
	case types.OutcomeAlreadyLinked, types.OutcomeInSync:
		if r.Quiet {
			return
		}
		line = fmt.Sprintf("%s %s and %s", r.sheet.Render("Unchanged", "Untouched on"), cloud, local)
	default:
		line = fmt.Sprintf("%s %s and %s", result.Outcome, cloud, local)
	}
	r.println(r.out, line+r.dryRun(result))
}

// Skipped prints why a line was skipped.
func (r *Reporter) Skipped(line pdec.Line, err error) {
	r.println(r.errOut, r.sheet.Render("Skipped", SkipMessage(line, err)))
}

// FileFailed prints an unreadable declaration file.
func (r *Reporter) FileFailed(path string, err error) {
	r.println(r.errOut, r.sheet.Render("Error", "File "+path+" cannot be found or read."))
}

// Summary prints the totals of a run.
func (r *Reporter) Summary(s runner.Summary, dryRun bool) {
	parts := []string{
		fmt.Sprintf("%d linked", s.Linked),
		fmt.Sprintf("%d copied", s.Copied),
		fmt.Sprintf("%d updated", s.UpdatedCloud),
		fmt.Sprintf("%d untouched", s.AlreadyLinked+s.InSync),
		fmt.Sprintf("%d skipped", s.Skipped),
	}
	text := fmt.Sprintf("%s in %s: %s",
		humanize.Comma(int64(s.Changed())), pluralFiles(s.Files), strings.Join(parts, ", "))
	if dryRun {
		text += " (dry run)"
	}
	r.println(r.out)
	r.println(r.out, r.sheet.Render("Summary", text))
}

// Error prints a fatal error.
func (r *Reporter) Error(err error) {
	r.println(r.errOut, r.sheet.Render("Error", "Error: "+err.Error()))
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

// SkipMessage words a line-scoped error for the user.
func SkipMessage(line pdec.Line, err error) string {
	details := errors.GetErrorDetails(err)
	due := reason(err)

	switch errors.GetErrorCode(err) {
	case errors.ErrDeclarationInvalid:
		return fmt.Sprintf("Skipping invalid custom declaration: %s, due to %s", line.Text, due)
	case errors.ErrLineInvalid:
		return "Skipping invalid line: " + line.Text
	case errors.ErrCloudPathInvalid:
		if cloud, ok := details["cloud"].(string); ok {
			return "Skipping invalid cloud path: " + cloud
		}
		return "Skipping invalid cloud path in line: " + line.Text
	case errors.ErrSegmentUnparsable, errors.ErrIniRead:
		return fmt.Sprintf("Skipping invalid path in line: %s, due to %s", line.Text, due)
	case errors.ErrLinkConflict:
		if local, ok := details["local"].(string); ok {
			return "The local directory already exists: " + local
		}
	}
	return fmt.Sprintf("Skipping line %d: %s, due to %s", line.Number, line.Text, due)
}

// reason returns the innermost potbin message of err and its cause,
// without codes.
func reason(err error) string {
	var msg string
	for err != nil {
		pe, ok := err.(*errors.PotbinError)
		if !ok {
			if msg == "" {
				return err.Error()
			}
			return msg + ": " + err.Error()
		}
		msg = pe.Message
		err = pe.Wrapped
	}
	return msg
}
