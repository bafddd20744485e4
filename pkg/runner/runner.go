package runner

import (
	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/logging"
	"github.com/arthur-debert/potbin/pkg/pdec"
	"github.com/arthur-debert/potbin/pkg/reconcile"
	"github.com/arthur-debert/potbin/pkg/resolver"
	"github.com/arthur-debert/potbin/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Runner.
type Options struct {
	Syntax    pdec.Syntax
	Extension string
	Reporter  Reporter
}

// Runner drives declaration files through resolution and reconciliation.
// The resolver's declaration cache is shared by every file of the run.
type Runner struct {
	fs         types.FS
	resolver   *resolver.Resolver
	reconciler *reconcile.Reconciler
	syntax     pdec.Syntax
	ext        string
	reporter   Reporter
	summary    Summary
	logger     zerolog.Logger
}

// New creates a Runner.
func New(fs types.FS, res *resolver.Resolver, rec *reconcile.Reconciler, opts Options) *Runner {
	syntax := opts.Syntax
	if syntax == (pdec.Syntax{}) {
		syntax = pdec.DefaultSyntax()
	}
	ext := opts.Extension
	if ext == "" {
		ext = pdec.DefaultExtension
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &Runner{
		fs:         fs,
		resolver:   res,
		reconciler: rec,
		syntax:     syntax,
		ext:        ext,
		reporter:   reporter,
		logger:     logging.GetLogger("runner"),
	}
}

// Summary returns the counts accumulated so far.
func (r *Runner) Summary() Summary {
	return r.summary
}

// RunDir processes every declaration file in dir, in name order.
func (r *Runner) RunDir(dir string) (Summary, error) {
	files, err := pdec.Discover(r.fs, dir, r.ext)
	if err != nil {
		return r.summary, err
	}
	if len(files) == 0 {
		r.logger.Warn().Str("dir", dir).Str("ext", r.ext).Msg("No declaration files found")
	}
	return r.RunFiles(files)
}

// RunFiles processes files in the given order and stops at the first fatal
// error.
func (r *Runner) RunFiles(files []string) (Summary, error) {
	done := logging.LogOperationStart(r.logger, "sync")
	defer done()

	for _, file := range files {
		if err := r.RunFile(file); err != nil {
			return r.summary, err
		}
	}
	return r.summary, nil
}

// RunFile processes one declaration file. A file that cannot be read is
// reported and skipped; the returned error is always fatal.
func (r *Runner) RunFile(path string) error {
	r.reporter.FileStarted(path)

	lines, lineErrs, err := r.syntax.ParseFile(r.fs, path)
	if err != nil {
		r.summary.FailedFiles++
		r.reporter.FileFailed(path, err)
		return nil
	}
	r.summary.Files++

	for _, line := range lines {
		if lerr, ok := lineErrs[line.Number]; ok {
			r.skip(line, lerr)
			continue
		}
		if err := r.ProcessLine(line); err != nil {
			r.logger.Error().Err(err).Str("file", path).Int("line", line.Number).Msg("Fatal error, stopping")
			return err
		}
	}
	return nil
}

// ProcessLine handles one classified line. Line-scoped failures are
// reported and swallowed; only fatal errors are returned.
func (r *Runner) ProcessLine(line pdec.Line) error {
	switch line.Kind {
	case pdec.KindDeclaration:
		r.declare(line)
		return nil
	case pdec.KindPair:
		return r.syncPair(line)
	}
	return nil
}

func (r *Runner) declare(line pdec.Line) {
	name, value, err := r.resolver.Declare(line.Text)
	if err != nil {
		r.skip(line, err)
		return
	}
	r.summary.Declarations++
	r.reporter.Declared(name, value)
}

func (r *Runner) syncPair(line pdec.Line) error {
	cloud, err := r.resolver.Expand(line.Cloud)
	if err != nil {
		r.skip(line, err)
		return nil
	}

	clouds, err := r.reconciler.ExpandCloud(cloud)
	if err != nil {
		r.skip(line, err)
		return nil
	}

	marked, err := r.reconciler.MarkSyncDirIfNeeded(cloud)
	if err != nil {
		r.skip(line, err)
		return nil
	}
	if marked {
		r.summary.Marked++
		r.reporter.Marked(cloud, r.reconciler.DryRun())
	}

	local, err := r.resolver.Expand(line.Local)
	if err != nil {
		r.skip(line, err)
		return nil
	}

	for _, c := range clouds {
		pair := types.SyncPair{
			Cloud: c,
			Local: r.reconciler.InferBasename(c, local),
			Mode:  line.Mode,
		}
		result, err := r.reconciler.Apply(pair)
		if err != nil {
			if errors.IsFatal(err) {
				return err
			}
			r.skip(line, err)
			continue
		}
		r.summary.Add(result)
		r.reporter.Synced(result)
	}
	return nil
}

func (r *Runner) skip(line pdec.Line, err error) {
	r.summary.Skipped++
	r.logger.Debug().Err(err).Int("line", line.Number).Str("text", line.Text).Msg("Skipping line")
	r.reporter.Skipped(line, err)
}
