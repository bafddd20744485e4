package reconcile

import (
	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/logging"
	"github.com/arthur-debert/potbin/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultMarker is the sync directory marker file name.
const DefaultMarker = ".sync_dir"

// Options configures a Reconciler.
type Options struct {
	// Marker is the sync directory marker file name. Defaults to DefaultMarker.
	Marker string
	// Ignore is the set of entry names skipped by wildcard expansion. The
	// marker is always added to it.
	Ignore *IgnoreSet
	// DryRun reports planned actions without touching the filesystem.
	DryRun bool
}

// Reconciler performs idempotent link and copy actions on an FS.
type Reconciler struct {
	fs     types.FS
	marker string
	ignore *IgnoreSet
	dryRun bool
	logger zerolog.Logger
}

// New creates a Reconciler.
func New(fs types.FS, opts Options) *Reconciler {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	ignore := opts.Ignore
	if ignore == nil {
		ignore = DefaultIgnoreSet()
	}
	ignore.Add(marker)

	r := &Reconciler{
		fs:     fs,
		marker: marker,
		ignore: ignore,
		dryRun: opts.DryRun,
		logger: logging.GetLogger("reconcile"),
	}
	r.logger.Debug().Str("marker", marker).Strs("ignore", ignore.Entries()).Bool("dryRun", r.dryRun).Msg("Reconciler ready")
	return r
}

// DryRun reports whether actions are only planned.
func (r *Reconciler) DryRun() bool {
	return r.dryRun
}

// Apply dispatches pair to Link or CopyOnNewer.
func (r *Reconciler) Apply(pair types.SyncPair) (types.Result, error) {
	switch pair.Mode {
	case types.ModeLink:
		return r.Link(pair.Cloud, pair.Local)
	case types.ModeCopy:
		return r.CopyOnNewer(pair.Cloud, pair.Local)
	}
	return types.Result{Pair: pair}, errors.Newf(errors.ErrInvalidInput, "unknown sync mode %s", pair.Mode)
}
