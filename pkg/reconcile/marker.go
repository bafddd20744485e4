package reconcile

import (
	"path/filepath"

	"github.com/arthur-debert/potbin/pkg/errors"
)

// MarkerPath returns the marker file location inside dir.
func (r *Reconciler) MarkerPath(dir string) string {
	return filepath.Join(dir, r.marker)
}

// IsSyncDir reports whether dir carries the sync directory marker.
func (r *Reconciler) IsSyncDir(dir string) bool {
	_, err := r.fs.Stat(r.MarkerPath(dir))
	return err == nil
}

// MarkSyncDirIfNeeded creates an empty read-only marker in cloud when cloud
// is a directory without one. It reports whether a marker was (or, in dry
// run, would be) created.
func (r *Reconciler) MarkSyncDirIfNeeded(cloud string) (bool, error) {
	info, err := r.fs.Stat(cloud)
	if err != nil || !info.IsDir() {
		return false, nil
	}
	if r.IsSyncDir(cloud) {
		return false, nil
	}

	marker := r.MarkerPath(cloud)
	if r.dryRun {
		r.logger.Info().Str("marker", marker).Msg("Would mark sync directory")
		return true, nil
	}
	if err := r.fs.WriteFile(marker, nil, 0400); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileCreate, "cannot create sync marker %s", marker).
			WithDetail("path", marker)
	}
	r.logger.Info().Str("marker", marker).Msg("Marked sync directory")
	return true, nil
}
