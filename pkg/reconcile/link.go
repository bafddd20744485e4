package reconcile

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/types"
)

// Link makes local a symlink to the real absolute path of cloud.
//
// A real directory at local is never removed: the pair is refused with
// ErrLinkConflict. A symlink already resolving to cloud is left alone.
// Anything else at local (file, stale or dangling link) is replaced.
// A permission failure while creating the link is ErrSymlinkPermission,
// which callers must treat as fatal.
func (r *Reconciler) Link(cloud, local string) (types.Result, error) {
	result := types.Result{
		Pair:   types.SyncPair{Cloud: cloud, Local: local, Mode: types.ModeLink},
		DryRun: r.dryRun,
	}

	linfo, lerr := r.fs.Lstat(local)
	exists := lerr == nil
	isLink := exists && linfo.Mode()&os.ModeSymlink != 0

	if exists && !isLink && linfo.IsDir() {
		return result, errors.Newf(errors.ErrLinkConflict, "the local directory already exists: %s", local).
			WithDetail("local", local).
			WithDetail("cloud", cloud)
	}

	cloudReal, err := r.fs.EvalSymlinks(cloud)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrCloudPathInvalid, "cannot resolve cloud path %s", cloud).
			WithDetail("cloud", cloud)
	}
	target, err := r.fs.Abs(cloudReal)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot make %s absolute", cloudReal)
	}

	if isLink {
		if current, err := r.fs.EvalSymlinks(local); err == nil {
			if currentAbs, err := r.fs.Abs(current); err == nil && currentAbs == target {
				result.Outcome = types.OutcomeAlreadyLinked
				return result, nil
			}
		}
	}

	if isLink {
		if old, err := r.fs.Readlink(local); err == nil {
			result.Previous = old
		}
	}

	result.Outcome = types.OutcomeLinked
	if r.dryRun {
		return result, nil
	}

	if exists {
		if err := r.fs.Remove(local); err != nil {
			return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot remove existing %s", local).
				WithDetail("local", local)
		}
	}

	// os.Symlink picks a directory link on Windows when target is a directory.
	if err := r.fs.Symlink(target, local); err != nil {
		if stderrors.Is(err, fs.ErrPermission) {
			return result, errors.Wrapf(err, errors.ErrSymlinkPermission,
				"cannot create symlink, make sure you have the right privilege for %s", local).
				WithDetail("local", local)
		}
		return result, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot create symlink %s", local).
			WithDetail("local", local)
	}

	r.logger.Debug().Str("cloud", target).Str("local", local).Str("previous", result.Previous).Msg("Created symlink")
	return result, nil
}
