package reconcile

import (
	"io"
	"io/fs"
	"time"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/types"
)

// CopyOnNewer copies whichever of cloud and local was modified last over
// the other, carrying the source mtime across. A missing local counts as
// modified at the epoch. Directories are rejected with ErrDirectoryCopy.
func (r *Reconciler) CopyOnNewer(cloud, local string) (types.Result, error) {
	result := types.Result{
		Pair:   types.SyncPair{Cloud: cloud, Local: local, Mode: types.ModeCopy},
		DryRun: r.dryRun,
	}

	cloudInfo, err := r.fs.Stat(cloud)
	if err != nil {
		return result, errors.Wrapf(err, errors.ErrCloudPathInvalid, "cannot stat %s", cloud).
			WithDetail("cloud", cloud)
	}
	if cloudInfo.IsDir() {
		return result, errors.Newf(errors.ErrDirectoryCopy, "copy mode does not support directories: %s", cloud).
			WithDetail("cloud", cloud)
	}

	localTime := time.Unix(0, 0)
	localInfo, err := r.fs.Stat(local)
	if err == nil {
		if localInfo.IsDir() {
			return result, errors.Newf(errors.ErrDirectoryCopy, "copy mode cannot overwrite directory %s", local).
				WithDetail("local", local)
		}
		localTime = localInfo.ModTime()
	}
	cloudTime := cloudInfo.ModTime()

	switch {
	case cloudTime.Equal(localTime):
		result.Outcome = types.OutcomeInSync
		return result, nil
	case cloudTime.After(localTime):
		result.Outcome = types.OutcomeCopied
		result.Bytes = cloudInfo.Size()
		if r.dryRun {
			return result, nil
		}
		_, err = r.copyFile(cloud, local, cloudInfo)
	default:
		result.Outcome = types.OutcomeUpdatedCloud
		result.Bytes = localInfo.Size()
		if r.dryRun {
			return result, nil
		}
		_, err = r.copyFile(local, cloud, localInfo)
	}
	return result, err
}

// copyFile copies content, permission bits and mtime from src to dst.
func (r *Reconciler) copyFile(src, dst string, info fs.FileInfo) (int64, error) {
	in, err := r.fs.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileCopy, "cannot open %s", src).WithDetail("path", src)
	}
	defer func() { _ = in.Close() }()

	out, err := r.fs.Create(dst, info.Mode().Perm())
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileCopy, "cannot create %s", dst).WithDetail("path", dst)
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, errors.Wrapf(err, errors.ErrFileCopy, "cannot copy %s to %s", src, dst).WithDetail("path", dst)
	}

	if err := r.fs.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, errors.Wrapf(err, errors.ErrFileCopy, "cannot set mode on %s", dst).WithDetail("path", dst)
	}
	mtime := info.ModTime()
	if err := r.fs.Chtimes(dst, mtime, mtime); err != nil {
		return n, errors.Wrapf(err, errors.ErrFileCopy, "cannot set mtime on %s", dst).WithDetail("path", dst)
	}

	r.logger.Debug().Str("src", src).Str("dst", dst).Int64("bytes", n).Msg("Copied file")
	return n, nil
}
