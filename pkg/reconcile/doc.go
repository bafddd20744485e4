// Package reconcile decides and performs the filesystem action for a
// resolved cloud/local pair.
//
// Link mode replaces the local path with a symlink to the cloud path. Copy
// mode compares modification times and copies the newer side over the
// older one, preserving the source mtime so the next run sees the pair as
// in sync.
//
// The package also owns the two helpers that run before an action:
// basename inference, which completes a local directory into a file path,
// and the sync directory marker, a read-only sentinel file that flags a
// cloud directory as a managed sync root.
package reconcile
