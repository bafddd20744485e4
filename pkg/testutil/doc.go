// Package testutil provides utilities for testing potbin components.
//
// Key components:
//   - NewTestFS: in-memory afero filesystem for resolver, copy and marker tests
//   - WriteFile / MkdirAll / SetMtime: fixture builders that work on any types.FS
//   - TempHome: an isolated HOME for tests that need real symlinks
//
// Symlinks only exist on the OS filesystem, so link-mode tests use TempHome
// and filesystem.NewOS; everything else should prefer NewTestFS.
package testutil
