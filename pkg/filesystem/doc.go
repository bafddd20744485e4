// Package filesystem provides filesystem implementations for potbin.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem used at runtime, and an afero-backed
// filesystem used by tests that do not need real symlinks.
package filesystem
