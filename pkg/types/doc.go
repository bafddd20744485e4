// Package types defines the core types and interfaces shared across potbin.
// This includes the FS abstraction used by the resolver and reconciler, and
// the sync pair and result types passed between the declaration driver and
// the reconciler.
package types
