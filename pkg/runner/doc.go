// Package runner feeds declaration files through the resolver and the
// reconciler.
//
// Lines are processed strictly in file order so that a declaration is
// cached before any pair that references it. Errors scoped to one line are
// handed to the Reporter and the run continues; only fatal errors (see
// errors.IsFatal) stop it.
package runner
