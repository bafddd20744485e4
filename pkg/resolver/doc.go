// Package resolver turns local-path expressions into concrete paths.
//
// An expression is split on "/" into segments which are resolved strictly
// left to right. A segment starting with "$" is a placeholder:
//
//	$name                          a declared alias (see Declarations)
//	$userhome                      the user's home directory
//	$appfolder(app[, author])      the per-user data directory of an app
//	$iniparser(file, section, key) a value read from an INI file that lives
//	                               in the directory resolved so far
//	$sysplatform                   the host platform (runtime.GOOS)
//
// Any other segment is passed through, with a bare "~" expanded to the home
// directory. Each resolved segment becomes part of the context for the
// segments after it, which is what lets $iniparser find its file.
//
// Resolution distinguishes "no placeholder form applies" (the chain moves
// on) from "a form applied and failed" (an error is returned at once).
package resolver
