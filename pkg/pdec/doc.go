// Package pdec reads declaration files.
//
// A declaration file is a plain text file (extension .pdec by default) with
// one entry per line:
//
//	# comment
//	$ff = $appfolder(firefox)/Profiles
//	~/Dropbox/conf/_bashrc > ~
//	~/Dropbox/conf/prefs.js | $ff/$iniparser(profiles.ini, Profile0, Path)
//
// This package classifies lines and finds files; resolution and
// reconciliation live in the resolver and reconcile packages.
package pdec
