// Package hooks renders and installs Git hook scripts.
//
// Every script husk writes carries a version marker on its third line:
//
//	# This pre-push hook was set by husk v1.2.0: https://github.com/jmeyers/husk
//
// The marker is the ownership contract. A file without it was written
// by the user or another tool and is never modified or removed. A file
// with a matching version makes repeated installs a no-op; a file with
// any other stamped version is rewritten unconditionally, since husk
// exclusively owns every hook it has ever stamped.
//
// Writes go through a temp-file-then-rename in the hooks directory, so
// a crash or a racing installer can never leave a truncated script in
// place.
package hooks
