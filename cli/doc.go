// Package cli implements the top-level command-line interface for fdl.
//
// The interface is declared as a [CLI] struct parsed by
// [github.com/alecthomas/kong]. Global flag groups configure logging and
// (when built with the pprof tag) profiling; each subcommand lives in the
// nested cmd package.
//
// Configuration is self-hosted: kong flag defaults may be supplied by a
// config file written in FDL itself, resolved from the [config] section of
// $XDG_CONFIG_HOME/fdl/config.fdl. Command-line flags always win over
// config file values.
package cli
