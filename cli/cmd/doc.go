// Package cmd implements the fdl subcommands.
//
// Every command is a kong-tagged struct with a Run method receiving the
// application context. Commands that read a document accept its path as
// the first positional argument, or "-" to read standard input, and touch
// the core only through loading and lookup.
package cmd
