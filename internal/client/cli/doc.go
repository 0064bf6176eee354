// Package cli implements the beerctl command tree on top of cobra.
//
// Commands: create <name>, list, count, health. Global flags: --config/-c,
// --addr/-a, --timeout and --json. Output is a table when stdout is a
// terminal and JSON otherwise.
package cli
