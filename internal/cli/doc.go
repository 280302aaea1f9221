// Package cli wires together the Cobra command tree for the commitguard
// binary.
//
// It defines the root command and all subcommands (check, scan, hook,
// config, version), binds flags, reads configuration, invokes the guard, and
// returns deterministic exit codes.
package cli
