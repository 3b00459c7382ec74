// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for renamex.
//
// This package implements the Cobra command hierarchy: the root command,
// which searches filenames with a regular expression and optionally renames
// the matches, and the config subcommands.
package cmd
