// SPDX-License-Identifier: MPL-2.0

// Package renamer turns filename matches into a rename plan and executes it.
//
// Planning and execution are deliberately separate: a dry run and a real run
// build the identical plan, so what the preview reports is exactly what the
// executor would do. Execution is sequential and one-shot — no retries, no
// rollback. Renames performed before a later failure stay in effect.
package renamer

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"renamex-cli/internal/scan"
	"renamex-cli/internal/subst"
)

// Build computes the substituted name for every candidate and partitions the
// results into executable ops and skips. Conflicts are detected up front:
// empty or separator-carrying names, two matches claiming one target, and
// targets that already exist on disk.
func Build(re *regexp.Regexp, tmpl subst.Template, candidates []scan.Candidate) Plan {
	var plan Plan

	// target path → owning old path, for duplicate-target detection.
	claimed := make(map[string]string, len(candidates))

	for _, cand := range candidates {
		newName := tmpl.Expand(re, cand.Name)

		if newName == cand.Name {
			plan.Skipped = append(plan.Skipped, Skip{Path: cand.Path, NewName: newName, Reason: ReasonUnchanged})
			continue
		}
		if newName == "" {
			plan.Skipped = append(plan.Skipped, Skip{Path: cand.Path, NewName: newName, Reason: ReasonEmptyName})
			continue
		}
		if strings.ContainsRune(newName, os.PathSeparator) || strings.ContainsRune(newName, '/') {
			plan.Skipped = append(plan.Skipped, Skip{Path: cand.Path, NewName: newName, Reason: ReasonSeparator})
			continue
		}

		newPath := filepath.Join(filepath.Dir(cand.Path), newName)

		if owner, taken := claimed[newPath]; taken && owner != cand.Path {
			plan.Skipped = append(plan.Skipped, Skip{Path: cand.Path, NewName: newName, Reason: ReasonDuplicateTarget})
			continue
		}
		if _, err := os.Lstat(newPath); err == nil {
			plan.Skipped = append(plan.Skipped, Skip{Path: cand.Path, NewName: newName, Reason: ReasonTargetExists})
			continue
		}

		claimed[newPath] = cand.Path
		plan.Ops = append(plan.Ops, Op{
			OldPath: cand.Path,
			NewPath: newPath,
			OldName: cand.Name,
			NewName: newName,
		})
	}

	return plan
}
