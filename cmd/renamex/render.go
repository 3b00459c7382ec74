// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"renamex-cli/internal/issue"
	"renamex-cli/internal/renamer"
	"renamex-cli/internal/scan"
)

// renderMatches lists matched files when no replacement was requested.
func renderMatches(w io.Writer, candidates []scan.Candidate) {
	for _, cand := range candidates {
		fmt.Fprintf(w, "Match found: %s\n", MatchStyle.Render(cand.Path))
	}
	fmt.Fprintf(w, "Total matches: %s\n", SuccessStyle.Render(fmt.Sprintf("%d", len(candidates))))
}

// renderPlan prints every prospective rename. The header distinguishes a
// preview (dry run or pre-confirmation) from an applied plan.
func renderPlan(w io.Writer, ops []renamer.Op, preview bool) {
	if preview {
		fmt.Fprintln(w, TitleStyle.Render("Planned renames"))
	}
	for _, op := range ops {
		fmt.Fprintf(w, "  %s ~~> %s\n", MatchStyle.Render(op.OldPath), TargetStyle.Render(op.NewName))
	}
}

// renderOpResult prints the outcome of a single op as it completes.
func renderOpResult(w io.Writer, op renamer.Op, err error, dryRun bool) {
	switch {
	case dryRun:
		fmt.Fprintf(w, "--test-run mapping: %s ~~> %s\n",
			MatchStyle.Render(op.OldPath), TargetStyle.Render(op.NewName))
	case err != nil:
		fmt.Fprintf(w, "%s %s: %v\n", ErrorStyle.Render("Rename failed:"), op.OldPath, err)
	default:
		fmt.Fprintf(w, "Renamed: %s ~~> %s\n",
			MatchStyle.Render(op.OldPath), TargetStyle.Render(op.NewName))
	}
}

// renderSkips reports matches excluded from the plan, with the reason.
func renderSkips(w io.Writer, skips []renamer.Skip) {
	for _, skip := range skips {
		fmt.Fprintf(w, "%s %s (%s)\n", WarningStyle.Render("Skipped:"), skip.Path, skip.Reason)
	}
}

// renderSummary prints the closing counters for a rename run.
func renderSummary(w io.Writer, matches int, plan renamer.Plan, res renamer.Result, dryRun bool) {
	fmt.Fprintf(w, "Total matches: %s", SuccessStyle.Render(fmt.Sprintf("%d", matches)))
	if dryRun {
		fmt.Fprintf(w, ", would rename: %s", TargetStyle.Render(fmt.Sprintf("%d", len(plan.Ops))))
	} else {
		fmt.Fprintf(w, ", renamed: %s", TargetStyle.Render(fmt.Sprintf("%d", res.Renamed)))
	}
	if len(plan.Skipped) > 0 {
		fmt.Fprintf(w, ", skipped: %s", WarningStyle.Render(fmt.Sprintf("%d", len(plan.Skipped))))
	}
	if len(res.Failed) > 0 {
		fmt.Fprintf(w, ", failed: %s", ErrorStyle.Render(fmt.Sprintf("%d", len(res.Failed))))
	}
	fmt.Fprintln(w)
}

// formatErrorForDisplay renders err for terminal output, using the richer
// actionable form when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
