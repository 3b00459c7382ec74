// SPDX-License-Identifier: MPL-2.0

package renamer

const (
	// ReasonUnchanged marks a match whose substituted name equals the
	// current name; there is nothing to do.
	ReasonUnchanged SkipReason = "name unchanged by substitution"
	// ReasonEmptyName marks a substitution that produced an empty filename.
	ReasonEmptyName SkipReason = "substitution produced an empty name"
	// ReasonSeparator marks a substitution that produced a path separator;
	// renames never move files between directories.
	ReasonSeparator SkipReason = "substitution produced a path separator"
	// ReasonDuplicateTarget marks a target already claimed by an earlier
	// match in the same plan.
	ReasonDuplicateTarget SkipReason = "target claimed by another match"
	// ReasonTargetExists marks a target that already exists on disk.
	ReasonTargetExists SkipReason = "target already exists"
)

type (
	// SkipReason explains why a matched file was left out of a plan.
	SkipReason string

	// Op is one prospective rename. Old and new paths always share a
	// directory; only the base name changes.
	Op struct {
		OldPath string
		NewPath string
		OldName string
		NewName string
	}

	// Skip is a matched file excluded from the plan, with the reason.
	Skip struct {
		Path    string
		NewName string
		Reason  SkipReason
	}

	// Plan is the full set of prospective renames for one invocation.
	// A dry run renders exactly this plan; a real run executes it.
	Plan struct {
		Ops     []Op
		Skipped []Skip
	}

	// OpError pairs a failed op with the underlying OS error.
	OpError struct {
		Op  Op
		Err error
	}

	// Result summarizes an executed (or dry-run) plan.
	Result struct {
		Renamed int
		Failed  []OpError
	}
)
