// SPDX-License-Identifier: MPL-2.0

package renamer

import (
	"os"

	"github.com/charmbracelet/log"
)

// ExecOptions controls plan execution.
type ExecOptions struct {
	// DryRun computes and reports every op without touching the filesystem.
	DryRun bool
	// Logger receives per-op diagnostics. Defaults to log.Default when nil.
	Logger *log.Logger
	// OnResult, when set, is invoked once per op as it completes; err is
	// nil on success (and always nil in a dry run).
	OnResult func(op Op, err error)
}

// Execute runs the plan's ops in order, one synchronous os.Rename each.
// A failed op is recorded and reported; the remaining ops still run.
func Execute(plan Plan, opts ExecOptions) Result {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var res Result
	for _, op := range plan.Ops {
		if opts.DryRun {
			logger.Debug("dry run, skipping rename", "from", op.OldPath, "to", op.NewPath)
			if opts.OnResult != nil {
				opts.OnResult(op, nil)
			}
			continue
		}

		err := os.Rename(op.OldPath, op.NewPath)
		if err != nil {
			logger.Error("rename failed", "from", op.OldPath, "to", op.NewPath, "err", err)
			res.Failed = append(res.Failed, OpError{Op: op, Err: err})
		} else {
			logger.Debug("renamed", "from", op.OldPath, "to", op.NewPath)
			res.Renamed++
		}
		if opts.OnResult != nil {
			opts.OnResult(op, err)
		}
	}

	return res
}
