// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"renamex-cli/internal/config"
	"renamex-cli/internal/issue"
	"renamex-cli/internal/renamer"
	"renamex-cli/internal/scan"
	"renamex-cli/internal/subst"
	"renamex-cli/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// searchOptions carries every input of one search/rename run. Nothing
// here is read from globals: the root directory in particular is always
// explicit, never the process working directory by side effect.
type searchOptions struct {
	Pattern       string
	Replacement   string
	HasRep        bool
	Root          string
	Recurse       bool
	TestRun       bool
	IncludeHidden bool
	Confirm       bool
	Scheme        config.ColorScheme
}

// errDeclined marks a run aborted at the confirmation prompt.
var errDeclined = errors.New("rename plan declined")

// runRoot adapts the cobra flags to searchOptions and runs the search.
func runRoot(cmd *cobra.Command, args []string) error {
	opts := searchOptions{
		Pattern:       args[0],
		Replacement:   replacement,
		HasRep:        cmd.Flags().Changed("rep"),
		Root:          rootDir,
		Recurse:       recurse,
		TestRun:       testRun,
		IncludeHidden: includeHidden,
		Confirm:       confirm,
		Scheme:        appConfig.UI.ColorScheme,
	}

	err := runSearch(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	if err == nil {
		return nil
	}

	if errors.Is(err, errDeclined) {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return &ExitError{Code: 1}
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		fmt.Fprint(cmd.ErrOrStderr(), ae.Render(glamourStyle(opts.Scheme)))
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
	}
	return err
}

// runSearch performs one full invocation: compile, check the template, scan,
// plan, and (unless listing or dry-running) rename. Per-file rename failures
// are reported and do not make the run fail.
func runSearch(out, errOut io.Writer, opts searchOptions) error {
	re, err := regexp.Compile(opts.Pattern)
	if err != nil {
		return issue.NewContext().
			WithOperation("compile pattern").
			WithResource(opts.Pattern).
			WithSuggestion("renamex uses Go RE2 syntax; see `go doc regexp/syntax`").
			WithSuggestion("Quote the pattern so the shell does not expand it").
			Wrap(err).
			BuildError()
	}

	tmpl := subst.New(opts.Replacement)
	if opts.HasRep {
		// Advisory only: ambiguous references warn and the run continues,
		// since the engine's own substitution rule is well defined.
		for _, w := range tmpl.Warnings() {
			fmt.Fprintln(errOut, WarningStyle.Render("Warning: ")+w.Message())
		}
	}

	candidates, err := scan.Matches(re, scan.Options{
		Root:          opts.Root,
		Recurse:       opts.Recurse,
		IncludeHidden: opts.IncludeHidden,
	})
	if err != nil {
		return issue.NewContext().
			WithOperation("scan directory").
			WithResource(opts.Root).
			WithSuggestion("Check that the directory exists and is readable").
			Wrap(err).
			BuildError()
	}

	if !opts.HasRep {
		renderMatches(out, candidates)
		return nil
	}

	plan := renamer.Build(re, tmpl, candidates)
	renderSkips(errOut, plan.Skipped)

	if opts.Confirm && !opts.TestRun && len(plan.Ops) > 0 {
		renderPlan(out, plan.Ops, true)
		confirmed, err := tui.Confirm(tui.ConfirmOptions{
			Title:       fmt.Sprintf("Rename %d file(s)?", len(plan.Ops)),
			Description: "Renames are applied immediately and are not rolled back.",
		})
		if err != nil {
			return fmt.Errorf("confirmation prompt: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(out, SubtitleStyle.Render("Aborted, nothing renamed."))
			return errDeclined
		}
	}

	res := renamer.Execute(plan, renamer.ExecOptions{
		DryRun: opts.TestRun,
		Logger: log.Default(),
		OnResult: func(op renamer.Op, err error) {
			renderOpResult(out, op, err, opts.TestRun)
		},
	})

	renderSummary(out, len(candidates), plan, res, opts.TestRun)
	return nil
}
