// SPDX-License-Identifier: MPL-2.0

// Package scan enumerates filesystem entries under a root directory and
// retains the ones whose filename matches a regular expression.
//
// Matching is against the base name only, never the full path, so a pattern
// like `^IMG_` cannot accidentally hit a parent directory component. The
// walk is sequential and synchronous; per-entry errors (permission, loops)
// are logged and skipped rather than aborting the run.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/karrick/godirwalk"
)

type (
	// Options controls a single scan. Root is passed explicitly everywhere;
	// the scanner never consults or mutates the process working directory.
	Options struct {
		// Root is the directory to scan.
		Root string
		// Recurse descends into child directories. When false only the
		// immediate children of Root are considered.
		Recurse bool
		// IncludeHidden includes dot-prefixed files and descends into
		// dot-prefixed directories.
		IncludeHidden bool
		// Logger receives per-entry walk diagnostics. Defaults to
		// log.Default when nil.
		Logger *log.Logger
	}

	// Candidate is one filesystem entry whose name matched the pattern.
	Candidate struct {
		// Path is the entry's path, rooted at Options.Root.
		Path string
		// Name is the base name the pattern matched against.
		Name string
	}
)

// Matches walks the root and returns every non-directory entry whose base
// name matches re. The root itself is never a candidate.
func Matches(re *regexp.Regexp, opts Options) ([]Candidate, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", opts.Root)
	}

	root := filepath.Clean(opts.Root)

	var candidates []Candidate
	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if osPathname == root {
				return nil
			}

			hidden := strings.HasPrefix(de.Name(), ".")

			if de.IsDir() {
				if hidden && !opts.IncludeHidden {
					logger.Debug("pruning hidden directory", "path", osPathname)
					return filepath.SkipDir
				}
				if !opts.Recurse {
					return filepath.SkipDir
				}
				return nil
			}

			if hidden && !opts.IncludeHidden {
				logger.Debug("skipping hidden entry", "path", osPathname)
				return nil
			}

			if !re.MatchString(de.Name()) {
				logger.Debug("no match", "path", osPathname)
				return nil
			}

			candidates = append(candidates, Candidate{Path: osPathname, Name: de.Name()})
			return nil
		},
		ErrorCallback: func(osPathname string, walkErr error) godirwalk.ErrorAction {
			// Continue past unreadable entries, mirroring the per-file
			// continue-on-error semantics of the rename phase.
			logger.Error("error while walking", "path", osPathname, "err", walkErr)
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", opts.Root, err)
	}

	return candidates, nil
}
