package main

import (
	"fmt"
	"io"
)

// scanTodos searches the staged content of files matching the configured
// extensions for the configured markers, case-insensitively. Matches are
// listed on stdout and fail the check; no matches is silent success.
func scanTodos(cfg TodosConfig, stdout, stderr io.Writer, verbose bool) error {
	if verbose {
		fmt.Fprintf(stderr, "listing staged files matching %v\n", cfg.pathspecs())
	}
	files, err := stagedPathsMatching(cfg.pathspecs())
	if err != nil {
		return fmt.Errorf("listing staged files: %w", err)
	}
	if len(files) == 0 {
		if verbose {
			fmt.Fprintf(stderr, "no staged files to scan\n")
		}
		return nil
	}

	if verbose {
		fmt.Fprintf(stderr, "scanning %d staged file(s) for %v\n", len(files), cfg.Markers)
	}
	matches, found, err := stagedGrep(cfg.Markers, files)
	if err != nil {
		return fmt.Errorf("searching staged files: %w", err)
	}
	if !found {
		return nil
	}

	fmt.Fprintln(stdout, matches)
	fmt.Fprintln(stderr, fail("Remove the markers above before committing."))
	return errNotClean
}
