package main

import (
	"fmt"
	"io"
)

// checkClean verifies the sequence of clean-tree conditions in a fixed
// order, stopping at the first violation. Failure diagnostics go to stderr,
// path listings to stdout.
func checkClean(opts cleanOptions, stdout, stderr io.Writer, verbose bool) error {
	if verbose {
		fmt.Fprintf(stderr, "checking for a git work tree\n")
	}
	if !isInsideWorkTree() {
		fmt.Fprintln(stderr, fail("Not inside a git repository"))
		return errNotClean
	}

	if opts.Branch != "" {
		if verbose {
			fmt.Fprintf(stderr, "checking branch is %s\n", opts.Branch)
		}
		branch := currentBranch()
		if branch != opts.Branch {
			fmt.Fprintln(stderr, fail(fmt.Sprintf("On branch '%s', expected '%s'", branch, opts.Branch)))
			return errNotClean
		}
	}

	refreshIndex()

	if verbose {
		fmt.Fprintf(stderr, "checking for staged changes\n")
	}
	staged, err := stagedPaths()
	if err != nil {
		return fmt.Errorf("checking staged changes: %w", err)
	}
	if len(staged) > 0 {
		return reportPaths(stdout, stderr, "Staged but uncommitted changes present:", staged)
	}

	if verbose {
		fmt.Fprintf(stderr, "checking for unstaged changes\n")
	}
	unstaged, err := unstagedPaths()
	if err != nil {
		return fmt.Errorf("checking unstaged changes: %w", err)
	}
	if len(unstaged) > 0 {
		return reportPaths(stdout, stderr, "Unstaged changes present:", unstaged)
	}

	if !opts.AllowUntracked {
		if verbose {
			fmt.Fprintf(stderr, "checking for untracked files\n")
		}
		untracked, err := untrackedPaths()
		if err != nil {
			return fmt.Errorf("checking untracked files: %w", err)
		}
		if len(untracked) > 0 {
			return reportPaths(stdout, stderr, "Untracked files present:", untracked)
		}
	}

	if opts.RequireUpstream {
		if verbose {
			fmt.Fprintf(stderr, "checking upstream sync\n")
		}
		upstream, err := upstreamRef()
		if err != nil {
			fmt.Fprintln(stderr, fail(fmt.Sprintf("No upstream configured for branch '%s'", currentBranch())))
			return errNotClean
		}
		ahead, behind, err := aheadBehind(upstream)
		if err != nil {
			return fmt.Errorf("comparing with %s: %w", upstream, err)
		}
		if behind > 0 {
			fmt.Fprintln(stderr, fail(fmt.Sprintf("Branch is behind '%s' by %d commit(s)", upstream, behind)))
			return errNotClean
		}
		if ahead > 0 {
			fmt.Fprintln(stderr, fail(fmt.Sprintf("Branch is ahead of '%s' by %d commit(s)", upstream, ahead)))
			return errNotClean
		}
	}

	fmt.Fprintln(stdout, pass("Working tree clean."))
	return nil
}

// reportPaths prints a failure headline to stderr and the offending paths
// to stdout
func reportPaths(stdout, stderr io.Writer, headline string, paths []string) error {
	fmt.Fprintln(stderr, fail(headline))
	for _, p := range paths {
		fmt.Fprintf(stdout, "  %s\n", p)
	}
	return errNotClean
}
