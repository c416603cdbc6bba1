package main

import (
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// git runs a git command in the current directory and returns stdout
func git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

// isInsideWorkTree checks if the current directory is inside a git work tree
func isInsideWorkTree() bool {
	out, err := git("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// workTreeRoot returns the top-level directory of the work tree
func workTreeRoot() (string, error) {
	return git("rev-parse", "--show-toplevel")
}

// currentBranch returns the current branch name, or "HEAD" if detached
func currentBranch() string {
	branch, err := git("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "HEAD"
	}
	return branch
}

// refreshIndex updates the index stat cache so diff does not report
// stale entries. Errors are ignored; this is a performance aid only.
func refreshIndex() {
	git("update-index", "-q", "--refresh")
}

// stagedPaths returns tracked paths that differ between HEAD and the index
func stagedPaths() ([]string, error) {
	out, err := git("diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// unstagedPaths returns tracked paths that differ between the index and the
// working tree
func unstagedPaths() ([]string, error) {
	out, err := git("diff", "--name-only")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// untrackedPaths returns untracked paths not covered by ignore rules
func untrackedPaths() ([]string, error) {
	out, err := git("ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// upstreamRef resolves the upstream tracking ref of the current branch
func upstreamRef() (string, error) {
	return git("rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
}

// aheadBehind counts commits the current branch is ahead of and behind the
// given upstream ref
func aheadBehind(upstream string) (ahead, behind int, err error) {
	out, err := git("rev-list", "--left-right", "--count", upstream+"...HEAD")
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	behind, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	ahead, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", out)
	}
	return ahead, behind, nil
}

// stagedPathsMatching returns paths staged for commit (added, copied,
// modified, or renamed) restricted to the given pathspecs
func stagedPathsMatching(pathspecs []string) ([]string, error) {
	args := []string{"diff", "--cached", "--name-only", "--diff-filter=ACMR", "--"}
	args = append(args, pathspecs...)
	out, err := git(args...)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// stagedGrep searches the staged content of the given paths for any of the
// markers, case-insensitively. Returns the matching file:line:text output and
// whether anything matched.
func stagedGrep(markers, paths []string) (string, bool, error) {
	args := []string{"grep", "-i", "-n", "--cached"}
	for _, m := range markers {
		args = append(args, "-e", m)
	}
	args = append(args, "--")
	args = append(args, paths...)
	out, err := git(args...)
	if err != nil {
		// git grep exits 1 when nothing matches
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", false, nil
		}
		return "", false, err
	}
	return out, true, nil
}

// splitLines splits command output into non-empty lines
func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
