package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errNotClean signals a failed check whose diagnostics were already printed.
// run maps it to exit status 1 without further output.
var errNotClean = errors.New("checks failed")

// usageError wraps command-line parse errors so run exits 2 instead of 1.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

var (
	pass = color.New(color.FgGreen, color.Bold).SprintFunc()
	fail = color.New(color.FgRed, color.Bold).SprintFunc()
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "precheck",
		Short: "Gate commits and CI runs on git repository state",
		Long:  "Check that a git working tree is clean before a CI run, and that staged files carry no TODO markers before a commit.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	var allowUntracked bool
	var requireUpstream bool
	var branch string

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Check that the working tree is clean",
		Long:  "Verify that the working tree has no staged, unstaged, or untracked changes, and optionally that the current branch matches an expected name and is in sync with its upstream.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := cleanOptions{
				AllowUntracked:  cfg.Clean.AllowUntracked,
				RequireUpstream: cfg.Clean.RequireUpstream,
				Branch:          cfg.Clean.Branch,
			}
			// Explicit flags win over config file defaults.
			if cmd.Flags().Changed("allow-untracked") {
				opts.AllowUntracked = allowUntracked
			}
			if cmd.Flags().Changed("require-upstream") {
				opts.RequireUpstream = requireUpstream
			}
			if cmd.Flags().Changed("branch") {
				opts.Branch = branch
			}

			return checkClean(opts, stdout, stderr, verbose)
		},
	}
	cleanCmd.Flags().BoolVar(&allowUntracked, "allow-untracked", false, "do not fail on untracked files")
	cleanCmd.Flags().BoolVar(&requireUpstream, "require-upstream", false, "fail unless the branch is in sync with its upstream")
	cleanCmd.Flags().StringVar(&branch, "branch", "", "fail unless the current branch matches this name")

	todosCmd := &cobra.Command{
		Use:   "todos",
		Short: "Scan staged files for TODO markers",
		Long:  "Search the staged content of files matching the configured extensions for TODO markers and fail if any are found. Intended to run as a pre-commit hook.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return scanTodos(cfg.Todos, stdout, stderr, verbose)
		},
	}

	rootCmd.AddCommand(cleanCmd, todosCmd)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if arg, ok := strings.CutPrefix(err.Error(), "unknown flag: "); ok {
			fmt.Fprintf(stderr, "Unknown arg: %s\n", arg)
		} else {
			fmt.Fprintln(stderr, err)
		}
		return usageError{err}
	})

	if err := rootCmd.Execute(); err != nil {
		var uerr usageError
		if errors.As(err, &uerr) {
			return 2
		}
		if strings.HasPrefix(err.Error(), "unknown command") {
			fmt.Fprintln(stderr, err)
			return 2
		}
		if !errors.Is(err, errNotClean) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
