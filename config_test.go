package main

import (
	"testing"

	"4d63.com/testcli"
	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, []string{"TODO"}, cfg.Todos.Markers)
	assert.Equal(t, []string{".py", ".js"}, cfg.Todos.Extensions)
	assert.False(t, cfg.Clean.AllowUntracked)
	assert.False(t, cfg.Clean.RequireUpstream)
	assert.Equal(t, "", cfg.Clean.Branch)
}

func TestConfigPathspecs(t *testing.T) {
	cfg := TodosConfig{Extensions: []string{".py", "js", ".go"}}
	assert.Equal(t, []string{"*.py", "*.js", "*.go"}, cfg.pathspecs())
}

func TestConfigCleanAllowUntracked(t *testing.T) {
	setupGit(t)
	initRepo(t)
	testcli.WriteFile(t, ".precheck.yaml", []byte("clean:\n  allow_untracked: true\n"))
	testcli.WriteFile(t, "scratch", []byte("untracked"))

	args := []string{"precheck", "clean"}
	exitCode, stdout, stderr := testcli.Main(t, args, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, "Working tree clean.\n", stdout)
}

func TestConfigCleanBranch(t *testing.T) {
	setupGit(t)
	initRepo(t)
	testcli.WriteFile(t, ".precheck.yaml", []byte("clean:\n  branch: main\n"))
	testcli.Exec(t, "git checkout -b feature")

	args := []string{"precheck", "clean"}
	exitCode, _, stderr := testcli.Main(t, args, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "On branch 'feature', expected 'main'\n", stderr)
}

func TestConfigFlagOverridesConfig(t *testing.T) {
	setupGit(t)
	initRepo(t)
	testcli.WriteFile(t, ".precheck.yaml", []byte("clean:\n  branch: main\n"))
	testcli.Exec(t, "git add .precheck.yaml")
	testcli.Exec(t, "git commit -m 'Add precheck config'")
	testcli.Exec(t, "git checkout -b feature")

	args := []string{"precheck", "clean", "--branch", "feature"}
	exitCode, stdout, stderr := testcli.Main(t, args, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stderr)
	assert.Equal(t, "Working tree clean.\n", stdout)
}

func TestConfigTodosMarkersAndExtensions(t *testing.T) {
	setupGit(t)
	initRepo(t)
	testcli.WriteFile(t, ".precheck.yaml", []byte("todos:\n  markers: [TODO, FIXME]\n  extensions: [.go]\n"))
	testcli.WriteFile(t, "main.go", []byte("// FIXME: broken\n"))
	testcli.Exec(t, "git add main.go")

	args := []string{"precheck", "todos"}
	exitCode, stdout, _ := testcli.Main(t, args, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "main.go:1:// FIXME: broken\n", stdout)
}

func TestConfigTodosExtensionsReplaceDefaults(t *testing.T) {
	setupGit(t)
	initRepo(t)
	testcli.WriteFile(t, ".precheck.yaml", []byte("todos:\n  extensions: [.go]\n"))
	testcli.WriteFile(t, "app.py", []byte("# TODO: fix this\n"))
	testcli.Exec(t, "git add app.py")

	args := []string{"precheck", "todos"}
	exitCode, stdout, stderr := testcli.Main(t, args, nil, run)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "", stdout)
	assert.Equal(t, "", stderr)
}

func TestConfigMalformed(t *testing.T) {
	setupGit(t)
	initRepo(t)
	testcli.WriteFile(t, ".precheck.yaml", []byte("clean: [not a mapping\n"))

	args := []string{"precheck", "clean"}
	exitCode, _, stderr := testcli.Main(t, args, nil, run)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr, "parsing .precheck.yaml")
}
