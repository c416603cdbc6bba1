package main

// cleanOptions configures the clean-tree check, resolved from the config
// file and command-line flags before the check runs
type cleanOptions struct {
	AllowUntracked  bool
	RequireUpstream bool
	Branch          string
}

// Config is the optional .precheck.yaml at the work tree root
type Config struct {
	Todos TodosConfig `yaml:"todos"`
	Clean CleanConfig `yaml:"clean"`
}

// TodosConfig configures the staged-TODO scanner
type TodosConfig struct {
	Markers    []string `yaml:"markers"`
	Extensions []string `yaml:"extensions"`
}

// CleanConfig sets defaults for the clean command's flags
type CleanConfig struct {
	AllowUntracked  bool   `yaml:"allow_untracked"`
	RequireUpstream bool   `yaml:"require_upstream"`
	Branch          string `yaml:"branch"`
}
