package domain

import "strings"

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}

// CommandOutcome pairs a built command with what happened when it ran.
type CommandOutcome struct {
	Pod     string
	Command string
	Result  *ExecutionResult
}

// RunRequest captures one CLI invocation.
type RunRequest struct {
	Action     Action
	MiddleName string
	DryRun     bool
}

// RunResponse is what the CLI renders after a run.
type RunResponse struct {
	Resolution Resolution
	Selected   []string
	Outcomes   []CommandOutcome
	NoMatch    bool
	DryRun     bool
}

// Output joins the stdout of every executed command in order, one trailing
// newline stripped from each. Commands with no captured stdout, such as
// attached exec sessions, are left out.
func (r RunResponse) Output() string {
	var parts []string
	for _, outcome := range r.Outcomes {
		if outcome.Result == nil || outcome.Result.Stdout == "" {
			continue
		}
		parts = append(parts, strings.TrimSuffix(outcome.Result.Stdout, "\n"))
	}
	return strings.Join(parts, "\n")
}
