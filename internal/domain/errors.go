package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatch means neither the substring pass nor the fuzzy pass found a pod.
	ErrNoMatch = errors.New("no matching pod")
	// ErrInvalidSelection means the operator's menu input was rejected.
	ErrInvalidSelection = errors.New("input is not a valid option")
	// ErrListingParse means a pod listing row could not be split into its columns.
	ErrListingParse = errors.New("malformed pod listing")
	// ErrExecution means a built command failed to run.
	ErrExecution = errors.New("command execution failed")
)

// ListingParseError reports the offending row of a pod listing.
type ListingParseError struct {
	Line   string
	Fields int
}

func (e *ListingParseError) Error() string {
	return fmt.Sprintf("%s: expected %d fields, got %d in %q", ErrListingParse, PodFieldCount, e.Fields, e.Line)
}

func (e *ListingParseError) Is(target error) bool {
	return target == ErrListingParse
}

// InvalidSelectionError carries the rejected input and the options that were offered.
type InvalidSelectionError struct {
	Input string
	Valid string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("%s: %q (choose one of %s)", ErrInvalidSelection, e.Input, strings.Join(strings.Split(e.Valid, ""), ", "))
}

func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// ExecutionError wraps a failed command for one pod.
type ExecutionError struct {
	Pod      string
	Command  string
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("%s for pod %s (exit code %d): %v", ErrExecution, e.Pod, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("%s for pod %s: %v", ErrExecution, e.Pod, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecution
}
