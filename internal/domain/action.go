package domain

import "fmt"

// ActionKind enumerates the operations rkl can run against a pod.
type ActionKind string

const (
	ActionDelete         ActionKind = "delete"
	ActionDescribe       ActionKind = "describe"
	ActionFetchImage     ActionKind = "image"
	ActionFetchContainer ActionKind = "container"
	ActionLogs           ActionKind = "log"
	ActionExec           ActionKind = "exec"
)

// ActionKinds lists every supported kind in CLI order.
var ActionKinds = []ActionKind{
	ActionDelete,
	ActionDescribe,
	ActionFetchImage,
	ActionFetchContainer,
	ActionLogs,
	ActionExec,
}

// Action is the operator's request: what to do and the fragment naming the pod.
type Action struct {
	Kind     ActionKind
	Fragment string
}

// NewAction validates kind and fragment.
func NewAction(kind ActionKind, fragment string) (Action, error) {
	if !kind.Valid() {
		return Action{}, fmt.Errorf("unknown action %q", kind)
	}
	if fragment == "" {
		return Action{}, fmt.Errorf("%s: pod name is required", kind)
	}
	return Action{Kind: kind, Fragment: fragment}, nil
}

// Valid reports whether k is one of ActionKinds.
func (k ActionKind) Valid() bool {
	for _, known := range ActionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Interactive reports whether the action needs the operator's terminal.
func (k ActionKind) Interactive() bool {
	return k == ActionExec
}

// Mutating reports whether the action changes cluster state.
func (k ActionKind) Mutating() bool {
	return k == ActionDelete
}
