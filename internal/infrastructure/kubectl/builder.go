// Package kubectl talks to the cluster through kubectl command lines: it
// builds the action commands and parses `get po -owide` listings.
package kubectl

import (
	"fmt"
	"strings"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

// Builder renders action command lines against a fixed connection prefix.
type Builder struct {
	prefix    string
	execShell string
}

// NewBuilder builds a Builder from the kubectl and exec settings.
func NewBuilder(kubectl domain.KubectlSettings, exec domain.ExecSettings) *Builder {
	return &Builder{prefix: Prefix(kubectl), execShell: exec.Shell}
}

// Prefix returns the kubectl invocation, namespace flag included when set.
func Prefix(settings domain.KubectlSettings) string {
	command := strings.TrimSpace(settings.Command)
	if command == "" {
		command = domain.DefaultKubectlCommand
	}
	if settings.Namespace != "" {
		command += " -n " + settings.Namespace
	}
	return command
}

// Build implements ports.CommandBuilder.
func (b *Builder) Build(kind domain.ActionKind, pod string) (string, error) {
	switch kind {
	case domain.ActionDelete:
		return fmt.Sprintf("%s delete po %s", b.prefix, pod), nil
	case domain.ActionDescribe:
		return fmt.Sprintf("%s describe po %s", b.prefix, pod), nil
	case domain.ActionLogs:
		return fmt.Sprintf("%s logs %s", b.prefix, pod), nil
	case domain.ActionFetchImage:
		return fmt.Sprintf("%s describe po %s | grep Image", b.prefix, pod), nil
	case domain.ActionFetchContainer:
		return fmt.Sprintf("%s describe po %s | grep container", b.prefix, pod), nil
	case domain.ActionExec:
		if b.execShell == "" {
			return fmt.Sprintf("%s exec -it %s", b.prefix, pod), nil
		}
		return fmt.Sprintf("%s exec -it %s -- %s", b.prefix, pod, b.execShell), nil
	default:
		return "", fmt.Errorf("unknown action %q", kind)
	}
}

// ListCommand is the command line that lists pods without a header row.
func (b *Builder) ListCommand() string {
	return b.prefix + " get po -owide --no-headers"
}

var _ ports.CommandBuilder = (*Builder)(nil)
