// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (fragment resolution, disambiguation, run orchestration)
// depends only on these contracts. Adapters in the infrastructure layer talk to
// kubectl, the Kubernetes API, the shell and the terminal.
package ports

import (
	"context"
	"io"

	"github.com/doeshing/rkl-go/internal/domain"
)

// ConfigProvider loads the effective configuration.
// Implementations typically read ~/.rkl/config.yaml and the environment.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// PodLister returns the current pods of the target namespace, in listing order.
type PodLister interface {
	ListPods(ctx context.Context) ([]domain.PodRecord, error)
}

// CommandExecutor runs a literal command line and captures its output.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// InteractiveExecutor runs a command attached to the given streams.
// Used for exec sessions where the operator needs the pod's terminal.
type InteractiveExecutor interface {
	ExecuteInteractive(ctx context.Context, command string, stdin io.Reader, stdout, stderr io.Writer) (domain.ExecutionResult, error)
}

// CommandBuilder maps an action and a resolved pod name to a command line.
// Unknown kinds are an error.
type CommandBuilder interface {
	Build(kind domain.ActionKind, pod string) (string, error)
}

// SimilarityScorer returns a non-negative distance; lower means more similar.
type SimilarityScorer interface {
	Distance(a, b string) float64
}

// LineReader supplies one line of operator input. It blocks until the line
// is available.
type LineReader interface {
	ReadLine() (string, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
