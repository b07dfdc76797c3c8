package kubectl

import (
	"context"
	"fmt"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

// Lister lists pods by running kubectl through a CommandExecutor.
type Lister struct {
	executor ports.CommandExecutor
	command  string
}

// NewLister builds a Lister that runs builder's list command.
func NewLister(executor ports.CommandExecutor, builder *Builder) *Lister {
	return &Lister{executor: executor, command: builder.ListCommand()}
}

// ListPods implements ports.PodLister.
func (l *Lister) ListPods(ctx context.Context) ([]domain.PodRecord, error) {
	result, err := l.executor.Execute(ctx, l.command)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}
	pods, err := ParsePodTable(result.Stdout)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}
	return pods, nil
}

var _ ports.PodLister = (*Lister)(nil)
