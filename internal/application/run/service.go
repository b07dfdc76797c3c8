// Package run drives one rkl invocation: normalize the fragment, list pods
// once, resolve candidates, let the operator disambiguate, then build and
// execute one command per chosen pod, strictly one after another.
package run

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/rkl-go/internal/application/resolve"
	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/pkg/logger"
	"github.com/doeshing/rkl-go/internal/ports"
)

// Chooser picks pod names out of several candidates.
type Chooser interface {
	Choose(domain.CandidateSet) ([]string, error)
}

// Service orchestrates the run lifecycle end-to-end.
type Service struct {
	Lister   ports.PodLister
	Resolver *resolve.Resolver
	Chooser  Chooser
	Builder  ports.CommandBuilder
	Executor ports.CommandExecutor
	Logger   ports.Logger
}

// Run resolves req.Action's fragment and runs the action on the chosen pods.
//
// No match is not an error: the response has NoMatch set. An invalid menu
// choice returns an error wrapping domain.ErrInvalidSelection before any
// command runs. When several pods were chosen, a failing command does not
// stop the rest; all failures are joined into the returned error.
func (s *Service) Run(ctx context.Context, req domain.RunRequest) (domain.RunResponse, error) {
	if s.Lister == nil || s.Resolver == nil || s.Chooser == nil || s.Builder == nil ||
		s.Executor == nil || s.Logger == nil {
		return domain.RunResponse{}, errors.New("run.Service dependencies not satisfied")
	}

	action := req.Action
	fragment := resolve.Normalize(action.Fragment, req.MiddleName)
	if fragment != action.Fragment {
		s.Logger.Debug("expanded fragment with middle name", map[string]interface{}{
			logger.KeyFragment: fragment,
			"middle_name":      req.MiddleName,
		})
	}

	pods, err := s.Lister.ListPods(ctx)
	if err != nil {
		return domain.RunResponse{}, err
	}

	resolution := s.Resolver.Resolve(fragment, pods)
	resp := domain.RunResponse{Resolution: resolution, DryRun: req.DryRun}

	if resolution.Fuzzy {
		s.Logger.Info("no pod named like fragment found, trying fuzzy match", map[string]interface{}{
			logger.KeyFragment: fragment,
		})
	}
	switch n := len(resolution.Candidates); {
	case n == 0:
		s.Logger.Info("fuzzy match has no results", map[string]interface{}{logger.KeyFragment: fragment})
		resp.NoMatch = true
		return resp, nil
	case n == 1:
		resp.Selected = []string{resolution.Candidates[0].Name}
	default:
		if !resolution.Fuzzy {
			s.Logger.Info("multiple pods named like fragment found", map[string]interface{}{
				logger.KeyFragment:   fragment,
				logger.KeyCandidates: n,
			})
		}
		selected, err := s.Chooser.Choose(resolution.Candidates)
		if err != nil {
			return resp, err
		}
		resp.Selected = selected
	}

	if action.Kind.Mutating() && len(resp.Selected) > 1 {
		s.Logger.Warn("applying to several pods", map[string]interface{}{
			logger.KeyAction:     string(action.Kind),
			logger.KeyCandidates: len(resp.Selected),
		})
	}

	var failures []error
	for _, pod := range resp.Selected {
		outcome, err := s.execute(ctx, action.Kind, pod, req.DryRun)
		resp.Outcomes = append(resp.Outcomes, outcome)
		if err != nil {
			s.Logger.Error("command failed", err, map[string]interface{}{
				logger.KeyPod:     pod,
				logger.KeyCommand: outcome.Command,
			})
			failures = append(failures, err)
		}
	}
	return resp, errors.Join(failures...)
}

func (s *Service) execute(ctx context.Context, kind domain.ActionKind, pod string, dryRun bool) (domain.CommandOutcome, error) {
	command, err := s.Builder.Build(kind, pod)
	outcome := domain.CommandOutcome{Pod: pod, Command: command}
	if err != nil {
		return outcome, fmt.Errorf("build command for %s: %w", pod, err)
	}
	s.Logger.Debug("running command", map[string]interface{}{
		logger.KeyPod:     pod,
		logger.KeyCommand: command,
	})
	if dryRun {
		return outcome, nil
	}

	var result domain.ExecutionResult
	if interactive, ok := s.Executor.(ports.InteractiveExecutor); ok && kind.Interactive() {
		result, err = interactive.ExecuteInteractive(ctx, command, nil, nil, nil)
	} else {
		result, err = s.Executor.Execute(ctx, command)
	}
	outcome.Result = &result
	if err != nil {
		return outcome, &domain.ExecutionError{
			Pod:      pod,
			Command:  command,
			ExitCode: result.ExitCode,
			Err:      fmt.Errorf("%s: %w", command, err),
		}
	}
	return outcome, nil
}
