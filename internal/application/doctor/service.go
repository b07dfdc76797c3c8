package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	// Lister is built from the loaded config; nil skips the cluster check.
	Lister   func(domain.Config) (ports.PodLister, error)
	LookPath func(string) (string, error)
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("lister=%s similarity=%s candidates=%d",
		cfg.Lister, cfg.Resolution.Similarity, cfg.Resolution.CandidateSize)))

	if cfg.Lister == domain.ListerKubectl {
		checks = append(checks, s.binaryCheck(cfg.Kubectl))
	}

	if s.Lister == nil {
		checks = append(checks, warn("Cluster", "pod lister not initialized"))
		return domain.HealthReport{Checks: checks}, nil
	}
	lister, err := s.Lister(cfg)
	if err != nil {
		checks = append(checks, fail("Cluster", err.Error()))
		return domain.HealthReport{Checks: checks}, nil
	}
	pods, err := lister.ListPods(ctx)
	switch {
	case err != nil:
		checks = append(checks, fail("Cluster", err.Error()))
	case len(pods) == 0:
		checks = append(checks, warn("Cluster", "no pods in namespace"))
	default:
		checks = append(checks, ok("Cluster", fmt.Sprintf("listed %d pods", len(pods))))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) binaryCheck(settings domain.KubectlSettings) domain.HealthCheck {
	fields := strings.Fields(settings.Command)
	if len(fields) == 0 {
		return fail("kubectl", "command is empty")
	}
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(fields[0])
	if err != nil {
		return fail("kubectl", fmt.Sprintf("%s not found in PATH", fields[0]))
	}
	return ok("kubectl", path)
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
