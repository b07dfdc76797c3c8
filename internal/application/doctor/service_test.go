package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/ports"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubLister struct {
	pods []domain.PodRecord
	err  error
}

func (s stubLister) ListPods(context.Context) ([]domain.PodRecord, error) { return s.pods, s.err }

func listerFor(l stubLister) func(domain.Config) (ports.PodLister, error) {
	return func(domain.Config) (ports.PodLister, error) { return l, nil }
}

func foundAt(path string) func(string) (string, error) {
	return func(string) (string, error) { return path, nil }
}

func TestServiceRun(t *testing.T) {
	cfg := domain.DefaultConfig()
	apiCfg := domain.DefaultConfig()
	apiCfg.Lister = domain.ListerAPI

	tests := []struct {
		name       string
		svc        *Service
		wantErr    bool
		wantStatus map[string]domain.HealthStatus
	}{
		{
			name: "healthy",
			svc: &Service{
				ConfigProvider: stubConfig{cfg: cfg},
				Lister:         listerFor(stubLister{pods: []domain.PodRecord{{Name: "a"}}}),
				LookPath:       foundAt("/usr/bin/kubectl"),
			},
			wantStatus: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK,
				"kubectl":     domain.HealthOK,
				"Cluster":     domain.HealthOK,
			},
		},
		{
			name:       "config failure",
			svc:        &Service{ConfigProvider: stubConfig{err: errors.New("boom")}},
			wantErr:    true,
			wantStatus: map[string]domain.HealthStatus{"Config file": domain.HealthError},
		},
		{
			name: "kubectl missing and listing fails",
			svc: &Service{
				ConfigProvider: stubConfig{cfg: cfg},
				Lister:         listerFor(stubLister{err: errors.New("connection refused")}),
				LookPath:       func(string) (string, error) { return "", errors.New("not found") },
			},
			wantStatus: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK,
				"kubectl":     domain.HealthError,
				"Cluster":     domain.HealthError,
			},
		},
		{
			name: "api lister skips binary check",
			svc: &Service{
				ConfigProvider: stubConfig{cfg: apiCfg},
				Lister:         listerFor(stubLister{}),
			},
			wantStatus: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK,
				"Cluster":     domain.HealthWarn,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := tt.svc.Run(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run() error = %v, wantErr %v", err, tt.wantErr)
			}
			got := map[string]domain.HealthStatus{}
			for _, check := range report.Checks {
				got[check.Name] = check.Status
			}
			if len(got) != len(tt.wantStatus) {
				t.Errorf("checks = %v, want %v", got, tt.wantStatus)
			}
			for name, status := range tt.wantStatus {
				if got[name] != status {
					t.Errorf("%s = %q, want %q", name, got[name], status)
				}
			}
		})
	}
}
