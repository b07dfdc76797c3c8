package resolve

import (
	"testing"

	"github.com/doeshing/rkl-go/internal/domain"
)

func TestWindowSize(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want int
	}{
		{name: "unset", env: map[string]string{}, want: domain.DefaultCandidateSize},
		{name: "too large", env: map[string]string{domain.EnvCandidateSize: "100"}, want: domain.MaxCandidateSize},
		{name: "negative", env: map[string]string{domain.EnvCandidateSize: "-1"}, want: domain.DefaultCandidateSize},
		{name: "zero", env: map[string]string{domain.EnvCandidateSize: "0"}, want: domain.DefaultCandidateSize},
		{name: "not a number", env: map[string]string{domain.EnvCandidateSize: "abcd"}, want: domain.DefaultCandidateSize},
		{name: "valid", env: map[string]string{domain.EnvCandidateSize: "12"}, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}
			if got := WindowSize(lookup); got != tt.want {
				t.Errorf("WindowSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWindowSizeFromEnv(t *testing.T) {
	t.Setenv(domain.EnvCandidateSize, "100")
	if got := WindowSizeFromEnv(); got != domain.MaxCandidateSize {
		t.Errorf("WindowSizeFromEnv() = %d, want %d", got, domain.MaxCandidateSize)
	}
}

func TestLabels(t *testing.T) {
	if got := Labels(3); got != "abc" {
		t.Errorf("Labels(3) = %q, want %q", got, "abc")
	}
	if got := Labels(100); got != "abcdefghijklmnopqrstuvwxy" {
		t.Errorf("Labels(100) = %q", got)
	}
	if got := Labels(0); got != "" {
		t.Errorf("Labels(0) = %q, want empty", got)
	}
}
