package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/rkl-go/internal/application/resolve"
	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/pkg/filesystem"
	"github.com/doeshing/rkl-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.rkl/config.yaml (overridable
// via RKL_CONFIG) and applies environment overrides. A missing file is not
// an error and nothing is ever written.
type FileLoader struct {
	overridePath string
	lookupEnv    func(string) (string, bool)
}

// NewFileLoader builds a new loader; path wins over RKL_CONFIG when set.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path, lookupEnv: os.LookupEnv}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := l.Path()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	l.applyEnv(&cfg)
	cfg.ApplyDefaults()
	return cfg, nil
}

// Path returns the config file location that Load reads.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom, ok := l.lookupEnv(domain.EnvConfig); ok && custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".rkl", "config.yaml")
}

func (l *FileLoader) applyEnv(cfg *domain.Config) {
	if _, ok := l.lookupEnv(domain.EnvCandidateSize); ok {
		cfg.Resolution.CandidateSize = resolve.WindowSize(l.lookupEnv)
	}
	if cfg.Lister == domain.ListerAPI && cfg.Kubeconfig == "" {
		if kubeconfig, ok := l.lookupEnv(domain.EnvKubeconfig); ok {
			cfg.Kubeconfig = kubeconfig
		}
	}
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(path)
}

// Marshal renders cfg as YAML for display.
func Marshal(cfg domain.Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
