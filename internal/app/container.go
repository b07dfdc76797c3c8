package app

import (
	"context"
	"fmt"
	"io"

	"github.com/doeshing/rkl-go/internal/application/doctor"
	"github.com/doeshing/rkl-go/internal/application/resolve"
	"github.com/doeshing/rkl-go/internal/application/run"
	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/infrastructure/config"
	"github.com/doeshing/rkl-go/internal/infrastructure/executor"
	"github.com/doeshing/rkl-go/internal/infrastructure/kubeapi"
	"github.com/doeshing/rkl-go/internal/infrastructure/kubectl"
	"github.com/doeshing/rkl-go/internal/infrastructure/similarity"
	"github.com/doeshing/rkl-go/internal/pkg/logger"
	"github.com/doeshing/rkl-go/internal/ports"
)

// Options carries the command-line overrides and terminal streams.
type Options struct {
	ConfigPath string
	Namespace  string
	MiddleName string
	Verbose    bool

	// Input supplies the disambiguation choice.
	Input ports.LineReader
	// Menu receives the disambiguation menu and log records.
	Menu io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	RunService     *run.Service
	DoctorService  *doctor.Service
	Logger         ports.Logger
}

// BuildContainer loads the effective configuration and constructs the
// dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	provider := overrideProvider{base: cfgLoader, opts: opts}
	cfg, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(opts.Menu, opts.Verbose)
	log.Debug("loaded configuration", map[string]interface{}{
		"path":   cfgLoader.Path(),
		"lister": string(cfg.Lister),
	})

	exec := executor.NewLocalExecutor("")
	lister, err := NewPodLister(cfg, exec)
	if err != nil {
		return nil, err
	}
	scorer, err := similarity.ForKind(cfg.Resolution.Similarity)
	if err != nil {
		return nil, err
	}

	runService := &run.Service{
		Lister:   lister,
		Resolver: resolve.NewResolver(scorer, cfg.Resolution.CandidateSize),
		Chooser:  resolve.NewDisambiguator(opts.Menu, opts.Input, cfg.Resolution.CandidateSize),
		Builder:  kubectl.NewBuilder(cfg.Kubectl, cfg.Exec),
		Executor: exec,
		Logger:   log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: provider,
		Lister: func(cfg domain.Config) (ports.PodLister, error) {
			return NewPodLister(cfg, exec)
		},
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: provider,
		ConfigLoader:   cfgLoader,
		RunService:     runService,
		DoctorService:  doctorService,
		Logger:         log,
	}, nil
}

// NewPodLister selects the pod listing backend named by cfg.Lister.
func NewPodLister(cfg domain.Config, exec ports.CommandExecutor) (ports.PodLister, error) {
	switch cfg.Lister {
	case "", domain.ListerKubectl:
		return kubectl.NewLister(exec, kubectl.NewBuilder(cfg.Kubectl, cfg.Exec)), nil
	case domain.ListerAPI:
		clientset, namespace, err := kubeapi.NewClientset(cfg.Kubeconfig, cfg.Kubectl.Namespace)
		if err != nil {
			return nil, err
		}
		return kubeapi.NewLister(clientset, namespace), nil
	default:
		return nil, fmt.Errorf("unknown lister %q", cfg.Lister)
	}
}

// overrideProvider applies flag values on top of the file and environment.
type overrideProvider struct {
	base ports.ConfigProvider
	opts Options
}

func (p overrideProvider) Load(ctx context.Context) (domain.Config, error) {
	cfg, err := p.base.Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}
	if p.opts.Namespace != "" {
		cfg.Kubectl.Namespace = p.opts.Namespace
	}
	if p.opts.MiddleName != "" {
		cfg.Resolution.MiddleName = p.opts.MiddleName
	}
	return cfg, nil
}
