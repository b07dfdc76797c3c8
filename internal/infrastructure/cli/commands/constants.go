package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/rkl-go/internal/app"
)

// ContainerFactory builds the dependency graph once flags are parsed.
type ContainerFactory func(cmd *cobra.Command) (*app.Container, error)

// Error messages
const (
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrConfigLoaderUnavailable  = "config loader unavailable"
)
