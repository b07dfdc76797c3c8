package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand(build ContainerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := build(cmd)
			if err != nil {
				return err
			}
			if container.ConfigLoader == nil {
				return errors.New(ErrConfigLoaderUnavailable)
			}
			return showConfiguration(cmd.OutOrStdout(), container.ConfigLoader.Path(), container.Config)
		},
	}
}

func showConfiguration(out io.Writer, path string, cfg domain.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	fmt.Fprintf(out, "# %s\n", path)
	_, err = out.Write(data)
	return err
}
