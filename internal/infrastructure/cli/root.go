// Package cli exposes rkl as a cobra command tree.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/rkl-go/internal/app"
	"github.com/doeshing/rkl-go/internal/domain"
	"github.com/doeshing/rkl-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// Stdin is where menu choices are read from; os.Stdin when nil.
	Stdin io.Reader
}

type globalFlags struct {
	configPath string
	namespace  string
	middleName string
	dryRun     bool
	debug      bool
}

var actionSummaries = map[domain.ActionKind]string{
	domain.ActionDelete:         "Delete the matching pod(s)",
	domain.ActionDescribe:       "Describe the matching pod(s)",
	domain.ActionFetchImage:     "Show the image lines of the matching pod(s)",
	domain.ActionFetchContainer: "Show the container lines of the matching pod(s)",
	domain.ActionLogs:           "Print logs of the matching pod(s)",
	domain.ActionExec:           "Open a shell in the matching pod(s)",
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "rkl",
		Short: "rkl - run kubectl against pods named by a fragment",
		Long: "rkl resolves a partial pod name against the live pod listing, asks which pod\n" +
			"you meant when several match, and runs the kubectl action on each choice.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.rkl/config.yaml, or $RKL_CONFIG)")
	pf.StringVarP(&flags.namespace, "namespace", "n", "", "Namespace to list and act in")
	pf.StringVarP(&flags.middleName, "middle", "m", "", "Infix inserted before the fragment's trailing digits")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "Print the commands instead of running them")
	pf.BoolVar(&flags.debug, "debug", false, "Enable verbose logging")

	build := func(cmd *cobra.Command) (*app.Container, error) {
		return app.BuildContainer(cmd.Context(), app.Options{
			ConfigPath: flags.configPath,
			Namespace:  flags.namespace,
			MiddleName: flags.middleName,
			Verbose:    opts.Verbose || flags.debug,
			Input:      NewPrompter(opts.Stdin),
			Menu:       cmd.ErrOrStderr(),
		})
	}

	for _, kind := range domain.ActionKinds {
		root.AddCommand(newActionCommand(kind, flags, build))
	}
	root.AddCommand(commands.NewDoctorCommand(build))
	root.AddCommand(commands.NewConfigCommand(build))
	root.AddCommand(commands.NewVersionCommand())
	return root
}

func newActionCommand(kind domain.ActionKind, flags *globalFlags, build commands.ContainerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind) + " <pod>",
		Short: actionSummaries[kind],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := domain.NewAction(kind, args[0])
			if err != nil {
				return err
			}
			container, err := build(cmd)
			if err != nil {
				return err
			}
			resp, err := container.RunService.Run(cmd.Context(), domain.RunRequest{
				Action:     action,
				MiddleName: container.Config.Resolution.MiddleName,
				DryRun:     flags.dryRun,
			})
			RenderRun(cmd.OutOrStdout(), resp)
			return err
		},
	}
}
