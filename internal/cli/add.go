package cli

import (
	"github.com/katalvlaran/genmat/internal/scenario"
	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Files []string
}

// NewAddCommand runs scenarios loaded from YAML files.
func NewAddCommand(root *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: root}

	cmd := &cobra.Command{
		Use:   "add -f scenario.yaml [-f more.yaml]",
		Short: "Add the two matrices described by scenario files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := make([]*scenario.Scenario, 0, len(opts.Files))
			for _, path := range opts.Files {
				s, err := scenario.LoadFile(path)
				if err != nil {
					return WrapExitError(ExitCommandError, "load scenario", err)
				}
				all = append(all, s)
			}
			return runScenarios(cmd, opts.RootOptions, all)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "scenario YAML file (repeatable)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
