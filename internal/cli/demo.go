package cli

import (
	"fmt"

	"github.com/katalvlaran/genmat/internal/scenario"
	"github.com/spf13/cobra"
)

const (
	demoHeader = "--- Generic linear algebra system --->"
	demoFooter = "System closed."
)

// NewDemoCommand runs the embedded scenarios: a float heap+fixed sum, an int
// fixed+heap sum and a shape mismatch.
func NewDemoCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in addition scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := scenario.Builtins()
			if err != nil {
				return WrapExitError(ExitCommandError, "load built-in scenarios", err)
			}
			return runScenarios(cmd, root, all)
		},
	}
}

// runScenarios runs, prints, checks and releases each scenario in order.
// The first failed expectation stops the run with ExitFailure.
func runScenarios(cmd *cobra.Command, root *RootOptions, all []*scenario.Scenario) error {
	out := cmd.OutOrStdout()
	log := root.logger(cmd.ErrOrStderr())
	popts := root.printOptions()

	fmt.Fprintf(out, "%s\n\n", demoHeader)
	for _, s := range all {
		res, err := scenario.Run(s)
		if err != nil {
			return WrapExitError(ExitCommandError, "run scenario", err)
		}
		if err = writeResult(out, res, popts); err != nil {
			return err
		}
		checkErr := res.Check()
		res.Release(log)
		if checkErr != nil {
			log.Error("scenario failed", "scenario", s.Name, "error", checkErr)
			return WrapExitError(ExitFailure, "scenario failed", checkErr)
		}
	}
	fmt.Fprintln(out, demoFooter)

	return nil
}
