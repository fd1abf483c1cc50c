// Command genmat builds heap and fixed matrices, adds them and prints the results.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/genmat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
