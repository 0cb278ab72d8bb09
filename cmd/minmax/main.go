// Command minmax selects the least or greatest of mixed-type numbers.
package main

import (
	"fmt"
	"os"

	"github.com/xroche/enhancedminmax/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
