package cli

import (
	"github.com/spf13/cobra"

	"github.com/xroche/enhancedminmax/internal/testutil"
)

// newTestRoot returns a root command with deterministic run IDs.
func newTestRoot(configure func(*RootOptions)) *cobra.Command {
	opts := &RootOptions{IDs: testutil.NewSequentialIDGenerator("run")}
	if configure != nil {
		configure(opts)
	}
	return newRootCommand(opts)
}
