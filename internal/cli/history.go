package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xroche/enhancedminmax/internal/literal"
	"github.com/xroche/enhancedminmax/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	RunID    string // optional - show the steps of one run
}

// RunList is the output of history without --run.
type RunList struct {
	Runs []store.Run `json:"runs"`
}

func (l RunList) String() string {
	if len(l.Runs) == 0 {
		return "No runs recorded."
	}
	lines := make([]string, len(l.Runs))
	for i, r := range l.Runs {
		lines[i] = fmt.Sprintf("%s  %s  %d iterations  %s", r.ID, r.Op, r.Iterations, strings.Join(r.Args, " "))
	}
	return strings.Join(lines, "\n")
}

// RunDetail is the output of history --run.
type RunDetail struct {
	Run   store.Run    `json:"run"`
	Steps []store.Step `json:"steps"`
}

func (d RunDetail) String() string {
	names := variableNames(len(d.Run.Args))
	lines := []string{
		fmt.Sprintf("run %s: %s x%d", d.Run.ID, d.Run.Op, d.Run.Iterations),
		stateLine(names, canonicalArgs(d.Run.Args)),
	}
	for _, s := range d.Steps {
		lines = append(lines, fmt.Sprintf("#%d value=%s %s", s.Seq, s.Value, stateLine(names, s.State)))
	}
	return strings.Join(lines, "\n")
}

// canonicalArgs renders the stored argument literals the way demo prints
// its initial state.
func canonicalArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		v, err := literal.Parse(a)
		if err != nil {
			out[i] = a
			continue
		}
		out[i] = literal.Format(v.Detach())
	}
	return out
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded demo runs",
		Long: `List the demo runs recorded with "demo --db", oldest first, or show
every step of one run.

Examples:
  minmax history --db ./runs.db
  minmax history --db ./runs.db --run 0190c7a2-...
  minmax history --db ./runs.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "run ID to show")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	ctx := cmd.Context()

	// Open would create a missing database; history only reads.
	if _, err := os.Stat(opts.Database); err != nil {
		return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Errorf("database not found: %s", opts.Database))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, fmt.Errorf("failed to open database: %w", err))
	}
	defer st.Close()

	if opts.RunID == "" {
		runs, err := st.ListRuns(ctx)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeStore, err)
		}
		opts.log().Debug("runs listed", "count", len(runs))
		return f.Success(RunList{Runs: runs})
	}

	run, err := st.ReadRun(ctx, opts.RunID)
	if errors.Is(err, store.ErrNotFound) {
		return f.Fail(ExitCommandError, ErrCodeNotFound, err)
	}
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, err)
	}

	steps, err := st.ReadSteps(ctx, run.ID)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, err)
	}
	return f.Success(RunDetail{Run: run, Steps: steps})
}
