package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xroche/enhancedminmax/internal/literal"
	"github.com/xroche/enhancedminmax/internal/store"
	"github.com/xroche/enhancedminmax/minmax"
)

// DemoOptions holds flags for the demo command.
type DemoOptions struct {
	*RootOptions
	Op         string
	Iterations int
	Database   string // optional run log
}

// DemoStep is the state after one iteration.
type DemoStep struct {
	Seq   int      `json:"seq"`
	Value string   `json:"value"`
	State []string `json:"state"`
}

// DemoResult holds the complete demo output.
type DemoResult struct {
	RunID   string     `json:"run_id,omitempty"`
	Op      string     `json:"op"`
	Names   []string   `json:"names"`
	Initial []string   `json:"initial"`
	Steps   []DemoStep `json:"steps"`

	text []string
}

func (r DemoResult) String() string { return strings.Join(r.text, "\n") }

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DemoOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "demo <literal...>",
		Short: "Repeatedly increment the selected argument",
		Long: `Store each argument in a variable, then repeatedly select the greatest
(or least) one and add 1 to the selection.

When every argument has the same kind the selection aliases the winning
variable, so the increment lands on it. Arguments of differing kinds yield
a detached value and the variables never change.

Each line shows the incremented value and every variable:

  a=3 b=1 c=2
  #1 value=4 a=4 b=1 c=2

Examples:
  minmax demo 3 1 2
  minmax demo --op min --iterations 3 3 1 2
  minmax demo 3u8 1 2
  minmax demo --db ./runs.db 3 1 2`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Op, "op", OpMax, "selection to increment (max|min)")
	cmd.Flags().IntVar(&opts.Iterations, "iterations", 10, "number of increments")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite database")

	return cmd
}

func runDemo(opts *DemoOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	log := opts.log()

	if opts.Op != OpMin && opts.Op != OpMax {
		return f.Fail(ExitCommandError, ErrCodeBadFlag, fmt.Errorf("invalid op %q: must be %s or %s", opts.Op, OpMax, OpMin))
	}
	if opts.Iterations < 0 {
		return f.Fail(ExitCommandError, ErrCodeBadFlag, fmt.Errorf("iterations must be non-negative, got %d", opts.Iterations))
	}

	parsed, err := literal.ParseAll(args)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeBadLiteral, err)
	}
	vars := make([]minmax.Value, len(parsed))
	for i, v := range parsed {
		if !v.IsRef() {
			v = minmax.Var(v)
		}
		vars[i] = v
	}

	rec, err := openRecorder(cmd.Context(), opts, args)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeStore, err)
	}
	defer rec.close()

	result := DemoResult{
		RunID:   rec.runID,
		Op:      opts.Op,
		Names:   variableNames(len(vars)),
		Initial: snapshot(vars, false),
		Steps:   make([]DemoStep, 0, opts.Iterations),
	}
	result.text = append(result.text, stateLine(result.Names, snapshot(vars, opts.Group)))

	for i := 1; i <= opts.Iterations; i++ {
		selected, index := selectValues(opts.Op, vars)
		selected = selected.Add(1)

		step := DemoStep{
			Seq:   i,
			Value: literal.Format(selected.Detach()),
			State: snapshot(vars, false),
		}
		result.Steps = append(result.Steps, step)
		result.text = append(result.text, fmt.Sprintf("#%d value=%s %s",
			i, formatValue(selected.Detach(), opts.Group), stateLine(result.Names, snapshot(vars, opts.Group))))

		log.Debug("demo step",
			"seq", i,
			"index", index,
			"value", step.Value,
			"aliased", selected.IsRef(),
		)

		if err := rec.step(cmd.Context(), step); err != nil {
			return f.Fail(ExitCommandError, ErrCodeStore, err)
		}
	}

	if rec.runID != "" {
		log.Info("demo run recorded", "run_id", rec.runID, "db", opts.Database, "steps", len(result.Steps))
	}

	return f.Success(result)
}

// variableNames returns a, b, ..., z, then x27, x28, ...
func variableNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		if i < 26 {
			names[i] = string(rune('a' + i))
		} else {
			names[i] = fmt.Sprintf("x%d", i+1)
		}
	}
	return names
}

func snapshot(vars []minmax.Value, group bool) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = formatValue(v.Detach(), group)
	}
	return out
}

func stateLine(names, values []string) string {
	parts := make([]string, len(names))
	for i := range names {
		parts[i] = names[i] + "=" + values[i]
	}
	return strings.Join(parts, " ")
}

// recorder writes a demo run to the store. The zero recorder, used when no
// database is configured, does nothing.
type recorder struct {
	st    *store.Store
	runID string
}

func openRecorder(ctx context.Context, opts *DemoOptions, args []string) (*recorder, error) {
	if opts.Database == "" {
		return &recorder{}, nil
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	run := store.Run{
		ID:         opts.ids().Generate(),
		Op:         opts.Op,
		Args:       args,
		Iterations: opts.Iterations,
	}
	if err := st.WriteRun(ctx, run); err != nil {
		st.Close()
		return nil, err
	}
	return &recorder{st: st, runID: run.ID}, nil
}

func (r *recorder) step(ctx context.Context, step DemoStep) error {
	if r.st == nil {
		return nil
	}
	return r.st.WriteStep(ctx, store.Step{
		RunID: r.runID,
		Seq:   int64(step.Seq),
		Value: step.Value,
		State: step.State,
	})
}

func (r *recorder) close() {
	if r.st != nil {
		r.st.Close()
	}
}
