package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xroche/enhancedminmax/internal/literal"
	"github.com/xroche/enhancedminmax/minmax"
)

// Selection operations.
const (
	OpMin = "min"
	OpMax = "max"
)

// SelectResult is the output of the min and max commands.
type SelectResult struct {
	Op     string   `json:"op"`
	Args   []string `json:"args"`
	Result string   `json:"result"`
	Kind   string   `json:"kind"`
	Ref    bool     `json:"ref"`
	Index  int      `json:"index"` // 0-based position of the winning argument

	text string
}

func (r SelectResult) String() string { return r.text }

// NewSelectCommand creates the min or max command.
func NewSelectCommand(rootOpts *RootOptions, op string) *cobra.Command {
	verb := "least"
	if op == OpMax {
		verb = "greatest"
	}

	cmd := &cobra.Command{
		Use:   op + " <literal...>",
		Short: fmt.Sprintf("Print the %s argument", verb),
		Long: fmt.Sprintf(`Print the %s argument, converted to the kind all arguments unify to.

Signed and unsigned integers are compared by value: -2 is less than 0u even
though the result kind is uint. Put negative literals after "--".

Examples:
  minmax %[2]s 3 1 2
  minmax %[2]s -- -2 0u 7u
  minmax %[2]s --format json 1.5 2u8`, verb, op),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(rootOpts, op, args, cmd)
		},
	}

	return cmd
}

func runSelect(opts *RootOptions, op string, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	values, err := literal.ParseAll(args)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeBadLiteral, err)
	}

	result, index := selectValues(op, values)
	opts.log().Debug("selected",
		"op", op,
		"args", len(values),
		"index", index,
		"kind", result.Kind(),
		"ref", result.IsRef(),
	)

	return f.Success(SelectResult{
		Op:     op,
		Args:   args,
		Result: literal.Format(result),
		Kind:   result.Kind().String(),
		Ref:    result.IsRef(),
		Index:  index,
		text:   formatValue(result, opts.Group),
	})
}

func selectValues(op string, values []minmax.Value) (minmax.Value, int) {
	less := minmax.Lower
	if op == OpMax {
		less = minmax.Higher
	}
	return minmax.Select(less, values[0], values[1:]...)
}
