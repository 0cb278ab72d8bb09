package cli

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xroche/enhancedminmax/internal/suite"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // case filter (glob pattern)
}

// SuiteSummary holds the result of one suite file.
type SuiteSummary struct {
	File   string             `json:"file"`
	Name   string             `json:"name,omitempty"`
	Pass   bool               `json:"pass"`
	Errors []string           `json:"errors,omitempty"` // load errors
	Cases  []suite.CaseResult `json:"cases"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Suites []SuiteSummary `json:"suites"`
	Passed int            `json:"passed"`
	Failed int            `json:"failed"`
	Total  int            `json:"total"`
}

func (r CheckResult) String() string {
	var b strings.Builder
	for _, s := range r.Suites {
		name := s.Name
		if name == "" {
			name = s.File
		}
		mark := "✓"
		if !s.Pass {
			mark = "✗"
		}
		fmt.Fprintf(&b, "%s %s (%d cases)\n", mark, name, len(s.Cases))
		for _, e := range s.Errors {
			fmt.Fprintf(&b, "  Load error: %s\n", e)
		}
		for _, c := range s.Cases {
			if c.Pass {
				continue
			}
			fmt.Fprintf(&b, "  ✗ %s\n", c.Name)
			for _, e := range c.Errors {
				fmt.Fprintf(&b, "    %s\n", e)
			}
		}
	}
	fmt.Fprintf(&b, "\nCheck Summary: %d passed, %d failed, %d total", r.Passed, r.Failed, r.Total)
	if r.Failed == 0 {
		b.WriteString("\n✓ All cases passed")
	}
	return b.String()
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suite-file-or-dir...>",
		Short: "Run case suites",
		Long: `Run selection cases from YAML (.yaml, .yml) or CUE (.cue) suite files.
Directories are searched recursively.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed, or a suite could not be loaded
  2 - Command error (missing path, bad filter)

Examples:
  minmax check ./suites
  minmax check ./suites/references.cue --filter "max_*"
  minmax check ./suites --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")

	return cmd
}

func runCheck(opts *CheckOptions, roots []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	log := opts.log()

	if _, err := path.Match(opts.Filter, ""); err != nil {
		return f.Fail(ExitCommandError, ErrCodeBadFlag, fmt.Errorf("invalid filter pattern: %w", err))
	}

	var files []string
	for _, root := range roots {
		found, err := suite.Find(root)
		if errors.Is(err, os.ErrNotExist) {
			return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Errorf("suite path not found: %s", root))
		}
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeGeneric, fmt.Errorf("failed to find suites: %w", err))
		}
		files = append(files, found...)
	}

	result := CheckResult{Suites: make([]SuiteSummary, 0, len(files))}
	for _, file := range files {
		summary := checkFile(opts, file)
		log.Debug("suite checked", "file", file, "pass", summary.Pass, "cases", len(summary.Cases))

		for _, c := range summary.Cases {
			if c.Pass {
				result.Passed++
			} else {
				result.Failed++
			}
		}
		if summary.Errors != nil {
			// An unloadable suite counts as one failure.
			result.Failed++
		}
		result.Suites = append(result.Suites, summary)
	}
	result.Total = result.Passed + result.Failed

	if result.Failed == 0 {
		return f.Success(result)
	}

	failure := &ExitError{
		Code:    ExitFailure,
		ErrCode: ErrCodeSuiteFailed,
		Message: fmt.Sprintf("%d case(s) failed", result.Failed),
	}
	if opts.Format == "json" {
		if err := f.encode(CLIResponse{
			Status: "error",
			Data:   result,
			Error:  &CLIError{Code: failure.ErrCode, Message: failure.Message},
		}); err != nil {
			return err
		}
		return failure
	}
	if err := f.Success(result); err != nil {
		return err
	}
	return failure
}

func checkFile(opts *CheckOptions, file string) SuiteSummary {
	summary := SuiteSummary{File: file, Cases: []suite.CaseResult{}}

	s, err := suite.Load(file)
	if err != nil {
		summary.Errors = []string{err.Error()}
		return summary
	}
	summary.Name = s.Name

	// The pattern was validated by runCheck.
	s, _ = suite.Filter(s, opts.Filter)

	res := suite.Run(s)
	summary.Pass = res.Pass
	summary.Cases = res.Cases
	return summary
}
