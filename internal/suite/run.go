package suite

import (
	"fmt"

	"github.com/xroche/enhancedminmax/internal/literal"
	"github.com/xroche/enhancedminmax/minmax"
)

// Result is the outcome of running a suite.
type Result struct {
	Suite  string       `json:"suite"`
	Pass   bool         `json:"pass"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}

// CaseResult records what a case produced and why it failed, if it did.
type CaseResult struct {
	Name   string   `json:"name"`
	Op     string   `json:"op"`
	Args   []string `json:"args"`
	Got    string   `json:"got,omitempty"`
	Kind   string   `json:"kind,omitempty"`
	Ref    bool     `json:"ref"`
	After  []string `json:"after,omitempty"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

func (c *CaseResult) fail(format string, args ...any) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
	c.Pass = false
}

// Run evaluates every case of s. Each case gets fresh argument storage, so
// a mutation in one case never leaks into another.
func Run(s *Suite) *Result {
	result := &Result{
		Suite: s.Name,
		Pass:  true,
		Cases: make([]CaseResult, 0, len(s.Cases)),
	}

	for _, c := range s.Cases {
		cr := runCase(c)
		if cr.Pass {
			result.Passed++
		} else {
			result.Failed++
			result.Pass = false
		}
		result.Cases = append(result.Cases, cr)
	}
	return result
}

func runCase(c Case) CaseResult {
	cr := CaseResult{
		Name: c.Name,
		Op:   c.Op,
		Args: literalStrings(c.Args),
		Pass: true,
	}

	args, err := literal.ParseAll(cr.Args)
	if err != nil {
		cr.fail("args: %v", err)
		return cr
	}
	want, err := literal.Parse(string(c.Want))
	if err != nil {
		cr.fail("want: %v", err)
		return cr
	}

	var got minmax.Value
	switch c.Op {
	case OpMin:
		got = minmax.MinOf(args[0], args[1:]...)
	case OpMax:
		got = minmax.MaxOf(args[0], args[1:]...)
	default:
		cr.fail("unknown op %q", c.Op)
		return cr
	}

	cr.Got = literal.Format(got)
	cr.Kind = got.Kind().String()
	cr.Ref = got.IsRef()

	if !got.Equal(want) {
		cr.fail("got %s, want %s", cr.Got, c.Want)
	}
	if c.Kind != "" && c.Kind != cr.Kind {
		cr.fail("got kind %s, want %s", cr.Kind, c.Kind)
	}
	if c.Ref != nil && *c.Ref != cr.Ref {
		cr.fail("got ref=%t, want ref=%t", cr.Ref, *c.Ref)
	}

	if c.Mutate == nil {
		return cr
	}
	got.Add(int64(*c.Mutate))

	cr.After = make([]string, len(args))
	for i, a := range args {
		cr.After[i] = literal.Format(a)
	}
	for i, lit := range c.After {
		expect, err := literal.Parse(string(lit))
		if err != nil {
			cr.fail("after[%d]: %v", i, err)
			continue
		}
		if !args[i].Equal(expect) {
			cr.fail("after[%d]: got %s, want %s", i, cr.After[i], lit)
		}
	}
	return cr
}

func literalStrings(lits []Literal) []string {
	out := make([]string, len(lits))
	for i, l := range lits {
		out[i] = string(l)
	}
	return out
}
