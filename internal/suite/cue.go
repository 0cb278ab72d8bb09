package suite

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/cast"

	"github.com/xroche/enhancedminmax/internal/literal"
	"github.com/xroche/enhancedminmax/minmax"
)

var (
	suiteFields = []string{"name", "description", "cases"}
	caseFields  = []string{"name", "op", "args", "want", "kind", "ref", "mutate", "after"}
)

// decodeCUE evaluates a CUE document with the same shape as the YAML form.
// Numbers may be written bare; anything needing a suffix or '&' is a string.
func decodeCUE(data []byte, file string) (*Suite, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(file))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("building CUE value: %w", err)
	}
	if err := checkFields(v, suiteFields); err != nil {
		return nil, err
	}

	var (
		s   Suite
		err error
	)
	if s.Name, err = optionalString(v, "name"); err != nil {
		return nil, err
	}
	if s.Description, err = optionalString(v, "description"); err != nil {
		return nil, err
	}

	casesVal := v.LookupPath(cue.ParsePath("cases"))
	if !casesVal.Exists() {
		return &s, nil
	}
	iter, err := casesVal.List()
	if err != nil {
		return nil, fmt.Errorf("cases: %w", err)
	}
	for i := 0; iter.Next(); i++ {
		c, err := decodeCUECase(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("cases[%d]: %w", i, err)
		}
		s.Cases = append(s.Cases, c)
	}
	return &s, nil
}

func decodeCUECase(v cue.Value) (Case, error) {
	var (
		c   Case
		err error
	)
	if err := checkFields(v, caseFields); err != nil {
		return c, err
	}
	if c.Name, err = optionalString(v, "name"); err != nil {
		return c, err
	}
	if c.Op, err = optionalString(v, "op"); err != nil {
		return c, err
	}
	if c.Kind, err = optionalString(v, "kind"); err != nil {
		return c, err
	}
	if c.Args, err = cueLiterals(v.LookupPath(cue.ParsePath("args"))); err != nil {
		return c, fmt.Errorf("args: %w", err)
	}
	if c.After, err = cueLiterals(v.LookupPath(cue.ParsePath("after"))); err != nil {
		return c, fmt.Errorf("after: %w", err)
	}

	if want := v.LookupPath(cue.ParsePath("want")); want.Exists() {
		if c.Want, err = cueLiteral(want); err != nil {
			return c, fmt.Errorf("want: %w", err)
		}
	}

	if ref := v.LookupPath(cue.ParsePath("ref")); ref.Exists() {
		b, err := ref.Bool()
		if err != nil {
			return c, fmt.Errorf("ref: %w", err)
		}
		c.Ref = &b
	}

	if mutate := v.LookupPath(cue.ParsePath("mutate")); mutate.Exists() {
		n, err := mutate.Int64()
		if err != nil {
			return c, fmt.Errorf("mutate: %w", err)
		}
		d := Delta(n)
		c.Mutate = &d
	}
	return c, nil
}

func checkFields(v cue.Value, allowed []string) error {
	iter, err := v.Fields()
	if err != nil {
		return err
	}
	for iter.Next() {
		label := iter.Label()
		known := false
		for _, a := range allowed {
			if label == a {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("field %s not found in type", label)
		}
	}
	return nil
}

func optionalString(v cue.Value, field string) (string, error) {
	f := v.LookupPath(cue.ParsePath(field))
	if !f.Exists() {
		return "", nil
	}
	s, err := f.String()
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return s, nil
}

func cueLiterals(v cue.Value) ([]Literal, error) {
	if !v.Exists() {
		return nil, nil
	}
	iter, err := v.List()
	if err != nil {
		return nil, err
	}
	lits := []Literal{}
	for i := 0; iter.Next(); i++ {
		l, err := cueLiteral(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		lits = append(lits, l)
	}
	return lits, nil
}

// cueLiteral turns a CUE scalar into literal text. CUE floats that print
// without a fraction get an f64 suffix so they keep their kind.
func cueLiteral(v cue.Value) (Literal, error) {
	switch v.Kind() {
	case cue.StringKind:
		s, err := v.String()
		return Literal(s), err
	case cue.IntKind:
		n, err := v.Int(nil)
		if err != nil {
			return "", err
		}
		return Literal(n.String()), nil
	case cue.FloatKind:
		f, err := v.Float64()
		if err != nil {
			return "", err
		}
		text, err := cast.ToStringE(f)
		if err != nil {
			return "", err
		}
		return Literal(text + literal.Suffix(minmax.Float64, text)), nil
	default:
		return "", fmt.Errorf("expected a number or string, got %v", v.Kind())
	}
}
