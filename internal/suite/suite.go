package suite

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/xroche/enhancedminmax/minmax"
)

// Suite is a named list of selection cases.
type Suite struct {
	// Name identifies the suite and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description"`

	// Cases run in file order.
	Cases []Case `yaml:"cases"`
}

// Case is one call to min or max with its expected outcome.
type Case struct {
	Name string `yaml:"name"`

	// Op is "min" or "max".
	Op string `yaml:"op"`

	// Args are the argument literals. A leading '&' makes a reference.
	Args []Literal `yaml:"args"`

	// Want is compared with the result using minmax.Value.Equal.
	Want Literal `yaml:"want"`

	// Kind, if set, is the exact kind name the result must have.
	Kind string `yaml:"kind,omitempty"`

	// Ref, if set, says whether the result must be a reference.
	Ref *bool `yaml:"ref,omitempty"`

	// Mutate, if set, is added to the result before After is checked.
	Mutate *Delta `yaml:"mutate,omitempty"`

	// After lists the expected argument values once Mutate is applied.
	After []Literal `yaml:"after,omitempty"`
}

// Op values.
const (
	OpMin = "min"
	OpMax = "max"
)

// Literal is the source text of a number literal. In YAML it is taken
// verbatim from the scalar so that 1.0 stays a float and 0x1f stays hex.
type Literal string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: literal must be a scalar", node.Line)
	}
	if node.Value == "" {
		return fmt.Errorf("line %d: empty literal", node.Line)
	}
	*l = Literal(node.Value)
	return nil
}

// Delta is a signed increment.
type Delta int64

// UnmarshalYAML implements yaml.Unmarshaler. Quoted and bare integers are
// both accepted.
func (d *Delta) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	n, err := cast.ToInt64E(raw)
	if err != nil {
		return fmt.Errorf("line %d: mutate: %w", node.Line, err)
	}
	*d = Delta(n)
	return nil
}

// Load reads a suite from a .yaml, .yml or .cue file.
func Load(file string) (*Suite, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	var s *Suite
	switch ext := filepath.Ext(file); ext {
	case ".yaml", ".yml":
		s, err = decodeYAML(data)
	case ".cue":
		s, err = decodeCUE(data, file)
	default:
		return nil, fmt.Errorf("unsupported suite file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	if err := validate(s); err != nil {
		return nil, fmt.Errorf("%s: invalid suite: %w", file, err)
	}
	return s, nil
}

func decodeYAML(data []byte) (*Suite, error) {
	var s Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // typos like "arg:" are errors
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &s, nil
}

// Find returns the suite files under root in lexical order. A file root is
// returned as is.
func Find(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && isSuiteFile(p) {
			files = append(files, p)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

func isSuiteFile(p string) bool {
	switch filepath.Ext(p) {
	case ".yaml", ".yml", ".cue":
		return true
	}
	return false
}

// Filter returns a copy of s holding only the cases whose name matches the
// glob pattern. An empty pattern keeps every case.
func Filter(s *Suite, pattern string) (*Suite, error) {
	if pattern == "" {
		return s, nil
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad filter %q: %w", pattern, err)
	}

	out := *s
	out.Cases = nil
	for _, c := range s.Cases {
		if ok, _ := path.Match(pattern, c.Name); ok {
			out.Cases = append(out.Cases, c)
		}
	}
	return &out, nil
}

func validate(s *Suite) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Op != OpMin && c.Op != OpMax {
			return fmt.Errorf("cases[%d]: op must be %q or %q, got %q", i, OpMin, OpMax, c.Op)
		}
		if len(c.Args) == 0 {
			return fmt.Errorf("cases[%d]: args is required and must be non-empty", i)
		}
		if strings.TrimSpace(string(c.Want)) == "" {
			return fmt.Errorf("cases[%d]: want is required", i)
		}
		if c.Kind != "" {
			if _, ok := minmax.ParseKind(c.Kind); !ok {
				return fmt.Errorf("cases[%d]: unknown kind %q", i, c.Kind)
			}
		}
		if c.After != nil && len(c.After) != len(c.Args) {
			return fmt.Errorf("cases[%d]: after has %d values for %d args", i, len(c.After), len(c.Args))
		}
		if c.After != nil && c.Mutate == nil {
			return fmt.Errorf("cases[%d]: after requires mutate", i)
		}
	}
	return nil
}
