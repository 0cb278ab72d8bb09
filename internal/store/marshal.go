package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// marshalLiterals converts a literal list to JSON TEXT for storage.
// HTML escaping is disabled so '&' references stay readable in the column.
func marshalLiterals(literals []string) (string, error) {
	if literals == nil {
		literals = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(literals); err != nil {
		return "", fmt.Errorf("marshal literals: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func unmarshalLiterals(data string) ([]string, error) {
	var literals []string
	if err := json.Unmarshal([]byte(data), &literals); err != nil {
		return nil, fmt.Errorf("unmarshal literals: %w", err)
	}
	if literals == nil {
		literals = []string{}
	}
	return literals, nil
}
