package research

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed prompts.yaml
var defaultPromptsYAML []byte

// Prompts maps an operation name to its prompt prefix.
type Prompts map[string]string

type promptFile struct {
	Operations map[string]string `yaml:"operations"`
}

// DefaultPrompts returns the built-in summarize and suggest prompts.
func DefaultPrompts() Prompts {
	p, err := ParsePrompts(defaultPromptsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded prompts are invalid: %v", err))
	}
	return p
}

// ParsePrompts decodes a prompt catalogue.
func ParsePrompts(data []byte) (Prompts, error) {
	var f promptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse prompts: %w", err)
	}
	p := make(Prompts, len(f.Operations))
	for op, prefix := range f.Operations {
		op = strings.TrimSpace(op)
		prefix = strings.TrimSpace(prefix)
		if op == "" || prefix == "" {
			return nil, fmt.Errorf("parse prompts: operation %q has no prompt", op)
		}
		p[op] = prefix
	}
	return p, nil
}

// LoadPrompts returns the defaults overlaid with the operations in path.
// An empty path returns the defaults.
func LoadPrompts(path string) (Prompts, error) {
	p := DefaultPrompts()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts file: %w", err)
	}
	overrides, err := ParsePrompts(data)
	if err != nil {
		return nil, err
	}
	for op, prefix := range overrides {
		p[op] = prefix
	}
	return p, nil
}

// Operations lists the supported operation names in order.
func (p Prompts) Operations() []string {
	ops := make([]string, 0, len(p))
	for op := range p {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
