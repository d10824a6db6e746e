// Package clicmd implements the thin command-dispatch contract spec.md
// §6 names: a small grammar of name(args), bare name, object.property,
// and target = value forms, routed onto World operations. The terminal
// rendering, line editor, and full parser/autocomplete experience are
// explicitly out of scope (spec.md §1) and left to an external
// collaborator; this package is only the operation surface that
// collaborator would invoke.
package clicmd

import (
	"fmt"
	"strings"
)

// Command is one parsed command-line invocation.
type Command struct {
	// Name is the command name, or one of the two synthetic names
	// "__assign__" (Args = [target, value]) or "__property__"
	// (Args = [object, property]).
	Name string
	Args []string
}

// Parse tokenizes one input line into a Command. Returns nil, nil for a
// blank line (no-op, not an error).
func Parse(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	if idx := topLevelAssign(line); idx >= 0 {
		target := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if target == "" || value == "" {
			return nil, fmt.Errorf("malformed assignment %q", line)
		}
		return &Command{Name: "__assign__", Args: []string{target, value}}, nil
	}

	if open := strings.IndexByte(line, '('); open >= 0 {
		if !strings.HasSuffix(line, ")") {
			return nil, fmt.Errorf("malformed argument list in %q", line)
		}
		name := strings.TrimSpace(line[:open])
		if name == "" {
			return nil, fmt.Errorf("missing command name in %q", line)
		}
		inner := line[open+1 : len(line)-1]
		args := splitArgs(inner)
		return &Command{Name: name, Args: args}, nil
	}

	if strings.Contains(line, ".") {
		parts := strings.SplitN(line, ".", 2)
		obj := strings.TrimSpace(parts[0])
		prop := strings.TrimSpace(parts[1])
		if obj == "" || prop == "" {
			return nil, fmt.Errorf("malformed property access %q", line)
		}
		return &Command{Name: "__property__", Args: []string{obj, prop}}, nil
	}

	return &Command{Name: line, Args: nil}, nil
}

// topLevelAssign returns the index of a top-level "=" (not "==", not
// inside parens), or -1 if none.
func topLevelAssign(line string) int {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '=':
			if depth != 0 {
				continue
			}
			if i+1 < len(line) && line[i+1] == '=' {
				return -1
			}
			if i > 0 && line[i-1] == '=' {
				return -1
			}
			return i
		}
	}
	return -1
}

// splitArgs splits a comma-separated argument list, trimming whitespace
// and surrounding quotes from each element. Arguments are scalar
// (numbers, bare names, or quoted strings) — the spec's grammar has no
// nested call forms.
func splitArgs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		a = strings.TrimSpace(a)
		if len(a) >= 2 && a[0] == '"' && a[len(a)-1] == '"' {
			a = a[1 : len(a)-1]
		}
		out = append(out, a)
	}
	return out
}
