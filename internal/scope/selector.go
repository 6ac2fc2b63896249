package scope

import "strings"

// Selector matches scope stacks in the manner of editor scoped settings.
//
// A selector is a space separated list of parts, each a dot separated scope
// name with an optional leading dot (".source.js .string.quoted"). Parts must
// match labels of the stack in order, though not contiguously. A part matches
// a label when the label equals it or continues it with a further segment, so
// ".string.quoted" matches "string.quoted.single.js" but not "string.quotedx".
type Selector struct {
	raw   string
	parts []string
}

// ParseSelector parses a selector string. An empty selector matches every stack.
func ParseSelector(s string) Selector {
	fields := strings.Fields(s)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimPrefix(f, ".")
		if f != "" {
			parts = append(parts, f)
		}
	}
	return Selector{raw: s, parts: parts}
}

// String returns the selector as written.
func (sel Selector) String() string {
	return sel.raw
}

// IsEmpty reports whether the selector has no parts.
func (sel Selector) IsEmpty() bool {
	return len(sel.parts) == 0
}

// Matches reports whether the selector matches the stack.
func (sel Selector) Matches(stack Stack) bool {
	i := 0
	for _, label := range stack {
		if i == len(sel.parts) {
			break
		}
		if labelMatches(label, sel.parts[i]) {
			i++
		}
	}
	return i == len(sel.parts)
}

// Specificity ranks selectors: more parts first, then more segments.
func (sel Selector) Specificity() int {
	segments := 0
	for _, p := range sel.parts {
		segments += strings.Count(p, ".") + 1
	}
	return len(sel.parts)*1000 + segments
}

func labelMatches(label, part string) bool {
	if label == part {
		return true
	}
	return strings.HasPrefix(label, part) && label[len(part)] == '.'
}
