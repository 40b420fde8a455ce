package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

// Issue is a single field-level violation.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Issues is the accumulated failure report for one validation pass.
// An empty report means the value satisfies the schema.
type Issues []Issue

// emailPattern is intentionally loose: one @ with something on both sides
// and a dot in the domain.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a decoded JSON value against the field description and
// returns every violation found, not just the first. Unknown keys in the
// input are ignored. Validate never panics on malformed input.
func Validate(f *Field, value any) Issues {
	var issues Issues
	f.check("", value, &issues)
	return issues
}

// DecodeBytes validates raw JSON against f and, on success, unmarshals it
// into T. Keys not declared on T are dropped by encoding/json, so the
// returned value carries declared fields only. A malformed body is reported
// as a single root-path issue rather than an error.
func DecodeBytes[T any](f *Field, data []byte) (T, Issues) {
	var out T

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return out, Issues{{Path: "", Message: "body must be valid JSON"}}
	}

	if issues := Validate(f, decoded); len(issues) > 0 {
		return out, issues
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, Issues{{Path: "", Message: "body must be valid JSON"}}
	}

	return out, nil
}

// check validates one value and appends violations to issues.
// path is the field path of value ("" for the root).
func (f *Field) check(path string, value any, issues *Issues) {
	switch f.kind {
	case KindString:
		f.checkString(path, value, issues)
	case KindNumber:
		if _, ok := value.(float64); !ok {
			add(issues, path, "must be a number")
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			add(issues, path, "must be a boolean")
		}
	case KindArray:
		f.checkArray(path, value, issues)
	case KindObject:
		f.checkObject(path, value, issues)
	}
}

func (f *Field) checkString(path string, value any, issues *Issues) {
	s, ok := value.(string)
	if !ok {
		add(issues, path, "must be a string")
		return
	}

	// Refinements run only once the base type check passed.
	if f.minLen != nil && len(s) < *f.minLen {
		add(issues, path, fmt.Sprintf("must be at least %d character(s)", *f.minLen))
	}
	if f.maxLen != nil && len(s) > *f.maxLen {
		add(issues, path, fmt.Sprintf("must be at most %d character(s)", *f.maxLen))
	}
	if f.format == FormatEmail && !emailPattern.MatchString(s) {
		add(issues, path, "must be a valid email address")
	}
}

func (f *Field) checkArray(path string, value any, issues *Issues) {
	items, ok := value.([]any)
	if !ok {
		add(issues, path, "must be an array")
		return
	}

	if f.minLen != nil && len(items) < *f.minLen {
		add(issues, path, fmt.Sprintf("must contain at least %d element(s)", *f.minLen))
	}
	if f.maxLen != nil && len(items) > *f.maxLen {
		add(issues, path, fmt.Sprintf("must contain at most %d element(s)", *f.maxLen))
	}

	// Every element is checked; failures accumulate per index instead of
	// stopping at the first bad element.
	if f.elem != nil {
		for i, item := range items {
			f.elem.check(fmt.Sprintf("%s[%d]", path, i), item, issues)
		}
	}
}

func (f *Field) checkObject(path string, value any, issues *Issues) {
	obj, ok := value.(map[string]any)
	if !ok {
		add(issues, path, "must be an object")
		return
	}

	// Field names are walked in sorted order so a report for the same input
	// is always identical.
	names := make([]string, 0, len(f.fields))
	for name := range f.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child := f.fields[name]
		childPath := name
		if path != "" {
			childPath = path + "." + name
		}

		raw, present := obj[name]
		if !present {
			if !child.optional {
				add(issues, childPath, "is required")
			}
			continue
		}

		// A present null is not absence; it fails the child's type check
		// whether the field is optional or not.
		child.check(childPath, raw, issues)
	}
}

func add(issues *Issues, path, message string) {
	*issues = append(*issues, Issue{Path: path, Message: message})
}
