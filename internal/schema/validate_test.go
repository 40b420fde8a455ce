package schema

import (
	"testing"
)

func newCreatePromptSchema() *Field {
	return Object(map[string]*Field{
		"title":   String().Min(1),
		"content": String().Min(1),
		"tags":    Array(String()).Optional(),
	})
}

func hasIssue(issues Issues, path string) bool {
	for _, issue := range issues {
		if issue.Path == path {
			return true
		}
	}
	return false
}

func TestValidate_Valid(t *testing.T) {
	s := newCreatePromptSchema()

	input := map[string]any{
		"title":   "A",
		"content": "B",
		"tags":    []any{"x", "y"},
	}

	if issues := Validate(s, input); len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidate_OptionalAbsent(t *testing.T) {
	s := newCreatePromptSchema()

	input := map[string]any{
		"title":   "A",
		"content": "B",
	}

	if issues := Validate(s, input); len(issues) != 0 {
		t.Fatalf("expected no issues when optional field is absent, got %v", issues)
	}
}

func TestValidate_RequiredMissing(t *testing.T) {
	s := newCreatePromptSchema()

	issues := Validate(s, map[string]any{"title": "A"})
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if issues[0].Path != "content" {
		t.Errorf("expected issue path 'content', got %q", issues[0].Path)
	}
	if issues[0].Message != "is required" {
		t.Errorf("unexpected message: %q", issues[0].Message)
	}
}

func TestValidate_NullIsNotAbsence(t *testing.T) {
	s := newCreatePromptSchema()

	// An explicit null is a present value of the wrong type, for required
	// and optional fields alike.
	issues := Validate(s, map[string]any{
		"title":   nil,
		"content": "B",
		"tags":    nil,
	})

	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
	if !hasIssue(issues, "title") || !hasIssue(issues, "tags") {
		t.Errorf("expected issues for title and tags, got %v", issues)
	}
	for _, issue := range issues {
		switch issue.Path {
		case "title":
			if issue.Message != "must be a string" {
				t.Errorf("title: unexpected message %q", issue.Message)
			}
		case "tags":
			if issue.Message != "must be an array" {
				t.Errorf("tags: unexpected message %q", issue.Message)
			}
		}
	}
}

func TestValidate_EmptyStringFailsMinLength(t *testing.T) {
	s := newCreatePromptSchema()

	issues := Validate(s, map[string]any{"title": "", "content": ""})
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", issues)
	}
	if !hasIssue(issues, "title") || !hasIssue(issues, "content") {
		t.Errorf("expected issues for both title and content, got %v", issues)
	}
	if issues[0].Message != "must be at least 1 character(s)" {
		t.Errorf("unexpected message: %q", issues[0].Message)
	}
}

func TestValidate_AccumulatesAllViolations(t *testing.T) {
	s := newCreatePromptSchema()

	// Empty title, wrong content type, and a non-string tag element: every
	// defect must appear in the report, never just the first.
	input := map[string]any{
		"title":   "",
		"content": float64(7),
		"tags":    []any{"ok", float64(1), "ok", true},
	}

	issues := Validate(s, input)
	if len(issues) != 4 {
		t.Fatalf("expected 4 issues, got %d: %v", len(issues), issues)
	}

	for _, path := range []string{"title", "content", "tags[1]", "tags[3]"} {
		if !hasIssue(issues, path) {
			t.Errorf("missing issue for %q in %v", path, issues)
		}
	}
}

func TestValidate_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		field *Field
		value any
		want  string
	}{
		{"string", String(), float64(1), "must be a string"},
		{"number", Number(), "1", "must be a number"},
		{"bool", Bool(), "true", "must be a boolean"},
		{"array", Array(String()), "x", "must be an array"},
		{"object", Object(nil), []any{}, "must be an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate(tt.field, tt.value)
			if len(issues) != 1 {
				t.Fatalf("expected 1 issue, got %v", issues)
			}
			if issues[0].Message != tt.want {
				t.Errorf("got message %q, want %q", issues[0].Message, tt.want)
			}
		})
	}
}

func TestValidate_RefinementSkippedOnTypeMismatch(t *testing.T) {
	s := Object(map[string]*Field{"title": String().Min(1)})

	issues := Validate(s, map[string]any{"title": float64(3)})
	if len(issues) != 1 {
		t.Fatalf("expected only the type issue, got %v", issues)
	}
	if issues[0].Message != "must be a string" {
		t.Errorf("unexpected message: %q", issues[0].Message)
	}
}

func TestValidate_UnknownFieldsIgnored(t *testing.T) {
	s := newCreatePromptSchema()

	input := map[string]any{
		"title":   "A",
		"content": "B",
		"extra":   "ignored",
		"nested":  map[string]any{"also": "ignored"},
	}

	if issues := Validate(s, input); len(issues) != 0 {
		t.Fatalf("unknown fields must not fail validation, got %v", issues)
	}
}

func TestValidate_NestedObjectPaths(t *testing.T) {
	s := Object(map[string]*Field{
		"owner": Object(map[string]*Field{
			"email": String().Email(),
		}),
	})

	issues := Validate(s, map[string]any{
		"owner": map[string]any{"email": "not-an-email"},
	})

	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if issues[0].Path != "owner.email" {
		t.Errorf("expected path 'owner.email', got %q", issues[0].Path)
	}
	if issues[0].Message != "must be a valid email address" {
		t.Errorf("unexpected message: %q", issues[0].Message)
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	field := String().Email()

	valid := []string{"a@b.co", "user+tag@example.com"}
	for _, v := range valid {
		if issues := Validate(field, v); len(issues) != 0 {
			t.Errorf("expected %q to be valid, got %v", v, issues)
		}
	}

	invalid := []string{"", "plain", "@no-user.com", "no-domain@", "spaces in@x.com"}
	for _, v := range invalid {
		if issues := Validate(field, v); len(issues) == 0 {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestValidate_NonObjectRoot(t *testing.T) {
	s := newCreatePromptSchema()

	for _, value := range []any{nil, "x", float64(1), []any{"x"}} {
		issues := Validate(s, value)
		if len(issues) != 1 || issues[0].Message != "must be an object" {
			t.Errorf("value %v: expected root object issue, got %v", value, issues)
		}
	}
}

func TestValidate_StableIssueOrder(t *testing.T) {
	s := newCreatePromptSchema()
	input := map[string]any{}

	first := Validate(s, input)
	for i := 0; i < 10; i++ {
		again := Validate(s, input)
		if len(again) != len(first) {
			t.Fatalf("issue count changed between runs")
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("issue order changed between runs: %v vs %v", first, again)
			}
		}
	}
}

type createPromptBody struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

func TestDecodeBytes_Success(t *testing.T) {
	s := newCreatePromptSchema()

	body, issues := DecodeBytes[createPromptBody](s, []byte(`{"title":"A","content":"B","tags":["x"]}`))
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	if body.Title != "A" || body.Content != "B" {
		t.Errorf("unexpected decoded body: %+v", body)
	}
	if len(body.Tags) != 1 || body.Tags[0] != "x" {
		t.Errorf("unexpected tags: %v", body.Tags)
	}
}

func TestDecodeBytes_TagsOmitted(t *testing.T) {
	s := newCreatePromptSchema()

	body, issues := DecodeBytes[createPromptBody](s, []byte(`{"title":"A","content":"B"}`))
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	if body.Tags != nil {
		t.Errorf("expected nil tags when omitted, got %v", body.Tags)
	}
}

func TestDecodeBytes_UnknownFieldsDropped(t *testing.T) {
	s := newCreatePromptSchema()

	body, issues := DecodeBytes[createPromptBody](s, []byte(`{"title":"A","content":"B","extra":42}`))
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
	if body.Title != "A" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestDecodeBytes_MalformedJSON(t *testing.T) {
	s := newCreatePromptSchema()

	for _, raw := range []string{"", "{", "not json", `{"title":`} {
		_, issues := DecodeBytes[createPromptBody](s, []byte(raw))
		if len(issues) != 1 {
			t.Fatalf("raw %q: expected 1 issue, got %v", raw, issues)
		}
		if issues[0].Path != "" || issues[0].Message != "body must be valid JSON" {
			t.Errorf("raw %q: unexpected issue %v", raw, issues[0])
		}
	}
}

func TestDecodeBytes_NullOptionalRejected(t *testing.T) {
	s := newCreatePromptSchema()

	_, issues := DecodeBytes[createPromptBody](s, []byte(`{"title":"A","content":"B","tags":null}`))
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if issues[0].Path != "tags" || issues[0].Message != "must be an array" {
		t.Errorf("unexpected issue: %v", issues[0])
	}
}

func TestDecodeBytes_ValidationFailure(t *testing.T) {
	s := newCreatePromptSchema()

	_, issues := DecodeBytes[createPromptBody](s, []byte(`{"title":"","content":"B"}`))
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if issues[0].Path != "title" {
		t.Errorf("expected title issue, got %v", issues[0])
	}
}
