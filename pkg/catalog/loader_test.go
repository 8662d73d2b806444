package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codekaro/formwizard/pkg/form"
)

const sampleCatalogYAML = `
questions:
  - id: fullName
    title: Your Full Name
    kind: text
  - id: occupation
    title: What do you currently do?
    kind: single-choice
    options:
      - value: student
        label: Student
      - value: working-professional
        label: Working Professional
  - id: goal
    title: "Why did you enroll in the 'How to CSS Bootcamp'?"
    description: Select all that apply
    kind: multi-choice
    when:
      - field: occupation
    variants:
      - when:
          - field: occupation
            any_of: [student]
        options:
          - value: learn-css
            label: Just to learn CSS
      - options:
          - value: career-switch
            label: Make a career switch
`

func TestLoad_BuildsResolver(t *testing.T) {
	resolver, err := Load(strings.NewReader(sampleCatalogYAML))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	base := ids(resolver.Resolve(form.Answers{}))
	if diff := cmp.Diff([]string{"fullName", "occupation"}, base); diff != "" {
		t.Fatalf("base catalog mismatch (-want +got):\n%s", diff)
	}

	answers := form.Answers{"occupation": form.String("student")}
	active := resolver.Resolve(answers)
	if len(active) != 3 {
		t.Fatalf("expected 3 active questions, got %d", len(active))
	}
	goal := active[2]
	if goal.Title != "Why did you enroll in the 'How to CSS Bootcamp'?" {
		t.Fatalf("unexpected goal title %q", goal.Title)
	}
	if len(goal.Options) != 1 || goal.Options[0].Value != "learn-css" {
		t.Fatalf("unexpected goal options %#v", goal.Options)
	}

	answers["occupation"] = form.String("working-professional")
	goal = resolver.Resolve(answers)[2]
	if len(goal.Options) != 1 || goal.Options[0].Value != "career-switch" {
		t.Fatalf("fallback variant not applied: %#v", goal.Options)
	}
}

func TestParse_StripsMarkup(t *testing.T) {
	raw := []byte(`
questions:
  - id: fullName
    title: <script>alert(1)</script>Your <b>Full</b> Name
    description: <img src=x onerror=alert(1)>It's required
    kind: text
`)
	resolver, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse catalog: %v", err)
	}
	q := resolver.Universe()[0]
	if q.Title != "Your Full Name" {
		t.Fatalf("title not sanitized: %q", q.Title)
	}
	if q.Description != "It's required" {
		t.Fatalf("description not sanitized: %q", q.Description)
	}
}

func TestParse_Rejections(t *testing.T) {
	if _, err := Parse([]byte("questions: []")); err == nil {
		t.Fatal("expected error for empty catalog")
	}
	if _, err := Parse([]byte("{not yaml")); err == nil {
		t.Fatal("expected error for malformed document")
	}
	if _, err := Parse([]byte("questions:\n  - id: x\n    kind: dropdown\n")); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
