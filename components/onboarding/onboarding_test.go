package onboarding

import (
	"log"
	"os"
	"testing"

	"github.com/codekaro/formwizard/pkg/form"
)

func TestQuestions_BaseStepsAlwaysActive(t *testing.T) {
	resolver := NewResolver()

	active := resolver.Resolve(form.Answers{})
	if len(active) != 4 {
		t.Fatalf("expected 4 base questions, got %d", len(active))
	}

	want := []string{"fullName", "email", "whatsapp", "occupation"}
	for i, id := range want {
		if active[i].ID != id {
			t.Fatalf("unexpected question at %d: got %q want %q", i, active[i].ID, id)
		}
	}
}

func TestQuestions_BranchesByOccupation(t *testing.T) {
	resolver := NewResolver()

	cases := []struct {
		occupation string
		want       []string
	}{
		{"student", []string{"fullName", "email", "whatsapp", "occupation", "course", "semester", "goal"}},
		{"working-professional", []string{"fullName", "email", "whatsapp", "occupation", "income", "goal"}},
		{"college-passout", []string{"fullName", "email", "whatsapp", "occupation", "goal"}},
	}

	for _, tc := range cases {
		t.Run(tc.occupation, func(t *testing.T) {
			active := resolver.Resolve(form.Answers{"occupation": form.String(tc.occupation)})
			if len(active) != len(tc.want) {
				t.Fatalf("expected %d questions, got %d", len(tc.want), len(active))
			}
			for i, id := range tc.want {
				if active[i].ID != id {
					t.Fatalf("unexpected question at %d: got %q want %q", i, active[i].ID, id)
				}
			}
		})
	}
}

func TestQuestions_GoalOptionsFollowCohort(t *testing.T) {
	resolver := NewResolver()

	professional := resolver.Resolve(form.Answers{"occupation": form.String("working-professional")})
	goal := professional[len(professional)-1]
	if goal.ID != "goal" {
		t.Fatalf("expected goal last, got %q", goal.ID)
	}
	if len(goal.Options) != 4 {
		t.Fatalf("expected 4 professional goal options, got %d", len(goal.Options))
	}
	if goal.Options[1].Value != "career-switch" {
		t.Fatalf("unexpected option: %#v", goal.Options[1])
	}

	student := resolver.Resolve(form.Answers{"occupation": form.String("student")})
	goal = student[len(student)-1]
	if len(goal.Options) != 2 {
		t.Fatalf("expected 2 student goal options, got %d", len(goal.Options))
	}
	if goal.Options[1].Value != "first-job" {
		t.Fatalf("unexpected option: %#v", goal.Options[1])
	}
}

func TestOptions_DefaultsAndOverrides(t *testing.T) {
	opts := DefaultOptions()
	if opts.FormType != FormType {
		t.Fatalf("expected default form type %q, got %q", FormType, opts.FormType)
	}

	logger := log.New(os.Stderr, "", 0)
	opts = NewOptions(WithFormType("weekend-batch"), WithLogger(logger))
	if opts.FormType != "weekend-batch" {
		t.Fatalf("expected override, got %q", opts.FormType)
	}
	if opts.Logger != logger {
		t.Fatal("expected logger override to stick")
	}
}

func TestComponent_RequiresBackendClient(t *testing.T) {
	if _, err := New().NewWizard(nil); err == nil {
		t.Fatal("expected error for nil client")
	}
}
