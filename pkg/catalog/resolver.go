// Package catalog derives the ordered list of active questions from the
// current answer set. Resolution is a pure function: two calls with the same
// branching answers produce the same sequence, and nothing here mutates the
// answers it inspects.
package catalog

import (
	"fmt"

	"github.com/codekaro/formwizard/pkg/form"
)

// Resolver produces the active question catalog for an answer set and
// exposes the full definition universe for payload normalization.
type Resolver interface {
	// Resolve returns the ordered active questions. Option sets are already
	// materialised for the given answers.
	Resolve(answers form.Answers) []form.Question

	// Universe returns every declared question in definition order,
	// regardless of visibility.
	Universe() []form.Question
}

type staticResolver struct {
	questions []form.Question
}

// New builds a Resolver over a fixed, ordered set of question definitions.
// Definitions must carry unique, non-empty ids and a known field kind.
func New(questions ...form.Question) (Resolver, error) {
	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("catalog: question id is required")
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
		if !q.Kind.Valid() {
			return nil, fmt.Errorf("catalog: question %q has unknown kind %q", q.ID, q.Kind)
		}
		if q.Kind.Choice() && len(q.Options) == 0 && len(q.Variants) == 0 {
			return nil, fmt.Errorf("catalog: choice question %q has no options", q.ID)
		}
	}
	return &staticResolver{questions: append([]form.Question(nil), questions...)}, nil
}

// MustNew is New that panics on invalid definitions. Useful for package-level
// catalogs that are fixed at compile time.
func MustNew(questions ...form.Question) Resolver {
	resolver, err := New(questions...)
	if err != nil {
		panic(err)
	}
	return resolver
}

func (r *staticResolver) Resolve(answers form.Answers) []form.Question {
	out := make([]form.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if !q.Visible(answers) {
			continue
		}
		active := q
		active.Options = q.OptionsFor(answers)
		out = append(out, active)
	}
	return out
}

func (r *staticResolver) Universe() []form.Question {
	return append([]form.Question(nil), r.questions...)
}
