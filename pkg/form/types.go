package form

// FieldKind is the enum of input kinds the engine understands.
type FieldKind string

const (
	KindText         FieldKind = "text"
	KindEmail        FieldKind = "email"
	KindPhone        FieldKind = "phone"
	KindSingleChoice FieldKind = "single-choice"
	KindMultiChoice  FieldKind = "multi-choice"
)

// Valid reports whether the kind is one of the declared constants.
func (k FieldKind) Valid() bool {
	switch k {
	case KindText, KindEmail, KindPhone, KindSingleChoice, KindMultiChoice:
		return true
	}
	return false
}

// Choice reports whether the kind renders a fixed option set.
func (k FieldKind) Choice() bool {
	return k == KindSingleChoice || k == KindMultiChoice
}

// Option is a single selectable choice. Value is the stable machine key,
// Label the human-readable caption.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Condition gates a question or option variant on a previously collected
// answer. An empty AnyOf matches any non-blank answer for Field.
type Condition struct {
	Field string   `json:"field" yaml:"field"`
	AnyOf []string `json:"anyOf,omitempty" yaml:"any_of,omitempty"`
}

// Holds evaluates the condition against the current answers.
func (c Condition) Holds(answers Answers) bool {
	if c.Field == "" {
		return true
	}
	value, ok := answers[c.Field]
	if !ok || value.IsZero() {
		return false
	}
	if len(c.AnyOf) == 0 {
		return true
	}
	for _, accepted := range c.AnyOf {
		if value.Scalar() == accepted {
			return true
		}
	}
	return false
}

// OptionVariant swaps a question's option set when its conditions hold.
// Variants are consulted in order; the first match wins.
type OptionVariant struct {
	When    []Condition `json:"when,omitempty" yaml:"when,omitempty"`
	Options []Option    `json:"options" yaml:"options"`
}

// Question is an immutable definition of a single step. Definitions are
// declared up front; the catalog resolver decides which of them are active
// for a given answer set.
type Question struct {
	ID          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Kind        FieldKind       `json:"kind" yaml:"kind"`
	Options     []Option        `json:"options,omitempty" yaml:"options,omitempty"`
	When        []Condition     `json:"when,omitempty" yaml:"when,omitempty"`
	Variants    []OptionVariant `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// Visible reports whether every visibility condition holds.
func (q Question) Visible(answers Answers) bool {
	for _, cond := range q.When {
		if !cond.Holds(answers) {
			return false
		}
	}
	return true
}

// OptionsFor materialises the option set for the given answers, preferring
// the first matching variant and falling back to the static options.
func (q Question) OptionsFor(answers Answers) []Option {
	for _, variant := range q.Variants {
		matched := true
		for _, cond := range variant.When {
			if !cond.Holds(answers) {
				matched = false
				break
			}
		}
		if matched {
			return append([]Option(nil), variant.Options...)
		}
	}
	return append([]Option(nil), q.Options...)
}
