package form

import "strings"

// Value holds a single answer: either a scalar string or a set of strings
// for multi-choice fields. The zero Value is unanswered.
type Value struct {
	scalar string
	list   []string
	multi  bool
}

// String wraps a scalar answer.
func String(s string) Value {
	return Value{scalar: s}
}

// Strings wraps a multi-choice answer.
func Strings(items ...string) Value {
	return Value{list: append([]string(nil), items...), multi: true}
}

// IsMulti reports whether the value carries a string set.
func (v Value) IsMulti() bool {
	return v.multi
}

// Scalar returns the scalar answer, or "" for multi values.
func (v Value) Scalar() string {
	return v.scalar
}

// List returns a copy of the string set, or nil for scalar values.
func (v Value) List() []string {
	if !v.multi {
		return nil
	}
	return append([]string(nil), v.list...)
}

// IsZero reports whether the value counts as unanswered: a scalar that is
// blank after trimming, or an empty set.
func (v Value) IsZero() bool {
	if v.multi {
		return len(v.list) == 0
	}
	return strings.TrimSpace(v.scalar) == ""
}

// Equal reports value equality. Defined so cmp.Diff can compare Values
// without reaching into unexported fields.
func (v Value) Equal(o Value) bool {
	if v.multi != o.multi {
		return false
	}
	if !v.multi {
		return v.scalar == o.scalar
	}
	if len(v.list) != len(o.list) {
		return false
	}
	for i := range v.list {
		if v.list[i] != o.list[i] {
			return false
		}
	}
	return true
}

// Answers maps field ids to collected values. Insertion order is irrelevant;
// the catalog resolver decides ordering.
type Answers map[string]Value

// Answered reports whether the field has a non-blank entry.
func (a Answers) Answered(fieldID string) bool {
	value, ok := a[fieldID]
	return ok && !value.IsZero()
}

// Clone returns an independent copy of the answer set.
func (a Answers) Clone() Answers {
	if a == nil {
		return Answers{}
	}
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
