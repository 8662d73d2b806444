// Package validate holds the pure field-level predicates that gate step
// transitions. Functions here never touch I/O and are deterministic for a
// given kind and value.
package validate

import (
	"regexp"

	"github.com/codekaro/formwizard/pkg/form"
)

// Messages surfaced next to the offending field. They match the copy the
// form UI has always shown.
const (
	MsgRequired     = "This field is required"
	MsgInvalidEmail = "Please enter a valid email address"
	MsgInvalidPhone = "Please enter a valid phone number"
	MsgSelectOne    = "Please select at least one option"
)

var (
	// One '@' with at least one '.' somewhere after it. Deliberately loose;
	// deliverability is the backend's problem.
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	// Optional leading '+', then 10-15 characters of digits and spaces.
	phonePattern = regexp.MustCompile(`^\+?[0-9\s]{10,15}$`)
)

// FieldError reports why a value failed validation for a field kind.
type FieldError struct {
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Field checks value against the rules for kind. A nil return means the
// value passes; otherwise the returned error is a *FieldError whose message
// is suitable for direct display.
func Field(kind form.FieldKind, value form.Value) error {
	if kind == form.KindMultiChoice {
		if value.IsZero() {
			return &FieldError{Message: MsgSelectOne}
		}
		return nil
	}

	if value.IsZero() {
		return &FieldError{Message: MsgRequired}
	}

	switch kind {
	case form.KindEmail:
		if !emailPattern.MatchString(value.Scalar()) {
			return &FieldError{Message: MsgInvalidEmail}
		}
	case form.KindPhone:
		if !phonePattern.MatchString(value.Scalar()) {
			return &FieldError{Message: MsgInvalidPhone}
		}
	}
	return nil
}
