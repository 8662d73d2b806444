package wizard

import (
	"log"

	"github.com/codekaro/formwizard/pkg/form"
)

// DefaultFormType identifies the form when no override is supplied.
const DefaultFormType = "onboarding-form"

// Option customises the wizard configuration.
type Option func(*Wizard)

// WithFormType overrides the form-type discriminator sent to the backend.
func WithFormType(formType string) Option {
	return func(w *Wizard) {
		if formType != "" {
			w.formType = formType
		}
	}
}

// WithLogger injects the logger used for availability-check failures. The
// default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithAnswers seeds the answer set, e.g. when resuming a partially filled
// session. The map is copied.
func WithAnswers(prefill form.Answers) Option {
	return func(w *Wizard) {
		if prefill != nil {
			w.answers = prefill.Clone()
		}
	}
}
