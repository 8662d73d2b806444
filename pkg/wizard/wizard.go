// Package wizard drives the step-by-step questionnaire: it owns the current
// step, the collected answers and per-field errors, gates entry on the form's
// availability, and orchestrates the final submission. The catalog resolver
// and field validator are consulted as pure functions; all mutable state
// lives here, owned by a single execution context.
package wizard

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/codekaro/formwizard/pkg/backend"
	"github.com/codekaro/formwizard/pkg/catalog"
	"github.com/codekaro/formwizard/pkg/form"
	"github.com/codekaro/formwizard/pkg/validate"
)

// Phase tracks the submission lifecycle. Submitting doubles as the mutex
// that keeps at most one submit call in flight.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
	PhaseFailed     Phase = "failed"
)

// GatePhase tracks the one-shot availability check that precedes interaction.
type GatePhase string

const (
	GateChecking GatePhase = "checking"
	GateActive   GatePhase = "active"
	GateInactive GatePhase = "inactive"
)

// Wizard is the step-navigation state machine. It is not safe for concurrent
// use; a single goroutine owns it and feeds it user events.
type Wizard struct {
	resolver catalog.Resolver
	client   backend.Client
	formType string
	logger   *log.Logger

	answers form.Answers
	errs    map[string]string
	step    int
	phase   Phase
	gate    GatePhase
	failure string
}

// New constructs a wizard over a catalog resolver and a backend client.
func New(resolver catalog.Resolver, client backend.Client, options ...Option) (*Wizard, error) {
	if resolver == nil {
		return nil, errors.New("wizard: catalog resolver is required")
	}
	if client == nil {
		return nil, errors.New("wizard: backend client is required")
	}

	w := &Wizard{
		resolver: resolver,
		client:   client,
		formType: DefaultFormType,
		logger:   log.New(io.Discard, "", 0),
		answers:  form.Answers{},
		errs:     make(map[string]string),
		phase:    PhaseIdle,
		gate:     GateChecking,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.formType == "" {
		w.formType = DefaultFormType
	}
	return w, nil
}

// Start resolves the availability gate. It queries the form status exactly
// once per wizard lifetime; repeat calls are no-ops. A transport or protocol
// failure, or a response without its success flag set, fails open: a broken
// status check must never block legitimate submissions.
func (w *Wizard) Start(ctx context.Context) error {
	if ctx == nil {
		return errors.New("wizard: context is required")
	}
	if w.gate != GateChecking {
		return nil
	}

	result, err := w.client.FormStatus(ctx, w.formType)
	if err != nil {
		w.logger.Printf("wizard: form status check failed, assuming active: %v", err)
		w.gate = GateActive
		return nil
	}
	if !result.Success {
		w.logger.Printf("wizard: form status check unsuccessful, assuming active: %s", result.Error)
		w.gate = GateActive
		return nil
	}

	if result.IsActive {
		w.gate = GateActive
	} else {
		w.gate = GateInactive
	}
	return nil
}

// Catalog returns the ordered active questions for the current answers.
func (w *Wizard) Catalog() []form.Question {
	return w.resolver.Resolve(w.answers)
}

// Current returns the question at the current step.
func (w *Wizard) Current() (form.Question, bool) {
	active := w.Catalog()
	if len(active) == 0 || w.step >= len(active) {
		return form.Question{}, false
	}
	return active[w.step], true
}

// SetAnswer records a value for a field, clears any error attached to it,
// and clamps the step index if the change shrank the catalog. Ignored once
// a submission is in flight or the wizard left its interactive state.
func (w *Wizard) SetAnswer(fieldID string, value form.Value) {
	if fieldID == "" || !w.interactive() {
		return
	}
	w.answers[fieldID] = value
	delete(w.errs, fieldID)

	if last := len(w.Catalog()) - 1; last >= 0 && w.step > last {
		w.step = last
	}
}

// Advance validates the current step. On failure it records the message for
// the offending field and holds position. On success it clears the field's
// error and either moves one step forward or, at the final step, runs the
// submission. Calls while a submission is in flight, or after a terminal
// outcome, are no-ops.
func (w *Wizard) Advance(ctx context.Context) error {
	if ctx == nil {
		return errors.New("wizard: context is required")
	}
	if !w.interactive() {
		return nil
	}

	active := w.Catalog()
	if len(active) == 0 {
		return nil
	}
	if w.step > len(active)-1 {
		w.step = len(active) - 1
	}

	question := active[w.step]
	if err := validate.Field(question.Kind, w.answers[question.ID]); err != nil {
		w.errs[question.ID] = err.Error()
		return nil
	}
	delete(w.errs, question.ID)

	if w.step < len(active)-1 {
		w.step++
		return nil
	}

	w.submit(ctx)
	return nil
}

// Retreat moves one step back, floored at the first step. It never validates
// and never touches answers.
func (w *Wizard) Retreat() {
	if !w.interactive() {
		return
	}
	if w.step > 0 {
		w.step--
	}
}

// CanAdvance reports whether Advance would pass validation for the current
// step, without mutating error state. It backs always-visible navigation
// controls that enable and disable independently of the primary action.
func (w *Wizard) CanAdvance() bool {
	if !w.interactive() {
		return false
	}
	question, ok := w.Current()
	if !ok {
		return false
	}
	return validate.Field(question.Kind, w.answers[question.ID]) == nil
}

// Step returns the zero-based current step index.
func (w *Wizard) Step() int {
	return w.step
}

// Phase returns the submission phase.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// Gate returns the availability gate phase.
func (w *Wizard) Gate() GatePhase {
	return w.gate
}

// Answers returns a copy of the collected answers.
func (w *Wizard) Answers() form.Answers {
	return w.answers.Clone()
}

// ErrorFor returns the validation message recorded for a field, if any.
func (w *Wizard) ErrorFor(fieldID string) string {
	return w.errs[fieldID]
}

// Failure returns the message from the most recent failed submission.
func (w *Wizard) Failure() string {
	return w.failure
}

// interactive reports whether user events are currently accepted: the gate
// resolved to an active form and no submission is in flight or terminal.
func (w *Wizard) interactive() bool {
	if w.gate != GateActive {
		return false
	}
	return w.phase == PhaseIdle || w.phase == PhaseFailed
}
