package wizard

import (
	"strings"

	"github.com/codekaro/formwizard/pkg/form"
)

// View is the read-only snapshot a rendering layer consumes. Renderers draw
// from it and forward user events back through SetAnswer, Advance and
// Retreat; they never mutate engine state directly.
type View struct {
	Gate  GatePhase
	Phase Phase

	Catalog  []form.Question
	Question form.Question
	Step     int
	Steps    int

	// Error is the validation message for the active field, if any.
	Error string
	// CanAdvance mirrors Wizard.CanAdvance for always-visible controls.
	CanAdvance bool
	// Failure carries the message from the last failed submission.
	Failure string
	// FirstName is the visitor's first name once provided, for the
	// terminal thank-you copy.
	FirstName string
}

// View assembles the current snapshot.
func (w *Wizard) View() View {
	active := w.Catalog()
	v := View{
		Gate:       w.gate,
		Phase:      w.phase,
		Catalog:    active,
		Step:       w.step,
		Steps:      len(active),
		CanAdvance: w.CanAdvance(),
		Failure:    w.failure,
		FirstName:  firstName(w.answers),
	}
	if w.step < len(active) {
		v.Question = active[w.step]
		v.Error = w.errs[v.Question.ID]
	}
	return v
}

func firstName(answers form.Answers) string {
	full := strings.TrimSpace(answers["fullName"].Scalar())
	if full == "" {
		return ""
	}
	return strings.Fields(full)[0]
}
