package wizard

import (
	"context"

	"github.com/codekaro/formwizard/pkg/backend"
	"github.com/codekaro/formwizard/pkg/form"
)

// Messages attached to failed submissions. The inactive copy matches what a
// visitor sees when the gate itself reports a closed form.
const (
	failurePrefix       = "Failed to submit form: "
	defaultSubmitError  = "Unknown error occurred"
	inactiveSubmitError = "This form is currently not accepting submissions."
)

// submit packages the answers and runs the external submit operation once.
// Entering PhaseSubmitting first means a re-entrant Advance observes the
// in-flight phase and backs off.
func (w *Wizard) submit(ctx context.Context) {
	w.phase = PhaseSubmitting
	w.failure = ""

	result, err := w.client.Submit(ctx, backend.SubmitRequest{
		FormType: w.formType,
		Fields:   payloadFields(w.resolver.Universe(), w.Catalog(), w.answers),
	})

	switch {
	case err != nil:
		w.fail(err.Error())
	case result.Success:
		w.phase = PhaseSubmitted
	case result.FormInactive:
		// The form was closed server-side mid-session. From here on the
		// wizard is indistinguishable from one whose gate came back inactive.
		w.gate = GateInactive
		w.fail(inactiveSubmitError)
	default:
		message := result.Error
		if message == "" {
			message = defaultSubmitError
		}
		w.fail(message)
	}
}

func (w *Wizard) fail(reason string) {
	w.phase = PhaseFailed
	w.failure = failurePrefix + reason
}

// payloadFields normalizes the answer set for submission: one entry per
// declared question, whether or not its branch was ever active. Unanswered
// questions and stale answers whose branch left the catalog become explicit
// nulls, or empty lists for multi-choice fields.
func payloadFields(universe, active []form.Question, answers form.Answers) map[string]any {
	activeIDs := make(map[string]struct{}, len(active))
	for _, q := range active {
		activeIDs[q.ID] = struct{}{}
	}

	fields := make(map[string]any, len(universe))
	for _, q := range universe {
		value, ok := answers[q.ID]
		_, isActive := activeIDs[q.ID]
		switch {
		case q.Kind == form.KindMultiChoice:
			list := value.List()
			if list == nil || !isActive {
				list = []string{}
			}
			fields[q.ID] = list
		case ok && isActive && !value.IsZero():
			fields[q.ID] = value.Scalar()
		default:
			fields[q.ID] = nil
		}
	}
	return fields
}
