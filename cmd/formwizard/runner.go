package main

import (
	"context"
	"fmt"
	"io"

	"github.com/codekaro/formwizard/pkg/form"
	"github.com/codekaro/formwizard/pkg/wizard"
)

// runWizard drives the engine with terminal prompts until the session
// reaches a terminal outcome. Validation failures re-prompt the same step;
// submission failures surface their message and retry on the next answer.
func runWizard(ctx context.Context, w *wizard.Wizard, driver PromptDriver, out io.Writer, formTitle string) error {
	if err := w.Start(ctx); err != nil {
		return err
	}

	lastFailure := ""
	for {
		view := w.View()

		switch {
		case view.Gate == wizard.GateInactive:
			fmt.Fprintf(out, "%s is currently not accepting responses.\n", formTitle)
			return nil
		case view.Phase == wizard.PhaseSubmitted:
			if view.FirstName != "" {
				fmt.Fprintf(out, "Thank you %s!\n", view.FirstName)
			} else {
				fmt.Fprintln(out, "Thank you!")
			}
			fmt.Fprintln(out, "Your onboarding form has been submitted successfully.")
			return nil
		}

		if view.Phase == wizard.PhaseFailed && view.Failure != lastFailure {
			lastFailure = view.Failure
			if err := driver.Info(ctx, view.Failure); err != nil {
				return err
			}
		}

		question := view.Question
		if question.ID == "" {
			return fmt.Errorf("formwizard: no active question at step %d", view.Step)
		}

		if err := driver.Info(ctx, fmt.Sprintf("Question %d of %d", view.Step+1, view.Steps)); err != nil {
			return err
		}

		value, err := promptQuestion(ctx, driver, question, w.Answers()[question.ID])
		if err != nil {
			return err
		}
		w.SetAnswer(question.ID, value)

		if err := w.Advance(ctx); err != nil {
			return err
		}
		if msg := w.ErrorFor(question.ID); msg != "" {
			if err := driver.Info(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func promptQuestion(ctx context.Context, driver PromptDriver, question form.Question, current form.Value) (form.Value, error) {
	switch question.Kind {
	case form.KindSingleChoice:
		labels := optionLabels(question.Options)
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      question.Title,
			Help:         question.Description,
			Options:      labels,
			DefaultIndex: optionIndex(question.Options, current.Scalar()),
		})
		if err != nil {
			return form.Value{}, err
		}
		if idx < 0 || idx >= len(question.Options) {
			return form.Value{}, nil
		}
		return form.String(question.Options[idx].Value), nil

	case form.KindMultiChoice:
		labels := optionLabels(question.Options)
		indices, err := driver.MultiSelect(ctx, SelectConfig{
			Message:  question.Title,
			Help:     question.Description,
			Options:  labels,
			Defaults: selectedIndices(question.Options, current.List()),
		})
		if err != nil {
			return form.Value{}, err
		}
		values := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(question.Options) {
				values = append(values, question.Options[idx].Value)
			}
		}
		return form.Strings(values...), nil

	default:
		answer, err := driver.Input(ctx, InputConfig{
			Message: question.Title,
			Help:    question.Description,
			Default: current.Scalar(),
		})
		if err != nil {
			return form.Value{}, err
		}
		return form.String(answer), nil
	}
}

func optionLabels(options []form.Option) []string {
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}
	return labels
}

func optionIndex(options []form.Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func selectedIndices(options []form.Option, values []string) []int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	var out []int
	for i, opt := range options {
		if _, ok := seen[opt.Value]; ok {
			out = append(out, i)
		}
	}
	return out
}
