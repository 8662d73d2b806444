// Package backend defines the two contracts the questionnaire engine consumes
// from the form service: a form-status query and a submit operation. The
// engine only ever sees the Client interface; the HTTP implementation lives
// alongside it for production wiring.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
)

// StatusResult is the form-status response shape.
type StatusResult struct {
	Success  bool   `json:"success"`
	IsActive bool   `json:"is_active"`
	Error    string `json:"error,omitempty"`
}

// SubmitRequest carries the normalized answer payload plus the form-type
// discriminator. Fields holds one entry per declared question: answered
// scalars as strings, answered multi-choice values as string slices, and
// unanswered fields as explicit nulls (empty slices for multi-choice).
type SubmitRequest struct {
	FormType string
	Fields   map[string]any
}

// MarshalJSON flattens the request into a single object, the way the form
// service expects it: every field at the top level next to form_type.
func (r SubmitRequest) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(r.Fields)+1)
	for key, value := range r.Fields {
		if key == "form_type" {
			return nil, fmt.Errorf("backend: field %q collides with the form-type discriminator", key)
		}
		payload[key] = value
	}
	payload["form_type"] = r.FormType
	return json.Marshal(payload)
}

// SubmitResult is the submit response shape. FormInactive distinguishes a
// form that was closed server-side from an ordinary rejection.
type SubmitResult struct {
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	FormInactive bool   `json:"formInactive,omitempty"`
}

// Client is the narrow surface the wizard depends on.
type Client interface {
	// FormStatus queries whether the identified form accepts submissions.
	FormStatus(ctx context.Context, formType string) (StatusResult, error)

	// Submit delivers a completed answer payload.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error)
}
