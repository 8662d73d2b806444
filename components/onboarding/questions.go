// Package onboarding packages the CSS Bootcamp onboarding questionnaire: the
// fixed question definitions, their branching rules, and a small component
// wrapper for wiring a wizard against a backend.
package onboarding

import "github.com/codekaro/formwizard/pkg/form"

const (
	// FormType is the discriminator the backend knows this form by.
	FormType = "onboarding-form"

	// FormTitle is the display title used by inactive-form screens.
	FormTitle = "How to CSS Bootcamp Onboarding"
)

// Questions returns the onboarding question definitions in step order. The
// first four are always active; course and semester appear for students,
// income for working professionals, and the goal question appears once an
// occupation is chosen, with its option set following the cohort.
func Questions() []form.Question {
	return []form.Question{
		{
			ID:    "fullName",
			Title: "Your Full Name",
			Kind:  form.KindText,
		},
		{
			ID:    "email",
			Title: "Your Email Address",
			Kind:  form.KindEmail,
		},
		{
			ID:    "whatsapp",
			Title: "Your WhatsApp Number",
			Kind:  form.KindPhone,
		},
		{
			ID:    "occupation",
			Title: "What do you currently do?",
			Kind:  form.KindSingleChoice,
			Options: []form.Option{
				{Value: "student", Label: "Student"},
				{Value: "working-professional", Label: "Working Professional"},
				{Value: "college-passout", Label: "College Passout"},
			},
		},
		{
			ID:    "course",
			Title: "What course are you pursuing?",
			Kind:  form.KindSingleChoice,
			When:  []form.Condition{{Field: "occupation", AnyOf: []string{"student"}}},
			Options: []form.Option{
				{Value: "btech", Label: "B.Tech"},
				{Value: "mca", Label: "MCA"},
				{Value: "bca", Label: "BCA"},
				{Value: "other", Label: "Other"},
			},
		},
		{
			ID:    "semester",
			Title: "Which semester are you in?",
			Kind:  form.KindSingleChoice,
			When:  []form.Condition{{Field: "occupation", AnyOf: []string{"student"}}},
			Options: []form.Option{
				{Value: "1st", Label: "1st Semester"},
				{Value: "2nd", Label: "2nd Semester"},
				{Value: "3rd", Label: "3rd Semester"},
				{Value: "4th", Label: "4th Semester"},
				{Value: "other", Label: "Other"},
			},
		},
		{
			ID:    "income",
			Title: "How much do you earn?",
			Kind:  form.KindSingleChoice,
			When:  []form.Condition{{Field: "occupation", AnyOf: []string{"working-professional"}}},
			Options: []form.Option{
				{Value: "0-30k", Label: "0-30k"},
				{Value: "30-50k", Label: "30-50k"},
				{Value: "50k-1lakh", Label: "50k-1Lakh"},
			},
		},
		{
			ID:          "goal",
			Title:       "Why did you enroll in the 'How to CSS Bootcamp'? What do you want to achieve?",
			Description: "Select all that apply",
			Kind:        form.KindMultiChoice,
			When:        []form.Condition{{Field: "occupation"}},
			Variants: []form.OptionVariant{
				{
					When: []form.Condition{{Field: "occupation", AnyOf: []string{"student", "college-passout"}}},
					Options: []form.Option{
						{Value: "learn-css", Label: "Just to learn CSS"},
						{Value: "first-job", Label: "Get my first job as a frontend developer"},
					},
				},
				{
					When: []form.Condition{{Field: "occupation", AnyOf: []string{"working-professional"}}},
					Options: []form.Option{
						{Value: "learn-css", Label: "Just to learn CSS"},
						{Value: "career-switch", Label: "Make a career switch"},
						{Value: "salary-hike", Label: "Get a salary hike"},
						{Value: "restart-career", Label: "Restart my career"},
					},
				},
			},
		},
	}
}
