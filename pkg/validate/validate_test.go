package validate

import (
	"testing"

	"github.com/codekaro/formwizard/pkg/form"
)

func TestField_RequiredScalar(t *testing.T) {
	cases := []struct {
		name    string
		value   form.Value
		wantMsg string
	}{
		{name: "empty", value: form.String(""), wantMsg: MsgRequired},
		{name: "blank after trim", value: form.String("   "), wantMsg: MsgRequired},
		{name: "answered", value: form.String("Asha Rao"), wantMsg: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Field(form.KindText, tc.value)
			assertMessage(t, err, tc.wantMsg)
		})
	}
}

func TestField_Email(t *testing.T) {
	cases := []struct {
		value   string
		wantMsg string
	}{
		{value: "a@b.c", wantMsg: ""},
		{value: "asha.rao@example.co.in", wantMsg: ""},
		{value: "a@b", wantMsg: MsgInvalidEmail},
		{value: "abc", wantMsg: MsgInvalidEmail},
		{value: "a b@c.d", wantMsg: MsgInvalidEmail},
		{value: "", wantMsg: MsgRequired},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			err := Field(form.KindEmail, form.String(tc.value))
			assertMessage(t, err, tc.wantMsg)
		})
	}
}

func TestField_Phone(t *testing.T) {
	cases := []struct {
		value   string
		wantMsg string
	}{
		{value: "+91 9876543210", wantMsg: ""},
		{value: "9876543210", wantMsg: ""},
		{value: "+919876543210", wantMsg: ""},
		{value: "123", wantMsg: MsgInvalidPhone},
		{value: "98765abc43210", wantMsg: MsgInvalidPhone},
		{value: "+1234567890123456", wantMsg: MsgInvalidPhone},
		{value: "", wantMsg: MsgRequired},
	}
	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			err := Field(form.KindPhone, form.String(tc.value))
			assertMessage(t, err, tc.wantMsg)
		})
	}
}

func TestField_MultiChoice(t *testing.T) {
	if err := Field(form.KindMultiChoice, form.Strings()); err == nil {
		t.Fatal("expected empty selection to fail")
	} else if err.Error() != MsgSelectOne {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err := Field(form.KindMultiChoice, form.Value{}); err == nil {
		t.Fatal("expected zero value to fail")
	}
	if err := Field(form.KindMultiChoice, form.Strings("learn-css")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestField_SingleChoiceRequiresValue(t *testing.T) {
	if err := Field(form.KindSingleChoice, form.Value{}); err == nil {
		t.Fatal("expected unanswered choice to fail")
	}
	if err := Field(form.KindSingleChoice, form.String("student")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertMessage(t *testing.T, err error, want string) {
	t.Helper()
	if want == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected error %q, got nil", want)
	}
	if err.Error() != want {
		t.Fatalf("expected message %q, got %q", want, err.Error())
	}
}
