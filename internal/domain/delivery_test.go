package domain

import (
	"errors"
	"testing"
)

func TestAggregateOverallStatus(t *testing.T) {
	ok := DeliveryOutcome{Submitted: true, SubmissionID: "ltr_1"}
	bad := DeliveryOutcome{Submitted: false, Reason: "vendor rejected"}

	cases := []struct {
		name     string
		outcomes []DeliveryOutcome
		want     OverallStatus
	}{
		{"all succeed", []DeliveryOutcome{ok, ok, ok, ok}, AllSucceeded},
		{"one fails", []DeliveryOutcome{ok, bad, ok, ok}, PartiallyFailed},
		{"all fail", []DeliveryOutcome{bad, bad}, AllFailed},
		{"single success", []DeliveryOutcome{ok}, AllSucceeded},
		{"single failure", []DeliveryOutcome{bad}, AllFailed},
	}

	for _, tc := range cases {
		got := Aggregate(tc.outcomes)
		if got.Overall != tc.want {
			t.Errorf("%s: overall = %q, want %q", tc.name, got.Overall, tc.want)
		}
		if len(got.Outcomes) != len(tc.outcomes) {
			t.Errorf("%s: aggregate dropped outcomes: got %d, want %d", tc.name, len(got.Outcomes), len(tc.outcomes))
		}
	}
}

func TestActionChannels(t *testing.T) {
	if got := ActionLetter.Channels(); len(got) != 1 || got[0] != ChannelPostalLetter {
		t.Fatalf("letter channels = %v", got)
	}
	if got := ActionFax.Channels(); len(got) != 1 || got[0] != ChannelFaxTransmission {
		t.Fatalf("fax channels = %v", got)
	}
	if got := ActionBoth.Channels(); len(got) != 2 {
		t.Fatalf("both channels = %v", got)
	}
	if got := ActionWeb.Channels(); got != nil {
		t.Fatalf("web channels = %v, want none", got)
	}
}

func TestRequesterValidate(t *testing.T) {
	valid := Requester{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		StreetAddress: "1 Main St",
		ZipCode:       "90210",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := valid
	missing.FirstName = "  "
	missing.Email = "not-an-email"
	err := missing.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("fields = %v, want first_name and email", ve.Fields)
	}
}

func TestRequesterValidateZip(t *testing.T) {
	r := Requester{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		StreetAddress: "1 Main St",
	}

	for _, zip := range []string{"", "9021", "902100", "9021a"} {
		r.ZipCode = zip
		if r.Validate() == nil {
			t.Errorf("zip %q: expected validation error", zip)
		}
	}
}

func TestRecipientLastName(t *testing.T) {
	r := Recipient{Name: "Catherine Cortez Masto"}
	if got := r.LastName(); got != "Masto" {
		t.Fatalf("last name = %q, want Masto", got)
	}
	single := Recipient{Name: "Cher"}
	if got := single.LastName(); got != "Cher" {
		t.Fatalf("last name = %q, want Cher", got)
	}
}
