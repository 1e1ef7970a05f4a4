package services

import (
	"advocacy-dispatch-service/internal/adapters/compose"
	"advocacy-dispatch-service/internal/adapters/fax"
	"advocacy-dispatch-service/internal/adapters/post"
	"advocacy-dispatch-service/internal/domain"
	"context"
	"errors"
	"strings"
	"testing"
)

var testRequester = domain.Requester{
	FirstName:     "Jane",
	LastName:      "Doe",
	Email:         "jane@example.com",
	StreetAddress: "1 Main St",
	City:          "Beverly Hills",
	State:         "CA",
	ZipCode:       "90210",
}

var testRecipients = []domain.Recipient{
	{Name: "Alex Padilla", ContactURL: "https://www.padilla.senate.gov/contact", Fax: "+12022242200"},
	{Name: "Adam Schiff", ContactURL: "https://www.schiff.senate.gov/contact", Fax: "+12022242200"},
}

func newTestDispatcher(letters *post.MockLetterSubmitter, faxes *fax.MockFaxSubmitter) *Dispatcher {
	return NewDispatcher(compose.NewTemplateComposer(), letters, faxes)
}

// A Both dispatch over N recipients must issue exactly 2N submissions and
// settle into exactly 2N outcomes.
func TestDispatchFanOutBoth(t *testing.T) {
	letters := &post.MockLetterSubmitter{}
	faxes := &fax.MockFaxSubmitter{}
	d := newTestDispatcher(letters, faxes)

	result, err := d.Dispatch(context.Background(), testRequester, testRecipients, domain.ActionBoth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if letters.Count() != 2 {
		t.Fatalf("letter submissions = %d, want 2", letters.Count())
	}
	if faxes.Count() != 2 {
		t.Fatalf("fax submissions = %d, want 2", faxes.Count())
	}
	if len(result.Outcomes) != 4 {
		t.Fatalf("outcomes = %d, want 4", len(result.Outcomes))
	}
	if result.Overall != domain.AllSucceeded {
		t.Fatalf("overall = %q, want all_succeeded", result.Overall)
	}

	for _, o := range result.Outcomes {
		if !o.Submitted || o.SubmissionID == "" {
			t.Errorf("outcome %+v missing submission id", o)
		}
	}
}

func TestDispatchComposesSignedBody(t *testing.T) {
	letters := &post.MockLetterSubmitter{}
	faxes := &fax.MockFaxSubmitter{}
	d := newTestDispatcher(letters, faxes)

	if _, err := d.Dispatch(context.Background(), testRequester, testRecipients[:1], domain.ActionLetter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if letters.Count() != 1 {
		t.Fatalf("letter submissions = %d, want 1", letters.Count())
	}
	body := letters.Submitted[0].Body
	if !strings.Contains(body, "Jane Doe") {
		t.Fatalf("composed body is not signed by the requester:\n%s", body)
	}
}

// One failing submission must neither abort its siblings nor be dropped from
// the aggregate.
func TestDispatchPartialFailure(t *testing.T) {
	letters := &post.MockLetterSubmitter{}
	faxes := &fax.MockFaxSubmitter{FailFor: map[string]string{"Adam Schiff": "line busy"}}
	d := newTestDispatcher(letters, faxes)

	result, err := d.Dispatch(context.Background(), testRequester, testRecipients, domain.ActionBoth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Outcomes) != 4 {
		t.Fatalf("outcomes = %d, want 4", len(result.Outcomes))
	}
	if result.Overall != domain.PartiallyFailed {
		t.Fatalf("overall = %q, want partially_failed", result.Overall)
	}

	failed := 0
	for _, o := range result.Outcomes {
		if !o.Submitted {
			failed++
			if o.Channel != domain.ChannelFaxTransmission {
				t.Errorf("failed outcome on wrong channel: %+v", o)
			}
			if !strings.Contains(o.Reason, "line busy") {
				t.Errorf("failure reason lost upstream text: %q", o.Reason)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("failed outcomes = %d, want 1", failed)
	}
}

func TestDispatchAllFailed(t *testing.T) {
	letters := &post.MockLetterSubmitter{FailFor: map[string]string{
		"Alex Padilla": "invalid address",
		"Adam Schiff":  "invalid address",
	}}
	faxes := &fax.MockFaxSubmitter{}
	d := newTestDispatcher(letters, faxes)

	result, err := d.Dispatch(context.Background(), testRequester, testRecipients, domain.ActionLetter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Overall != domain.AllFailed {
		t.Fatalf("overall = %q, want all_failed", result.Overall)
	}
	if len(result.Outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(result.Outcomes))
	}
}

// A total failure of one channel must not block the other channel's fan-out.
func TestDispatchChannelIndependence(t *testing.T) {
	letters := &post.MockLetterSubmitter{FailFor: map[string]string{
		"Alex Padilla": "printer down",
		"Adam Schiff":  "printer down",
	}}
	faxes := &fax.MockFaxSubmitter{}
	d := newTestDispatcher(letters, faxes)

	result, err := d.Dispatch(context.Background(), testRequester, testRecipients, domain.ActionBoth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if faxes.Count() != 2 {
		t.Fatalf("fax submissions = %d, want 2 despite postal channel failure", faxes.Count())
	}
	if result.Overall != domain.PartiallyFailed {
		t.Fatalf("overall = %q, want partially_failed", result.Overall)
	}
	if len(result.Outcomes) != 4 {
		t.Fatalf("outcomes = %d, want union of both channels (4)", len(result.Outcomes))
	}
}

func TestDispatchRejectsWeb(t *testing.T) {
	d := newTestDispatcher(&post.MockLetterSubmitter{}, &fax.MockFaxSubmitter{})

	_, err := d.Dispatch(context.Background(), testRequester, testRecipients, domain.ActionWeb)
	if !errors.Is(err, domain.ErrInvalidAction) {
		t.Fatalf("error = %v, want ErrInvalidAction", err)
	}
}
