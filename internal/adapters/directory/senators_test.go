package directory

import (
	"advocacy-dispatch-service/internal/domain"
	"context"
	"errors"
	"testing"
)

func TestLookupKnownState(t *testing.T) {
	d := NewSenatorDirectory()

	senators, err := d.Lookup(context.Background(), "CA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(senators) != 2 {
		t.Fatalf("expected 2 senators, got %d", len(senators))
	}
	if senators[0].Name != "Alex Padilla" {
		t.Fatalf("first senator = %q", senators[0].Name)
	}
	if senators[1].Name != "Adam Schiff" {
		t.Fatalf("second senator = %q", senators[1].Name)
	}
}

func TestLookupUnknownState(t *testing.T) {
	d := NewSenatorDirectory()

	_, err := d.Lookup(context.Background(), "PR")
	if !errors.Is(err, domain.ErrRecipientLookupFailed) {
		t.Fatalf("error = %v, want ErrRecipientLookupFailed", err)
	}
}

// Every state must carry exactly two senators with E.164 fax numbers;
// the fax vendor rejects anything else.
func TestDirectoryShape(t *testing.T) {
	d := NewSenatorDirectory()
	states := d.States()

	if len(states) != 50 {
		t.Fatalf("expected 50 states, got %d", len(states))
	}

	for _, st := range states {
		senators, err := d.Lookup(context.Background(), st)
		if err != nil {
			t.Fatalf("%s: %v", st, err)
		}
		if len(senators) != 2 {
			t.Errorf("%s: expected 2 senators, got %d", st, len(senators))
		}
		for _, sen := range senators {
			if sen.Name == "" || sen.ContactURL == "" {
				t.Errorf("%s: incomplete entry %+v", st, sen)
			}
			if len(sen.Fax) != 12 || sen.Fax[:2] != "+1" {
				t.Errorf("%s: fax %q for %s is not E.164", st, sen.Fax, sen.Name)
			}
			for _, c := range sen.Fax[1:] {
				if c < '0' || c > '9' {
					t.Errorf("%s: fax %q for %s contains non-digit", st, sen.Fax, sen.Name)
				}
			}
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	d := NewSenatorDirectory()

	first, _ := d.Lookup(context.Background(), "AK")
	first[0].Name = "mutated"

	second, _ := d.Lookup(context.Background(), "AK")
	if second[0].Name != "Lisa Murkowski" {
		t.Fatalf("directory table was mutated through a lookup result")
	}
}
