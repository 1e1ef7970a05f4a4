package services

import (
	"advocacy-dispatch-service/internal/domain"
	"errors"
	"testing"
)

func TestPriceLinearity(t *testing.T) {
	p := NewPricer(DefaultPriceTable())

	for _, action := range []domain.ActionSelection{domain.ActionLetter, domain.ActionFax, domain.ActionBoth} {
		base, err := p.Price(action, 1)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", action, err)
		}

		for n := 1; n <= 5; n++ {
			charge, err := p.Price(action, n)
			if err != nil {
				t.Fatalf("%s n=%d: unexpected error: %v", action, n, err)
			}
			if charge.AmountCents != base.AmountCents*int64(n) {
				t.Errorf("%s n=%d: amount = %d, want %d", action, n, charge.AmountCents, base.AmountCents*int64(n))
			}
			if charge.UnitPriceCents != base.UnitPriceCents {
				t.Errorf("%s n=%d: unit price changed: %d vs %d", action, n, charge.UnitPriceCents, base.UnitPriceCents)
			}
			if charge.RecipientCount != n {
				t.Errorf("%s n=%d: recipient count = %d", action, n, charge.RecipientCount)
			}
		}
	}
}

func TestPriceWebNeverCharged(t *testing.T) {
	p := NewPricer(DefaultPriceTable())

	for _, n := range []int{1, 2, 10} {
		_, err := p.Price(domain.ActionWeb, n)
		if !errors.Is(err, domain.ErrInvalidAction) {
			t.Fatalf("web n=%d: error = %v, want ErrInvalidAction", n, err)
		}
	}
}

func TestPriceRejectsBadRecipientCount(t *testing.T) {
	p := NewPricer(DefaultPriceTable())

	for _, n := range []int{0, -1} {
		_, err := p.Price(domain.ActionLetter, n)
		if !errors.Is(err, domain.ErrInvalidAction) {
			t.Fatalf("n=%d: error = %v, want ErrInvalidAction", n, err)
		}
	}
}

// Pricing must be referentially transparent: identical inputs, identical
// charges, no hidden state between calls.
func TestPriceDeterministic(t *testing.T) {
	p := NewPricer(DefaultPriceTable())

	first, err := p.Price(domain.ActionBoth, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.Price(domain.ActionBoth, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("charges differ: %+v vs %+v", first, second)
	}
	if first.AmountCents != 600 {
		t.Fatalf("both x2 = %d cents, want 600", first.AmountCents)
	}
}

func TestPriceCustomTable(t *testing.T) {
	p := NewPricer(PriceTable{
		UnitCents: map[domain.ActionSelection]int64{domain.ActionLetter: 110, domain.ActionFax: 25},
		Currency:  "usd",
	})

	charge, err := p.Price(domain.ActionFax, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.AmountCents != 50 {
		t.Fatalf("fax x2 = %d cents, want 50", charge.AmountCents)
	}

	// An action missing from the table must not be priced.
	if _, err := p.Price(domain.ActionBoth, 1); !errors.Is(err, domain.ErrInvalidAction) {
		t.Fatalf("error = %v, want ErrInvalidAction", err)
	}
}
