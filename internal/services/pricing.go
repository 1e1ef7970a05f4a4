package services

import (
	"advocacy-dispatch-service/internal/domain"
	"fmt"
)

// PriceTable is the fixed unit-price configuration for paid actions, in minor
// currency units. Web deliberately has no entry: it must never be priced.
type PriceTable struct {
	UnitCents map[domain.ActionSelection]int64
	Currency  string
}

// DefaultPriceTable covers vendor cost plus a small buffer for card fees.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		UnitCents: map[domain.ActionSelection]int64{
			domain.ActionLetter: 200,
			domain.ActionFax:    100,
			domain.ActionBoth:   300,
		},
		Currency: "usd",
	}
}

// Pricer computes charges from the price table. It is stateless and safe for
// concurrent use; identical inputs always produce identical charges.
type Pricer struct {
	table PriceTable
}

func NewPricer(table PriceTable) *Pricer {
	return &Pricer{table: table}
}

// Price computes the charge for sending via action to recipientCount offices.
// Amounts scale linearly with recipient count.
func (p *Pricer) Price(action domain.ActionSelection, recipientCount int) (domain.Charge, error) {
	unit, ok := p.table.UnitCents[action]
	if !ok {
		return domain.Charge{}, fmt.Errorf("price action %q: %w", action, domain.ErrInvalidAction)
	}
	if recipientCount < 1 {
		return domain.Charge{}, fmt.Errorf("price action %q: recipient count %d: %w", action, recipientCount, domain.ErrInvalidAction)
	}

	return domain.Charge{
		AmountCents:    unit * int64(recipientCount),
		UnitPriceCents: unit,
		Currency:       p.table.Currency,
		RecipientCount: recipientCount,
	}, nil
}
