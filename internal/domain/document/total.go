package document

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Total is the derived total_value of a record: the sum of its line item
// values plus the sum of its expense amounts.
func Total(itemValues, expenseAmounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range itemValues {
		total = total.Add(v)
	}
	for _, a := range expenseAmounts {
		total = total.Add(a)
	}
	return total
}

// LineValue returns value when it is set, otherwise quantity times price.
func LineValue(quantity, price, value decimal.Decimal) decimal.Decimal {
	if !value.IsZero() {
		return value
	}
	return quantity.Mul(price).Round(2)
}

// TotalRecomputer maintains the stored total_value of a record.
// Lock must be called before mutating lines so concurrent writers
// to the same record serialize inside their transactions.
type TotalRecomputer interface {
	Lock(ctx context.Context, kind Kind, ownerID uuid.UUID) error
	Recompute(ctx context.Context, kind Kind, ownerID uuid.UUID) (decimal.Decimal, error)
}
