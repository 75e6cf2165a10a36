package service

import "github.com/Darshan-Dhanvate/grocerease-api/pkg/money"

// BillTotals holds the derived amounts for one bill
type BillTotals struct {
	DiscountAmount money.Cents
	TaxAmount      money.Cents
	NetAmount      money.Cents
}

// ComputeTotals derives the bill amounts from the subtotal: the discount
// applies to the subtotal, tax applies to the discounted amount. Each
// stored amount is rounded half up at the second decimal; intermediate
// math is exact integer arithmetic, so the same inputs always produce the
// same totals.
func ComputeTotals(subTotal money.Cents, discountPct, taxPct float64) BillTotals {
	discount := subTotal.Percent(discountPct)
	taxable := subTotal - discount
	tax := taxable.Percent(taxPct)

	return BillTotals{
		DiscountAmount: discount,
		TaxAmount:      tax,
		NetAmount:      taxable + tax,
	}
}
