// Package settlement derives a sale's settlement state from its payments.
// It is the single source of truth for amount_paid and status: every code
// path that records a payment recomputes through Compute rather than
// incrementing stored fields.
package settlement

import (
	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// Compute returns the amount paid and settlement status for a sale with the
// given total and full payment set.
//
// Credit payments acknowledge a debt rather than settle it: they are excluded
// from amountPaid but still move a sale out of pending, so a fully-on-credit
// sale reports as partial with its entire balance outstanding.
func Compute(totalAmount int64, payments []entity.Payment) (amountPaid int64, status enum.SaleStatus) {
	hasCredit := false
	for _, p := range payments {
		if p.Method.IsCredit() {
			hasCredit = true
			continue
		}
		amountPaid += p.Amount
	}

	switch {
	case amountPaid >= totalAmount:
		status = enum.SaleStatusPaid
	case amountPaid > 0 || hasCredit:
		status = enum.SaleStatusPartial
	default:
		status = enum.SaleStatusPending
	}
	return amountPaid, status
}
