package models

import "cloud.google.com/go/civil"

// LineItemStatus is the payment state of a schedule line item.
type LineItemStatus string

const (
	StatusDue     LineItemStatus = "due"
	StatusPaid    LineItemStatus = "paid"
	StatusOverdue LineItemStatus = "overdue"
)

// PaymentLineItem is one installment of an invoice. AmountCents is always
// positive; zero-amount installments are never created.
type PaymentLineItem struct {
	ID          string
	OrgID       string
	InvoiceID   string
	Label       string
	DueDate     civil.Date
	AmountCents int64
	Status      LineItemStatus
}

// SumCents totals the amounts of items.
func SumCents(items []PaymentLineItem) int64 {
	var total int64
	for _, it := range items {
		total += it.AmountCents
	}
	return total
}
