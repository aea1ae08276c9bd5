package models

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// ExpenseSource records how an expense entered the system.
type ExpenseSource string

const (
	SourceManual ExpenseSource = "manual"
	SourceCSV    ExpenseSource = "csv"
)

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentACH   PaymentMethod = "ach"
	PaymentCash  PaymentMethod = "cash"
	PaymentCheck PaymentMethod = "check"
)

// PaymentMethods lists the accepted payment methods in display order.
var PaymentMethods = []PaymentMethod{PaymentCard, PaymentACH, PaymentCash, PaymentCheck}

// ParsePaymentMethod maps user input (any case) to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	pm := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PaymentMethods {
		if pm == known {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q (expected card, ach, cash or check)", s)
}

// ExpenseRecord is a single business expense. Optional fields are nil when
// absent. AmountCents is in minor units and must be positive to be stored.
type ExpenseRecord struct {
	ID            string
	OrgID         string
	SeasonID      *string
	HuntID        *string
	ExpenseDate   civil.Date
	Vendor        *string
	Description   *string
	Category      string
	AmountCents   int64
	PaymentMethod *PaymentMethod
	Source        ExpenseSource
	ExternalID    *string
}

// Valid reports whether the record may be written: it needs an organization,
// a real calendar date and a positive amount.
func (r ExpenseRecord) Valid() bool {
	return r.OrgID != "" && r.ExpenseDate.IsValid() && r.AmountCents > 0
}

// DedupeKey returns the (organization, external id) key, or false when the
// record has no external id and cannot be deduplicated.
func (r ExpenseRecord) DedupeKey() (string, bool) {
	if r.ExternalID == nil || *r.ExternalID == "" {
		return "", false
	}
	return r.OrgID + "\x00" + *r.ExternalID, true
}

// HuntSummary is the id/title pair used to attach expenses to a hunt.
type HuntSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// OptionalString returns nil for an empty (after trimming) string.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
