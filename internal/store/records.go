package store

import (
	"time"

	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// Table rows. Calendar dates are stored as midnight UTC in DATE columns.

type expenseRow struct {
	ID            string    `gorm:"primaryKey;size:36"`
	OrgID         string    `gorm:"size:64;not null;index;uniqueIndex:idx_expenses_org_external,priority:1"`
	SeasonID      *string   `gorm:"size:64"`
	HuntID        *string   `gorm:"size:36;index"`
	ExpenseDate   time.Time `gorm:"type:date;not null"`
	Vendor        *string
	Description   *string
	Category      string  `gorm:"not null"`
	AmountCents   int64   `gorm:"not null"`
	PaymentMethod *string `gorm:"size:16"`
	Source        string  `gorm:"size:16;not null"`
	ExternalID    *string `gorm:"uniqueIndex:idx_expenses_org_external,priority:2"`
	CreatedAt     time.Time
}

func (expenseRow) TableName() string { return "expenses" }

type clientRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	OrgID     string `gorm:"size:64;not null;index"`
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

func (clientRow) TableName() string { return "clients" }

type huntRow struct {
	ID              string    `gorm:"primaryKey;size:36"`
	OrgID           string    `gorm:"size:64;not null;index"`
	SeasonID        string    `gorm:"size:64;not null"`
	ClientID        string    `gorm:"size:36;not null"`
	Title           string    `gorm:"not null"`
	HuntType        string    `gorm:"size:16"`
	HuntStart       time.Time `gorm:"type:date;not null"`
	TotalPriceCents int64     `gorm:"not null"`
	Status          string    `gorm:"size:16;not null"`
	CreatedAt       time.Time `gorm:"index"`
}

func (huntRow) TableName() string { return "hunts" }

type invoiceRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	OrgID      string `gorm:"size:64;not null;index"`
	HuntID     string `gorm:"size:36;not null;index"`
	TotalCents int64  `gorm:"not null"`
	Currency   string `gorm:"size:3;not null"`
	CreatedAt  time.Time
}

func (invoiceRow) TableName() string { return "invoices" }

type scheduleItemRow struct {
	ID          string    `gorm:"primaryKey;size:36"`
	OrgID       string    `gorm:"size:64;not null;index"`
	InvoiceID   string    `gorm:"size:36;not null;index"`
	Label       string    `gorm:"not null"`
	DueDate     time.Time `gorm:"type:date;not null"`
	AmountCents int64     `gorm:"not null"`
	Status      string    `gorm:"size:16;not null"`
	CreatedAt   time.Time
}

func (scheduleItemRow) TableName() string { return "invoice_schedule_items" }

func toExpenseRow(rec models.ExpenseRecord) expenseRow {
	var pm *string
	if rec.PaymentMethod != nil {
		s := string(*rec.PaymentMethod)
		pm = &s
	}
	return expenseRow{
		ID:            rec.ID,
		OrgID:         rec.OrgID,
		SeasonID:      rec.SeasonID,
		HuntID:        rec.HuntID,
		ExpenseDate:   dateutils.ToTime(rec.ExpenseDate),
		Vendor:        rec.Vendor,
		Description:   rec.Description,
		Category:      rec.Category,
		AmountCents:   rec.AmountCents,
		PaymentMethod: pm,
		Source:        string(rec.Source),
		ExternalID:    rec.ExternalID,
	}
}

func (r expenseRow) toModel() models.ExpenseRecord {
	var pm *models.PaymentMethod
	if r.PaymentMethod != nil {
		p := models.PaymentMethod(*r.PaymentMethod)
		pm = &p
	}
	return models.ExpenseRecord{
		ID:            r.ID,
		OrgID:         r.OrgID,
		SeasonID:      r.SeasonID,
		HuntID:        r.HuntID,
		ExpenseDate:   dateutils.FromTime(r.ExpenseDate),
		Vendor:        r.Vendor,
		Description:   r.Description,
		Category:      r.Category,
		AmountCents:   r.AmountCents,
		PaymentMethod: pm,
		Source:        models.ExpenseSource(r.Source),
		ExternalID:    r.ExternalID,
	}
}

func (r scheduleItemRow) toModel() models.PaymentLineItem {
	return models.PaymentLineItem{
		ID:          r.ID,
		OrgID:       r.OrgID,
		InvoiceID:   r.InvoiceID,
		Label:       r.Label,
		DueDate:     dateutils.FromTime(r.DueDate),
		AmountCents: r.AmountCents,
		Status:      models.LineItemStatus(r.Status),
	}
}
