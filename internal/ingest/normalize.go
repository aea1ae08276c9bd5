package ingest

import (
	"github.com/Kjohnson1213/outfitter-finance/internal/columnmap"
	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// normalizeRow maps one data row to a record. A non-empty reason means the
// row must be dropped.
func normalizeRow(idx columnmap.ColumnIndex, row []string, scope models.Scope) (models.ExpenseRecord, string) {
	dateText, _ := idx.Lookup(row, columnmap.FieldDate)
	date, ok := dateutils.ParseFlexibleDate(dateText)
	if !ok {
		return models.ExpenseRecord{}, "unreadable date"
	}

	amountText, _ := idx.Lookup(row, columnmap.FieldAmount)
	cents := currencyutils.ParseMinorUnits(amountText)
	if cents <= 0 {
		return models.ExpenseRecord{}, "amount must be greater than zero"
	}

	category := models.CategoryUncategorized
	if c := optional(idx, row, columnmap.FieldCategory); c != nil {
		category = *c
	}

	return models.ExpenseRecord{
		OrgID:       scope.OrgID,
		SeasonID:    scope.SeasonRef(),
		ExpenseDate: date,
		Vendor:      optional(idx, row, columnmap.FieldVendor),
		Description: optional(idx, row, columnmap.FieldDescription),
		Category:    category,
		AmountCents: cents,
		Source:      models.SourceCSV,
		ExternalID:  optional(idx, row, columnmap.FieldExternalID),
	}, ""
}

func optional(idx columnmap.ColumnIndex, row []string, f columnmap.Field) *string {
	v, ok := idx.Lookup(row, f)
	if !ok {
		return nil
	}
	return models.OptionalString(v)
}
