package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// ManualExpense is a single expense typed in by a user. All fields are raw
// text; empty optional fields are left unset.
type ManualExpense struct {
	Date          string
	Amount        string
	Vendor        string
	Description   string
	Category      string
	PaymentMethod string
	HuntID        string
}

// AddExpense validates and stores one manual expense, returning its id.
func (p *Pipeline) AddExpense(ctx context.Context, scope models.Scope, in ManualExpense) (string, error) {
	if err := scope.RequireOrg(); err != nil {
		return "", err
	}

	if strings.TrimSpace(in.Date) == "" {
		return "", &apperror.ValidationError{Field: "date", Reason: "Pick an expense date."}
	}
	date, ok := dateutils.ParseFlexibleDate(in.Date)
	if !ok {
		return "", &apperror.ValidationError{Field: "date", Reason: "use YYYY-MM-DD or MM/DD/YYYY"}
	}

	cents := currencyutils.ParseMinorUnits(in.Amount)
	if cents <= 0 {
		return "", &apperror.ValidationError{Field: "amount", Reason: "Enter a valid amount."}
	}

	rec := models.ExpenseRecord{
		OrgID:       scope.OrgID,
		SeasonID:    scope.SeasonRef(),
		ExpenseDate: date,
		Vendor:      models.OptionalString(in.Vendor),
		Description: models.OptionalString(in.Description),
		Category:    models.CategoryUncategorized,
		AmountCents: cents,
		Source:      models.SourceManual,
	}
	if c := models.OptionalString(in.Category); c != nil {
		rec.Category = *c
	}

	if strings.TrimSpace(in.PaymentMethod) != "" {
		pm, err := models.ParsePaymentMethod(in.PaymentMethod)
		if err != nil {
			return "", &apperror.ValidationError{Field: "payment method", Reason: err.Error()}
		}
		rec.PaymentMethod = &pm
	}

	if huntID := models.OptionalString(in.HuntID); huntID != nil {
		if err := p.checkHunt(ctx, scope.OrgID, *huntID); err != nil {
			return "", err
		}
		rec.HuntID = huntID
	}

	id, err := p.repo.InsertExpense(ctx, &rec)
	if err != nil {
		return "", fmt.Errorf("failed to save expense: %w", err)
	}

	p.logger.Info("Expense added",
		logging.F(logging.FieldOrgID, scope.OrgID),
		logging.F(logging.FieldAmount, cents))
	return id, nil
}

func (p *Pipeline) checkHunt(ctx context.Context, orgID, huntID string) error {
	hunts, err := p.repo.ListHunts(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to load hunts: %w", err)
	}
	for _, h := range hunts {
		if h.ID == huntID {
			return nil
		}
	}
	return &apperror.ValidationError{Field: "hunt", Reason: fmt.Sprintf("no hunt %q in this organization", huntID)}
}
