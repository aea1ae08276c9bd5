// Package schedule splits a hunt price into a deposit and a final payment
// and works out when each is due.
package schedule

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

var (
	zero    = decimal.Zero
	hundred = decimal.NewFromInt(100)
)

// Generator builds payment schedules.
type Generator struct {
	policy LeadTimePolicy
	logger logging.Logger
}

// NewGenerator creates a Generator. A nil policy means DefaultPolicy.
func NewGenerator(policy LeadTimePolicy, logger logging.Logger) *Generator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Generator{policy: policy, logger: logging.OrDefault(logger)}
}

// Policy returns the lead-time policy in use.
func (g *Generator) Policy() LeadTimePolicy {
	return g.policy
}

// SplitDeposit returns the deposit and final amounts of totalCents. The
// deposit is rounded half away from zero and the final payment takes the
// remainder, so the two always sum to totalCents.
func SplitDeposit(totalCents int64, depositPercent decimal.Decimal) (deposit, final int64, err error) {
	if err := validate(totalCents, depositPercent); err != nil {
		return 0, 0, err
	}
	deposit = currencyutils.PercentOf(totalCents, depositPercent)
	return deposit, totalCents - deposit, nil
}

func validate(totalCents int64, depositPercent decimal.Decimal) error {
	if totalCents < 0 {
		return fmt.Errorf("total must not be negative, got %d", totalCents)
	}
	if depositPercent.LessThan(zero) || depositPercent.GreaterThan(hundred) {
		return fmt.Errorf("deposit percent must be between 0 and 100, got %s", depositPercent)
	}
	return nil
}

// Generate returns the deposit (due today) and final payment (due the hunt
// type's lead days before eventDate). Zero-amount items are omitted. Items
// carry no ids; the caller fills OrgID and InvoiceID.
//
// A final due date already in the past is kept as is and stays "due".
func (g *Generator) Generate(totalCents int64, depositPercent decimal.Decimal, huntType string, eventDate, today civil.Date) ([]models.PaymentLineItem, error) {
	deposit, final, err := SplitDeposit(totalCents, depositPercent)
	if err != nil {
		return nil, err
	}

	lead := g.policy.LeadDays(huntType)
	finalDue := dateutils.OffsetDate(eventDate, -lead)

	g.logger.Debug("Generating payment schedule",
		logging.F(logging.FieldHuntType, huntType),
		logging.F(logging.FieldLeadDays, lead),
		logging.F(logging.FieldAmount, totalCents))

	items := make([]models.PaymentLineItem, 0, 2)
	if deposit > 0 {
		items = append(items, models.PaymentLineItem{
			Label:       models.LabelDeposit,
			DueDate:     today,
			AmountCents: deposit,
			Status:      models.StatusDue,
		})
	}
	if final > 0 {
		items = append(items, models.PaymentLineItem{
			Label:       models.LabelFinalPayment,
			DueDate:     finalDue,
			AmountCents: final,
			Status:      models.StatusDue,
		})
	}
	return items, nil
}
