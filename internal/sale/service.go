// Package sale records a sold hunt: the client, the hunt, its invoice and the
// deposit/final payment schedule.
package sale

import (
	"context"
	"strings"
	"time"

	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/logging"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
	"github.com/Kjohnson1213/outfitter-finance/internal/schedule"
	"github.com/Kjohnson1213/outfitter-finance/internal/validation"
)

// Repository is the storage a sale is written to.
type Repository interface {
	CreateClient(ctx context.Context, c *models.Client) (string, error)
	CreateHunt(ctx context.Context, h *models.Hunt) (string, error)
	CreateInvoice(ctx context.Context, inv *models.Invoice) (string, error)
	InsertScheduleItems(ctx context.Context, items []models.PaymentLineItem) error
	ListHunts(ctx context.Context, orgID string) ([]models.HuntSummary, error)
}

// SaleRequest is the raw input for a new sale.
type SaleRequest struct {
	FirstName      string `json:"first_name" validate:"max=100"`
	LastName       string `json:"last_name" validate:"max=100"`
	Email          string `json:"email" validate:"omitempty,email"`
	HuntTitle      string `json:"hunt_title" validate:"required" msg:"Please enter a hunt title."`
	HuntType       string `json:"hunt_type" validate:"required,hunttype"`
	HuntStart      string `json:"hunt_start" validate:"required,flexdate" msg:"Please select a hunt start date."`
	TotalPrice     string `json:"total_price" validate:"omitempty,money"`
	DepositPercent string `json:"deposit_percent" validate:"required,percent"`
}

// SaleResult holds what was created. After a failed step only the records
// created before it are set.
type SaleResult struct {
	Client   *models.Client
	Hunt     *models.Hunt
	Invoice  *models.Invoice
	Schedule []models.PaymentLineItem
}

// Service creates sales.
type Service struct {
	repo      Repository
	generator *schedule.Generator
	logger    logging.Logger
	now       func() time.Time
	currency  string
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the source of "today" for deposit due dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithCurrency sets the invoice currency.
func WithCurrency(code string) Option {
	return func(s *Service) {
		if code != "" {
			s.currency = strings.ToUpper(code)
		}
	}
}

// NewService creates a Service.
func NewService(repo Repository, generator *schedule.Generator, logger logging.Logger, opts ...Option) *Service {
	logger = logging.OrDefault(logger)
	if generator == nil {
		generator = schedule.NewGenerator(nil, logger)
	}
	s := &Service{
		repo:      repo,
		generator: generator,
		logger:    logger,
		now:       time.Now,
		currency:  models.CurrencyUSD,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateSale writes the client, hunt, invoice and schedule in that order.
// Nothing is rolled back: when a step fails the returned *apperror.StepError
// names it and the result holds the records already created.
func (s *Service) CreateSale(ctx context.Context, scope models.Scope, req SaleRequest) (*SaleResult, error) {
	if err := scope.RequireOrgAndSeason(); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	huntType, err := models.ParseHuntType(req.HuntType)
	if err != nil {
		return nil, err
	}
	start, _ := dateutils.ParseFlexibleDate(req.HuntStart)
	totalCents := currencyutils.ParseMinorUnits(req.TotalPrice)
	pct, _ := currencyutils.ParseDecimal(req.DepositPercent)
	today := dateutils.Today(s.now())

	log := s.logger.WithFields(
		logging.F(logging.FieldOrgID, scope.OrgID),
		logging.F(logging.FieldSeasonID, scope.SeasonID))

	// Generate before writing anything so bad amounts fail without side effects.
	items, err := s.generator.Generate(totalCents, pct, string(huntType), start, today)
	if err != nil {
		return nil, &apperror.ValidationError{Field: "deposit_percent", Reason: err.Error()}
	}

	res := &SaleResult{}
	fail := func(step apperror.Step, err error) (*SaleResult, error) {
		log.WithError(err).Error("Sale creation failed", logging.F(logging.FieldStep, string(step)))
		return res, &apperror.StepError{Step: step, Err: err}
	}

	client := &models.Client{
		OrgID:     scope.OrgID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
	}
	if _, err := s.repo.CreateClient(ctx, client); err != nil {
		return fail(apperror.StepClient, err)
	}
	res.Client = client

	hunt := &models.Hunt{
		OrgID:           scope.OrgID,
		SeasonID:        scope.SeasonID,
		ClientID:        client.ID,
		Title:           strings.TrimSpace(req.HuntTitle),
		HuntType:        huntType,
		HuntStart:       start,
		TotalPriceCents: totalCents,
		Status:          models.HuntStatusBooked,
	}
	if _, err := s.repo.CreateHunt(ctx, hunt); err != nil {
		return fail(apperror.StepHunt, err)
	}
	res.Hunt = hunt

	invoice := &models.Invoice{
		OrgID:      scope.OrgID,
		HuntID:     hunt.ID,
		TotalCents: totalCents,
		Currency:   s.currency,
	}
	if _, err := s.repo.CreateInvoice(ctx, invoice); err != nil {
		return fail(apperror.StepInvoice, err)
	}
	res.Invoice = invoice

	for i := range items {
		items[i].OrgID = scope.OrgID
		items[i].InvoiceID = invoice.ID
	}
	if len(items) > 0 {
		if err := s.repo.InsertScheduleItems(ctx, items); err != nil {
			return fail(apperror.StepSchedule, err)
		}
	}
	res.Schedule = items

	log.Info("Sale created",
		logging.F(logging.FieldHuntType, string(huntType)),
		logging.F(logging.FieldAmount, totalCents),
		logging.F(logging.FieldCount, len(items)))

	return res, nil
}

// ListHunts returns the organization's hunts, newest first.
func (s *Service) ListHunts(ctx context.Context, scope models.Scope) ([]models.HuntSummary, error) {
	if err := scope.RequireOrg(); err != nil {
		return nil, err
	}
	return s.repo.ListHunts(ctx, scope.OrgID)
}
