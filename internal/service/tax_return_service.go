package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/schedule"
	"backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type ToggleSubmissionRequest struct {
	IsSubmitted   bool    `json:"is_submitted"`
	SubmittedDate string  `json:"submitted_date"` // RFC3339, optional; empty when submitting means "now"
	Amount        *string `json:"amount"`         // declared amount as decimal string, optional
}

type UpdateTaxReturnRequest struct {
	Notes  *string `json:"notes"`
	Amount *string `json:"amount"` // decimal string; empty string clears
}

type ListTaxReturnsRequest struct {
	CustomerID string // uuid, optional; empty means all customers
	Year       *int
	Month      *int
	Type       string
	Status     string // PENDING, SUBMITTED, OVERDUE; empty means all
	Page       int
	Limit      int
}

type TaxReturnResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	CustomerName  string  `json:"customer_name,omitempty"`
	Type          string  `json:"type"`
	Period        string  `json:"period"`
	Year          int     `json:"year"`
	Month         *int    `json:"month"`
	DueDate       string  `json:"due_date"`
	SubmittedDate *string `json:"submitted_date"`
	IsSubmitted   bool    `json:"is_submitted"`
	Status        string  `json:"status"`
	Amount        *string `json:"amount"`
	Notes         string  `json:"notes"`
}

// --- Interface ---

type TaxReturnService interface {
	// GenerateDueInstances materializes every instance of the customer's
	// assigned declaration types whose due date has arrived by asOf,
	// starting from the beginning of asOf's calendar year. Idempotent.
	GenerateDueInstances(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]TaxReturnResponse, error)
	// GenerateForYear materializes the full year's instances up front, for
	// the year-view screen. Idempotent.
	GenerateForYear(ctx context.Context, customerID uuid.UUID, year int) ([]TaxReturnResponse, error)
	ToggleSubmission(ctx context.Context, id uuid.UUID, req ToggleSubmissionRequest) (TaxReturnResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTaxReturnRequest) (TaxReturnResponse, error)
	List(ctx context.Context, req ListTaxReturnsRequest) ([]TaxReturnResponse, int64, error)
}

type taxReturnService struct {
	taxReturnRepo repository.TaxReturnRepository
	ruleRepo      repository.DeclarationRuleRepository
	settingRepo   repository.CustomerSettingRepository
	customerRepo  repository.CustomerRepository
	txManager     repository.TransactionManager
	log           *logger.Logger
	now           func() time.Time
}

func NewTaxReturnService(
	taxReturnRepo repository.TaxReturnRepository,
	ruleRepo repository.DeclarationRuleRepository,
	settingRepo repository.CustomerSettingRepository,
	customerRepo repository.CustomerRepository,
	txManager repository.TransactionManager,
	log *logger.Logger,
) TaxReturnService {
	return &taxReturnService{
		taxReturnRepo: taxReturnRepo,
		ruleRepo:      ruleRepo,
		settingRepo:   settingRepo,
		customerRepo:  customerRepo,
		txManager:     txManager,
		log:           log,
		now:           time.Now,
	}
}

// --- Implementation ---

func (s *taxReturnService) GenerateDueInstances(ctx context.Context, customerID uuid.UUID, asOf time.Time) ([]TaxReturnResponse, error) {
	// Anything due by the end of asOf's calendar day counts as arrived.
	windowStart := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := schedule.StartOfDay(asOf).AddDate(0, 0, 1)
	return s.generate(ctx, customerID, windowStart, windowEnd)
}

func (s *taxReturnService) GenerateForYear(ctx context.Context, customerID uuid.UUID, year int) ([]TaxReturnResponse, error) {
	windowStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return s.generate(ctx, customerID, windowStart, windowStart.AddDate(1, 0, 0))
}

func (s *taxReturnService) generate(ctx context.Context, customerID uuid.UUID, windowStart, windowEnd time.Time) ([]TaxReturnResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	settings, err := s.settingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load declaration settings: %w", err)
	}
	if len(settings) == 0 {
		return []TaxReturnResponse{}, nil
	}

	types := make([]string, 0, len(settings))
	for _, setting := range settings {
		types = append(types, setting.Type)
	}

	rules, err := s.ruleRepo.ListEnabledByTypes(ctx, types)
	if err != nil {
		return nil, fmt.Errorf("failed to load declaration rules: %w", err)
	}

	var generated []model.TaxReturn
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		for _, rule := range rules {
			periods := schedule.GeneratePeriods(rule, windowStart, windowEnd)
			instances, err := s.ensureInstances(txCtx, customerID, rule, periods)
			if err != nil {
				return err
			}
			generated = append(generated, instances...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	res := make([]TaxReturnResponse, 0, len(generated))
	for _, tr := range generated {
		res = append(res, toTaxReturnResponse(tr, now))
	}
	return res, nil
}

// ensureInstances upserts one tax return per period. Existing rows are left
// untouched, so re-running generation never resets a submitted return.
func (s *taxReturnService) ensureInstances(ctx context.Context, customerID uuid.UUID, rule model.DeclarationRule, periods []schedule.Period) ([]model.TaxReturn, error) {
	instances := make([]model.TaxReturn, 0, len(periods))
	for _, p := range periods {
		tr := model.TaxReturn{
			CustomerID: customerID,
			Type:       rule.Type,
			Period:     p.String(),
			Year:       p.Year,
			DueDate:    schedule.ResolveDueDate(rule, p),
		}
		if p.Month != 0 {
			month := p.Month
			tr.Month = &month
		}

		if _, err := s.taxReturnRepo.Upsert(ctx, &tr); err != nil {
			if errors.Is(err, model.ErrDuplicateInstance) {
				// Schema-level defect: the unique index is missing. Loud on
				// purpose, a silent skip would hide double materialization.
				s.log.Error().Err(err).
					Str("customer_id", customerID.String()).
					Str("type", rule.Type).
					Str("period", p.String()).
					Msg("duplicate tax return detected, unique index missing?")
			}
			return nil, err
		}
		instances = append(instances, tr)
	}
	return instances, nil
}

func (s *taxReturnService) ToggleSubmission(ctx context.Context, id uuid.UUID, req ToggleSubmissionRequest) (TaxReturnResponse, error) {
	tr, err := s.taxReturnRepo.FindByID(ctx, id)
	if err != nil {
		return TaxReturnResponse{}, err
	}

	if req.IsSubmitted {
		submittedAt := s.now()
		if req.SubmittedDate != "" {
			parsed, err := parseDateTime(req.SubmittedDate)
			if err != nil {
				return TaxReturnResponse{}, fmt.Errorf("%w: invalid submitted_date: %v", model.ErrInvalidInput, err)
			}
			submittedAt = parsed
		}
		tr.IsSubmitted = true
		tr.SubmittedDate = &submittedAt
	} else {
		tr.IsSubmitted = false
		tr.SubmittedDate = nil
	}

	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return TaxReturnResponse{}, err
		}
		tr.Amount = amount
	}

	if err := s.taxReturnRepo.Update(ctx, tr); err != nil {
		return TaxReturnResponse{}, fmt.Errorf("failed to update tax return: %w", err)
	}
	return toTaxReturnResponse(*tr, s.now()), nil
}

func (s *taxReturnService) Update(ctx context.Context, id uuid.UUID, req UpdateTaxReturnRequest) (TaxReturnResponse, error) {
	tr, err := s.taxReturnRepo.FindByID(ctx, id)
	if err != nil {
		return TaxReturnResponse{}, err
	}

	if req.Notes != nil {
		tr.Notes = *req.Notes
	}
	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			return TaxReturnResponse{}, err
		}
		tr.Amount = amount
	}

	if err := s.taxReturnRepo.Update(ctx, tr); err != nil {
		return TaxReturnResponse{}, fmt.Errorf("failed to update tax return: %w", err)
	}
	return toTaxReturnResponse(*tr, s.now()), nil
}

func (s *taxReturnService) List(ctx context.Context, req ListTaxReturnsRequest) ([]TaxReturnResponse, int64, error) {
	filter := repository.TaxReturnFilter{
		Year:  req.Year,
		Month: req.Month,
		Type:  req.Type,
	}

	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: invalid customer id", model.ErrInvalidInput)
		}
		filter.CustomerID = &customerID
	}

	// The status filter is expressed as storage conditions so pagination and
	// classification agree: overdue means unsubmitted with a due date before
	// the start of today.
	now := s.now()
	cutoff := schedule.StartOfDay(now)
	switch req.Status {
	case "":
	case model.StatusSubmitted:
		filter.IsSubmitted = boolPtr(true)
	case model.StatusPending:
		filter.IsSubmitted = boolPtr(false)
		filter.DueOnOrAfter = &cutoff
	case model.StatusOverdue:
		filter.IsSubmitted = boolPtr(false)
		filter.DueBefore = &cutoff
	default:
		return nil, 0, fmt.Errorf("%w: unknown status %q", model.ErrInvalidInput, req.Status)
	}

	returns, total, err := s.taxReturnRepo.List(ctx, filter, req.Page, req.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tax returns: %w", err)
	}

	res := make([]TaxReturnResponse, 0, len(returns))
	for _, tr := range returns {
		res = append(res, toTaxReturnResponse(tr, now))
	}
	return res, total, nil
}

// --- Helpers ---

func toTaxReturnResponse(tr model.TaxReturn, now time.Time) TaxReturnResponse {
	resp := TaxReturnResponse{
		ID:          tr.ID.String(),
		CustomerID:  tr.CustomerID.String(),
		Type:        tr.Type,
		Period:      tr.Period,
		Year:        tr.Year,
		Month:       tr.Month,
		DueDate:     tr.DueDate.Format(time.RFC3339),
		IsSubmitted: tr.IsSubmitted,
		Status:      schedule.Classify(tr, now),
		Notes:       tr.Notes,
	}
	if tr.Customer != nil {
		resp.CustomerName = tr.Customer.Name
	}
	if tr.SubmittedDate != nil {
		submitted := tr.SubmittedDate.Format(time.RFC3339)
		resp.SubmittedDate = &submitted
	}
	if tr.Amount != nil {
		amount := tr.Amount.StringFixed(2)
		resp.Amount = &amount
	}
	return resp
}

// parseDateTime accepts RFC3339 or a bare YYYY-MM-DD date.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseAmount parses a decimal string; empty clears the stored amount.
func parseAmount(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount: %v", model.ErrInvalidInput, err)
	}
	return &amount, nil
}

func boolPtr(v bool) *bool { return &v }
