package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/schedule"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateDeclarationConfigRequest struct {
	Type          string `json:"type" binding:"required"`
	Frequency     string `json:"frequency" binding:"required,oneof=MONTHLY QUARTERLY YEARLY"`
	Enabled       *bool  `json:"enabled"` // defaults to true
	DueDay        *int   `json:"due_day"`
	DueHour       *int   `json:"due_hour"`
	DueMinute     *int   `json:"due_minute"`
	DueMonth      *int   `json:"due_month"`
	QuarterOffset *int   `json:"quarter_offset"`
	SkipQuarter   bool   `json:"skip_quarter"`
	Quarters      string `json:"quarters"` // CSV subset of "1,2,3,4"
	TaxPeriodType string `json:"tax_period_type" binding:"omitempty,oneof=NORMAL SPECIAL"`
	Optional      bool   `json:"optional"`
}

type UpdateDeclarationConfigRequest struct {
	Type          string `json:"type" binding:"required"`
	Frequency     string `json:"frequency" binding:"required,oneof=MONTHLY QUARTERLY YEARLY"`
	Enabled       *bool  `json:"enabled"`
	DueDay        *int   `json:"due_day"`
	DueHour       *int   `json:"due_hour"`
	DueMinute     *int   `json:"due_minute"`
	DueMonth      *int   `json:"due_month"`
	QuarterOffset *int   `json:"quarter_offset"`
	SkipQuarter   bool   `json:"skip_quarter"`
	Quarters      string `json:"quarters"`
	TaxPeriodType string `json:"tax_period_type" binding:"omitempty,oneof=NORMAL SPECIAL"`
	Optional      bool   `json:"optional"`
}

type DeclarationConfigResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Frequency     string `json:"frequency"`
	Enabled       bool   `json:"enabled"`
	DueDay        *int   `json:"due_day"`
	DueHour       *int   `json:"due_hour"`
	DueMinute     *int   `json:"due_minute"`
	DueMonth      *int   `json:"due_month"`
	QuarterOffset *int   `json:"quarter_offset"`
	SkipQuarter   bool   `json:"skip_quarter"`
	Quarters      string `json:"quarters"`
	TaxPeriodType string `json:"tax_period_type"`
	Optional      bool   `json:"optional"`
	CreatedAt     string `json:"created_at"`
}

// --- Interface ---

type DeclarationConfigService interface {
	List(ctx context.Context, includeDisabled bool) ([]DeclarationConfigResponse, error)
	Get(ctx context.Context, id string) (DeclarationConfigResponse, error)
	Create(ctx context.Context, req CreateDeclarationConfigRequest) (DeclarationConfigResponse, error)
	Update(ctx context.Context, id string, req UpdateDeclarationConfigRequest) (DeclarationConfigResponse, error)
	// Delete removes an unreferenced rule; a rule that already generated tax
	// returns is disabled instead so existing instances keep their catalog row.
	Delete(ctx context.Context, id string) error
}

type declarationConfigService struct {
	ruleRepo      repository.DeclarationRuleRepository
	taxReturnRepo repository.TaxReturnRepository
}

func NewDeclarationConfigService(ruleRepo repository.DeclarationRuleRepository, taxReturnRepo repository.TaxReturnRepository) DeclarationConfigService {
	return &declarationConfigService{ruleRepo: ruleRepo, taxReturnRepo: taxReturnRepo}
}

// --- Implementation ---

func (s *declarationConfigService) List(ctx context.Context, includeDisabled bool) ([]DeclarationConfigResponse, error) {
	rules, err := s.ruleRepo.List(ctx, includeDisabled)
	if err != nil {
		return nil, fmt.Errorf("failed to list declaration configs: %w", err)
	}

	res := make([]DeclarationConfigResponse, 0, len(rules))
	for _, r := range rules {
		res = append(res, toDeclarationConfigResponse(r))
	}
	return res, nil
}

func (s *declarationConfigService) Get(ctx context.Context, id string) (DeclarationConfigResponse, error) {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return DeclarationConfigResponse{}, fmt.Errorf("%w: invalid declaration config id", model.ErrInvalidInput)
	}

	rule, err := s.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		return DeclarationConfigResponse{}, err
	}
	return toDeclarationConfigResponse(*rule), nil
}

func (s *declarationConfigService) Create(ctx context.Context, req CreateDeclarationConfigRequest) (DeclarationConfigResponse, error) {
	rule := model.DeclarationRule{
		Type:          req.Type,
		Frequency:     req.Frequency,
		Enabled:       true,
		DueDay:        req.DueDay,
		DueHour:       req.DueHour,
		DueMinute:     req.DueMinute,
		DueMonth:      req.DueMonth,
		QuarterOffset: req.QuarterOffset,
		SkipQuarter:   req.SkipQuarter,
		Quarters:      req.Quarters,
		TaxPeriodType: req.TaxPeriodType,
		Optional:      req.Optional,
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	if rule.TaxPeriodType == "" {
		rule.TaxPeriodType = model.TaxPeriodNormal
	}

	if err := schedule.ValidateRule(rule); err != nil {
		return DeclarationConfigResponse{}, err
	}

	if err := s.ruleRepo.Create(ctx, &rule); err != nil {
		return DeclarationConfigResponse{}, err
	}
	return toDeclarationConfigResponse(rule), nil
}

func (s *declarationConfigService) Update(ctx context.Context, id string, req UpdateDeclarationConfigRequest) (DeclarationConfigResponse, error) {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return DeclarationConfigResponse{}, fmt.Errorf("%w: invalid declaration config id", model.ErrInvalidInput)
	}

	rule, err := s.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		return DeclarationConfigResponse{}, err
	}

	if req.Type != rule.Type {
		// The type is denormalized onto tax returns; renaming a referenced
		// rule would orphan them.
		count, err := s.taxReturnRepo.CountByType(ctx, rule.Type)
		if err != nil {
			return DeclarationConfigResponse{}, fmt.Errorf("failed to count tax returns for %q: %w", rule.Type, err)
		}
		if count > 0 {
			return DeclarationConfigResponse{}, fmt.Errorf("%w: declaration type %q is referenced by %d tax returns and cannot be renamed", model.ErrConflict, rule.Type, count)
		}
	}

	rule.Type = req.Type
	rule.Frequency = req.Frequency
	rule.DueDay = req.DueDay
	rule.DueHour = req.DueHour
	rule.DueMinute = req.DueMinute
	rule.DueMonth = req.DueMonth
	rule.QuarterOffset = req.QuarterOffset
	rule.SkipQuarter = req.SkipQuarter
	rule.Quarters = req.Quarters
	rule.Optional = req.Optional
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	if req.TaxPeriodType != "" {
		rule.TaxPeriodType = req.TaxPeriodType
	}

	if err := schedule.ValidateRule(*rule); err != nil {
		return DeclarationConfigResponse{}, err
	}

	if err := s.ruleRepo.Update(ctx, rule); err != nil {
		return DeclarationConfigResponse{}, fmt.Errorf("failed to update declaration config: %w", err)
	}
	return toDeclarationConfigResponse(*rule), nil
}

func (s *declarationConfigService) Delete(ctx context.Context, id string) error {
	ruleID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid declaration config id", model.ErrInvalidInput)
	}

	rule, err := s.ruleRepo.FindByID(ctx, ruleID)
	if err != nil {
		return err
	}

	count, err := s.taxReturnRepo.CountByType(ctx, rule.Type)
	if err != nil {
		return fmt.Errorf("failed to count tax returns for %q: %w", rule.Type, err)
	}
	if count > 0 {
		rule.Enabled = false
		if err := s.ruleRepo.Update(ctx, rule); err != nil {
			return fmt.Errorf("failed to disable declaration config: %w", err)
		}
		return nil
	}

	return s.ruleRepo.Delete(ctx, ruleID)
}

func toDeclarationConfigResponse(r model.DeclarationRule) DeclarationConfigResponse {
	return DeclarationConfigResponse{
		ID:            r.ID.String(),
		Type:          r.Type,
		Frequency:     r.Frequency,
		Enabled:       r.Enabled,
		DueDay:        r.DueDay,
		DueHour:       r.DueHour,
		DueMinute:     r.DueMinute,
		DueMonth:      r.DueMonth,
		QuarterOffset: r.QuarterOffset,
		SkipQuarter:   r.SkipQuarter,
		Quarters:      r.Quarters,
		TaxPeriodType: r.TaxPeriodType,
		Optional:      r.Optional,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
