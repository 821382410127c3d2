package service

import (
	"context"
	"fmt"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	TaxNumber     string `json:"tax_number"`
	TaxOffice     string `json:"tax_office"`
	City          string `json:"city"`
	NaceCode      string `json:"nace_code"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
}

type UpdateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	TaxNumber     string `json:"tax_number"`
	TaxOffice     string `json:"tax_office"`
	City          string `json:"city"`
	NaceCode      string `json:"nace_code"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	IsActive      *bool  `json:"is_active"`
}

type ReplaceDeclarationSettingsRequest struct {
	Types []string `json:"types" binding:"required"`
}

type CustomerResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TaxNumber     string `json:"tax_number"`
	TaxOffice     string `json:"tax_office"`
	City          string `json:"city"`
	NaceCode      string `json:"nace_code"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsActive      bool   `json:"is_active"`
	CreatedAt     string `json:"created_at"`
}

// --- Interface ---

type CustomerService interface {
	List(ctx context.Context, search string, activeOnly bool, page, limit int) ([]CustomerResponse, int64, error)
	Get(ctx context.Context, id string) (CustomerResponse, error)
	Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error)
	Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error)
	Delete(ctx context.Context, id string) error
	GetDeclarationSettings(ctx context.Context, id string) ([]string, error)
	// ReplaceDeclarationSettings swaps the customer's assigned declaration
	// types. Every type must exist in the rule catalog.
	ReplaceDeclarationSettings(ctx context.Context, id string, req ReplaceDeclarationSettingsRequest) ([]string, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	settingRepo  repository.CustomerSettingRepository
	ruleRepo     repository.DeclarationRuleRepository
	txManager    repository.TransactionManager
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	settingRepo repository.CustomerSettingRepository,
	ruleRepo repository.DeclarationRuleRepository,
	txManager repository.TransactionManager,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		settingRepo:  settingRepo,
		ruleRepo:     ruleRepo,
		txManager:    txManager,
	}
}

// --- Implementation ---

func (s *customerService) List(ctx context.Context, search string, activeOnly bool, page, limit int) ([]CustomerResponse, int64, error) {
	customers, total, err := s.customerRepo.List(ctx, search, activeOnly, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	res := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		res = append(res, toCustomerResponse(c))
	}
	return res, total, nil
}

func (s *customerService) Get(ctx context.Context, id string) (CustomerResponse, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return CustomerResponse{}, fmt.Errorf("%w: invalid customer id", model.ErrInvalidInput)
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return CustomerResponse{}, err
	}
	return toCustomerResponse(*customer), nil
}

func (s *customerService) Create(ctx context.Context, req CreateCustomerRequest) (CustomerResponse, error) {
	customer := model.Customer{
		Name:          req.Name,
		TaxNumber:     req.TaxNumber,
		TaxOffice:     req.TaxOffice,
		City:          req.City,
		NaceCode:      req.NaceCode,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		IsActive:      true,
	}

	if err := s.customerRepo.Create(ctx, &customer); err != nil {
		return CustomerResponse{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) Update(ctx context.Context, id string, req UpdateCustomerRequest) (CustomerResponse, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return CustomerResponse{}, fmt.Errorf("%w: invalid customer id", model.ErrInvalidInput)
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return CustomerResponse{}, err
	}

	customer.Name = req.Name
	customer.TaxNumber = req.TaxNumber
	customer.TaxOffice = req.TaxOffice
	customer.City = req.City
	customer.NaceCode = req.NaceCode
	customer.ContactPerson = req.ContactPerson
	customer.Phone = req.Phone
	customer.Email = req.Email
	if req.IsActive != nil {
		customer.IsActive = *req.IsActive
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return CustomerResponse{}, fmt.Errorf("failed to update customer: %w", err)
	}
	return toCustomerResponse(*customer), nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: invalid customer id", model.ErrInvalidInput)
	}

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, customerID)
}

func (s *customerService) GetDeclarationSettings(ctx context.Context, id string) ([]string, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer id", model.ErrInvalidInput)
	}

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	settings, err := s.settingRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load declaration settings: %w", err)
	}

	types := make([]string, 0, len(settings))
	for _, setting := range settings {
		types = append(types, setting.Type)
	}
	return types, nil
}

func (s *customerService) ReplaceDeclarationSettings(ctx context.Context, id string, req ReplaceDeclarationSettingsRequest) ([]string, error) {
	customerID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer id", model.ErrInvalidInput)
	}

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	types := dedupeStrings(req.Types)
	for _, declarationType := range types {
		if _, err := s.ruleRepo.FindByType(ctx, declarationType); err != nil {
			return nil, err
		}
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		return s.settingRepo.Replace(txCtx, customerID, types)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace declaration settings: %w", err)
	}
	return types, nil
}

func toCustomerResponse(c model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		TaxNumber:     c.TaxNumber,
		TaxOffice:     c.TaxOffice,
		City:          c.City,
		NaceCode:      c.NaceCode,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
