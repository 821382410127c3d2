package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests. They mirror the
// behavior of the gorm implementations, including the sentinel errors and
// the upsert-by-key semantics.

type fakeTaxReturnRepo struct {
	mu      sync.Mutex
	returns map[uuid.UUID]*model.TaxReturn
}

func newFakeTaxReturnRepo() *fakeTaxReturnRepo {
	return &fakeTaxReturnRepo{returns: make(map[uuid.UUID]*model.TaxReturn)}
}

func (f *fakeTaxReturnRepo) Upsert(_ context.Context, tr *model.TaxReturn) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.returns {
		if existing.CustomerID == tr.CustomerID && existing.Type == tr.Type && existing.Period == tr.Period {
			*tr = *existing
			return false, nil
		}
	}
	tr.ID = uuid.New()
	stored := *tr
	f.returns[tr.ID] = &stored
	return true, nil
}

func (f *fakeTaxReturnRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TaxReturn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tr, ok := f.returns[id]
	if !ok {
		return nil, fmt.Errorf("tax return %s: %w", id, model.ErrNotFound)
	}
	copied := *tr
	return &copied, nil
}

func (f *fakeTaxReturnRepo) FindByKey(_ context.Context, customerID uuid.UUID, declarationType, period string) (*model.TaxReturn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tr := range f.returns {
		if tr.CustomerID == customerID && tr.Type == declarationType && tr.Period == period {
			copied := *tr
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("tax return %s/%s/%s: %w", customerID, declarationType, period, model.ErrNotFound)
}

func (f *fakeTaxReturnRepo) Update(_ context.Context, tr *model.TaxReturn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.returns[tr.ID]; !ok {
		return fmt.Errorf("tax return %s: %w", tr.ID, model.ErrNotFound)
	}
	stored := *tr
	f.returns[tr.ID] = &stored
	return nil
}

func (f *fakeTaxReturnRepo) List(_ context.Context, filter repository.TaxReturnFilter, page, limit int) ([]model.TaxReturn, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []model.TaxReturn
	for _, tr := range f.returns {
		if filter.CustomerID != nil && tr.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.Year != nil && tr.Year != *filter.Year {
			continue
		}
		if filter.Month != nil && (tr.Month == nil || *tr.Month != *filter.Month) {
			continue
		}
		if filter.Type != "" && tr.Type != filter.Type {
			continue
		}
		if filter.IsSubmitted != nil && tr.IsSubmitted != *filter.IsSubmitted {
			continue
		}
		if filter.DueBefore != nil && !tr.DueDate.Before(*filter.DueBefore) {
			continue
		}
		if filter.DueOnOrAfter != nil && tr.DueDate.Before(*filter.DueOnOrAfter) {
			continue
		}
		matched = append(matched, *tr)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].DueDate.Equal(matched[j].DueDate) {
			return matched[i].DueDate.Before(matched[j].DueDate)
		}
		return matched[i].Type < matched[j].Type
	})

	total := int64(len(matched))
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeTaxReturnRepo) CountByType(_ context.Context, declarationType string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, tr := range f.returns {
		if tr.Type == declarationType {
			count++
		}
	}
	return count, nil
}

func (f *fakeTaxReturnRepo) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.returns)
}

type fakeDeclarationRuleRepo struct {
	mu    sync.Mutex
	rules map[uuid.UUID]*model.DeclarationRule
}

func newFakeDeclarationRuleRepo() *fakeDeclarationRuleRepo {
	return &fakeDeclarationRuleRepo{rules: make(map[uuid.UUID]*model.DeclarationRule)}
}

func (f *fakeDeclarationRuleRepo) Create(_ context.Context, rule *model.DeclarationRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.rules {
		if existing.Type == rule.Type {
			return fmt.Errorf("declaration type %q already exists: %w", rule.Type, model.ErrConflict)
		}
	}
	rule.ID = uuid.New()
	stored := *rule
	f.rules[rule.ID] = &stored
	return nil
}

func (f *fakeDeclarationRuleRepo) Update(_ context.Context, rule *model.DeclarationRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rules[rule.ID]; !ok {
		return fmt.Errorf("declaration rule %s: %w", rule.ID, model.ErrNotFound)
	}
	stored := *rule
	f.rules[rule.ID] = &stored
	return nil
}

func (f *fakeDeclarationRuleRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rules, id)
	return nil
}

func (f *fakeDeclarationRuleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DeclarationRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rule, ok := f.rules[id]
	if !ok {
		return nil, fmt.Errorf("declaration rule %s: %w", id, model.ErrNotFound)
	}
	copied := *rule
	return &copied, nil
}

func (f *fakeDeclarationRuleRepo) FindByType(_ context.Context, declarationType string) (*model.DeclarationRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rule := range f.rules {
		if rule.Type == declarationType {
			copied := *rule
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("declaration rule %q: %w", declarationType, model.ErrNotFound)
}

func (f *fakeDeclarationRuleRepo) List(_ context.Context, includeDisabled bool) ([]model.DeclarationRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rules []model.DeclarationRule
	for _, rule := range f.rules {
		if !includeDisabled && !rule.Enabled {
			continue
		}
		rules = append(rules, *rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Type < rules[j].Type })
	return rules, nil
}

func (f *fakeDeclarationRuleRepo) ListEnabledByTypes(_ context.Context, types []string) ([]model.DeclarationRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	var rules []model.DeclarationRule
	for _, rule := range f.rules {
		if rule.Enabled && wanted[rule.Type] {
			rules = append(rules, *rule)
		}
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Type < rules[j].Type })
	return rules, nil
}

type fakeCustomerSettingRepo struct {
	mu       sync.Mutex
	settings map[uuid.UUID][]model.CustomerDeclarationSetting
}

func newFakeCustomerSettingRepo() *fakeCustomerSettingRepo {
	return &fakeCustomerSettingRepo{settings: make(map[uuid.UUID][]model.CustomerDeclarationSetting)}
}

func (f *fakeCustomerSettingRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.CustomerDeclarationSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.CustomerDeclarationSetting(nil), f.settings[customerID]...), nil
}

func (f *fakeCustomerSettingRepo) Replace(_ context.Context, customerID uuid.UUID, types []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	settings := make([]model.CustomerDeclarationSetting, 0, len(types))
	for _, t := range types {
		settings = append(settings, model.CustomerDeclarationSetting{ID: uuid.New(), CustomerID: customerID, Type: t})
	}
	f.settings[customerID] = settings
	return nil
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*model.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *model.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	stored := *customer
	f.customers[customer.ID] = &stored
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *model.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.customers[customer.ID]; !ok {
		return fmt.Errorf("customer %s: %w", customer.ID, model.ErrNotFound)
	}
	stored := *customer
	f.customers[customer.ID] = &stored
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	customer, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, model.ErrNotFound)
	}
	copied := *customer
	return &copied, nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _ string, _ bool, _, _ int) ([]model.Customer, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var customers []model.Customer
	for _, c := range f.customers {
		customers = append(customers, *c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, int64(len(customers)), nil
}

// fakeTxManager runs the callback directly; the fakes have no transactions.
type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}
