package repository

import (
	"context"
	"errors"
	"fmt"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeclarationRuleRepository interface {
	Create(ctx context.Context, rule *model.DeclarationRule) error
	Update(ctx context.Context, rule *model.DeclarationRule) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DeclarationRule, error)
	FindByType(ctx context.Context, declarationType string) (*model.DeclarationRule, error)
	List(ctx context.Context, includeDisabled bool) ([]model.DeclarationRule, error)
	ListEnabledByTypes(ctx context.Context, types []string) ([]model.DeclarationRule, error)
}

type declarationRuleRepository struct {
	db *gorm.DB
}

func NewDeclarationRuleRepository(db *gorm.DB) DeclarationRuleRepository {
	return &declarationRuleRepository{db: db}
}

func (r *declarationRuleRepository) Create(ctx context.Context, rule *model.DeclarationRule) error {
	if err := GetDB(ctx, r.db).Create(rule).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("declaration type %q already exists: %w", rule.Type, model.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *declarationRuleRepository) Update(ctx context.Context, rule *model.DeclarationRule) error {
	return GetDB(ctx, r.db).Save(rule).Error
}

func (r *declarationRuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return GetDB(ctx, r.db).Delete(&model.DeclarationRule{}, "id = ?", id).Error
}

func (r *declarationRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.DeclarationRule, error) {
	var rule model.DeclarationRule
	if err := GetDB(ctx, r.db).First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("declaration rule %s: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &rule, nil
}

func (r *declarationRuleRepository) FindByType(ctx context.Context, declarationType string) (*model.DeclarationRule, error) {
	var rule model.DeclarationRule
	if err := GetDB(ctx, r.db).First(&rule, "type = ?", declarationType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("declaration rule %q: %w", declarationType, model.ErrNotFound)
		}
		return nil, err
	}
	return &rule, nil
}

func (r *declarationRuleRepository) List(ctx context.Context, includeDisabled bool) ([]model.DeclarationRule, error) {
	var rules []model.DeclarationRule
	query := GetDB(ctx, r.db).Order("type asc")
	if !includeDisabled {
		query = query.Where("enabled = ?", true)
	}
	if err := query.Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *declarationRuleRepository) ListEnabledByTypes(ctx context.Context, types []string) ([]model.DeclarationRule, error) {
	if len(types) == 0 {
		return nil, nil
	}
	var rules []model.DeclarationRule
	if err := GetDB(ctx, r.db).Where("enabled = ? AND type IN ?", true, types).Order("type asc").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}
