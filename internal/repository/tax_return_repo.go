package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaxReturnFilter narrows List queries; fields compose conjunctively.
// DueBefore/DueOnOrAfter express the derived status filters against the
// database so that pagination stays consistent with classification.
type TaxReturnFilter struct {
	CustomerID   *uuid.UUID
	Year         *int
	Month        *int
	Type         string
	IsSubmitted  *bool
	DueBefore    *time.Time
	DueOnOrAfter *time.Time
}

type TaxReturnRepository interface {
	// Upsert inserts the return unless one already exists for the same
	// (customer_id, type, period); in that case the existing row is loaded
	// into tr and created is false. The unique index closes the race
	// between concurrent generation calls.
	Upsert(ctx context.Context, tr *model.TaxReturn) (created bool, err error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.TaxReturn, error)
	FindByKey(ctx context.Context, customerID uuid.UUID, declarationType, period string) (*model.TaxReturn, error)
	Update(ctx context.Context, tr *model.TaxReturn) error
	List(ctx context.Context, filter TaxReturnFilter, page, limit int) ([]model.TaxReturn, int64, error)
	CountByType(ctx context.Context, declarationType string) (int64, error)
}

type taxReturnRepository struct {
	db *gorm.DB
}

func NewTaxReturnRepository(db *gorm.DB) TaxReturnRepository {
	return &taxReturnRepository{db: db}
}

func (r *taxReturnRepository) Upsert(ctx context.Context, tr *model.TaxReturn) (bool, error) {
	res := GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "type"}, {Name: "period"}},
		DoNothing: true,
	}).Create(tr)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			// Only reachable when the schema lost its unique index; surface
			// it loudly instead of quietly materializing twice.
			return false, fmt.Errorf("tax return %s/%s/%s: %w", tr.CustomerID, tr.Type, tr.Period, model.ErrDuplicateInstance)
		}
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		existing, err := r.FindByKey(ctx, tr.CustomerID, tr.Type, tr.Period)
		if err != nil {
			return false, err
		}
		*tr = *existing
		return false, nil
	}
	return true, nil
}

func (r *taxReturnRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TaxReturn, error) {
	var tr model.TaxReturn
	if err := GetDB(ctx, r.db).First(&tr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tax return %s: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &tr, nil
}

func (r *taxReturnRepository) FindByKey(ctx context.Context, customerID uuid.UUID, declarationType, period string) (*model.TaxReturn, error) {
	var tr model.TaxReturn
	err := GetDB(ctx, r.db).
		First(&tr, "customer_id = ? AND type = ? AND period = ?", customerID, declarationType, period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tax return %s/%s/%s: %w", customerID, declarationType, period, model.ErrNotFound)
		}
		return nil, err
	}
	return &tr, nil
}

func (r *taxReturnRepository) Update(ctx context.Context, tr *model.TaxReturn) error {
	return GetDB(ctx, r.db).Save(tr).Error
}

func (r *taxReturnRepository) List(ctx context.Context, filter TaxReturnFilter, page, limit int) ([]model.TaxReturn, int64, error) {
	var returns []model.TaxReturn
	var total int64

	db := GetDB(ctx, r.db)
	query := db.Model(&model.TaxReturn{})
	query = applyTaxReturnFilter(query, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	fetch := applyTaxReturnFilter(db.Preload("Customer"), filter)
	offset := (page - 1) * limit
	if err := fetch.Order("due_date asc, type asc").Offset(offset).Limit(limit).Find(&returns).Error; err != nil {
		return nil, 0, err
	}

	return returns, total, nil
}

func (r *taxReturnRepository) CountByType(ctx context.Context, declarationType string) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.TaxReturn{}).Where("type = ?", declarationType).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func applyTaxReturnFilter(query *gorm.DB, filter TaxReturnFilter) *gorm.DB {
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IsSubmitted != nil {
		query = query.Where("is_submitted = ?", *filter.IsSubmitted)
	}
	if filter.DueBefore != nil {
		query = query.Where("due_date < ?", *filter.DueBefore)
	}
	if filter.DueOnOrAfter != nil {
		query = query.Where("due_date >= ?", *filter.DueOnOrAfter)
	}
	return query
}
