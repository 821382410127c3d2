package repository

import (
	"context"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerSettingRepository interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.CustomerDeclarationSetting, error)
	// Replace swaps the customer's full set of assigned declaration types.
	// Run it inside a transaction so readers never observe a half-empty set.
	Replace(ctx context.Context, customerID uuid.UUID, types []string) error
}

type customerSettingRepository struct {
	db *gorm.DB
}

func NewCustomerSettingRepository(db *gorm.DB) CustomerSettingRepository {
	return &customerSettingRepository{db: db}
}

func (r *customerSettingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.CustomerDeclarationSetting, error) {
	var settings []model.CustomerDeclarationSetting
	if err := GetDB(ctx, r.db).Where("customer_id = ?", customerID).Order("type asc").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *customerSettingRepository) Replace(ctx context.Context, customerID uuid.UUID, types []string) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("customer_id = ?", customerID).Delete(&model.CustomerDeclarationSetting{}).Error; err != nil {
		return err
	}
	if len(types) == 0 {
		return nil
	}
	settings := make([]model.CustomerDeclarationSetting, 0, len(types))
	for _, t := range types {
		settings = append(settings, model.CustomerDeclarationSetting{CustomerID: customerID, Type: t})
	}
	return db.Create(&settings).Error
}
