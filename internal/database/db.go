package database

import (
	"backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM.
// TranslateError maps driver unique-violation errors onto
// gorm.ErrDuplicatedKey so the repositories can classify them.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.Customer{},
		&model.DeclarationRule{},
		&model.CustomerDeclarationSetting{},
		&model.TaxReturn{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
