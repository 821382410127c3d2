package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents one client of the accounting office.
type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(255);not null" json:"name"`
	TaxNumber     string         `gorm:"type:varchar(20);index" json:"tax_number"`
	TaxOffice     string         `gorm:"type:varchar(100)" json:"tax_office"`
	City          string         `gorm:"type:varchar(100)" json:"city"`
	NaceCode      string         `gorm:"type:varchar(20)" json:"nace_code"`
	ContactPerson string         `gorm:"type:varchar(255)" json:"contact_person"`
	Phone         string         `gorm:"type:varchar(50)" json:"phone"`
	Email         string         `gorm:"type:varchar(255)" json:"email"`
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// CustomerDeclarationSetting assigns a declaration type to a customer.
// A customer only gets instances generated for assigned types.
type CustomerDeclarationSetting struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_customer_declaration_type" json:"customer_id"`
	Type       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_customer_declaration_type" json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}
