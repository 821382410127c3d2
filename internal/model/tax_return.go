package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeclarationStatus enum constants (derived at read time, never persisted)
const (
	StatusPending   = "PENDING"
	StatusSubmitted = "SUBMITTED"
	StatusOverdue   = "OVERDUE"
)

// TaxReturn is one customer's filing obligation for a single reporting
// period. Period uses the persisted string forms "YYYY-MM" (monthly),
// "YYYY-Q#" (quarterly) and "YYYY" (yearly). The composite unique index on
// (customer_id, type, period) is what makes concurrent generation safe.
type TaxReturn struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID    uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_tax_returns_key" json:"customer_id"`
	Customer      *Customer        `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Type          string           `gorm:"type:varchar(100);not null;uniqueIndex:idx_tax_returns_key" json:"type"`
	Period        string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_tax_returns_key" json:"period"`
	Year          int              `gorm:"not null;index" json:"year"`
	Month         *int             `gorm:"type:smallint" json:"month"` // monthly periods only
	DueDate       time.Time        `gorm:"not null;index" json:"due_date"`
	SubmittedDate *time.Time       `json:"submitted_date"`
	IsSubmitted   bool             `gorm:"not null;default:false;index" json:"is_submitted"`
	Amount        *decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"` // declared tax amount, filled on submission
	Notes         string           `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
