package model

import (
	"time"

	"github.com/google/uuid"
)

// Frequency enum constants
const (
	FrequencyMonthly   = "MONTHLY"
	FrequencyQuarterly = "QUARTERLY"
	FrequencyYearly    = "YEARLY"
)

// TaxPeriodType enum constants
const (
	TaxPeriodNormal  = "NORMAL"  // fiscal year runs January-December
	TaxPeriodSpecial = "SPECIAL" // customer-specific fiscal year
)

// DeclarationRule defines one recurring filing obligation (e.g. KDV, Geçici
// Vergi). Timing fields are interpreted according to Frequency; the invalid
// combinations are rejected at create/update time, never coerced.
type DeclarationRule struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Type          string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"type"`
	Frequency     string    `gorm:"type:varchar(20);not null;index" json:"frequency"` // MONTHLY, QUARTERLY, YEARLY
	Enabled       bool      `gorm:"not null;default:true" json:"enabled"`
	DueDay        *int      `gorm:"type:smallint" json:"due_day"`        // day of month the filing is due, clamped to month length
	DueHour       *int      `gorm:"type:smallint" json:"due_hour"`       // hour of day, default 0
	DueMinute     *int      `gorm:"type:smallint" json:"due_minute"`     // minute, default 0
	DueMonth      *int      `gorm:"type:smallint" json:"due_month"`      // YEARLY only: month of the annual due date
	QuarterOffset *int      `gorm:"type:smallint" json:"quarter_offset"` // QUARTERLY only: months after quarter end
	SkipQuarter   bool      `gorm:"not null;default:false" json:"skip_quarter"` // QUARTERLY only: drop the year-end quarter
	Quarters      string    `gorm:"type:varchar(20)" json:"quarters"`           // QUARTERLY only: CSV subset of "1,2,3,4", empty = all
	TaxPeriodType string    `gorm:"type:varchar(20);not null;default:'NORMAL'" json:"tax_period_type"` // NORMAL, SPECIAL
	Optional      bool      `gorm:"not null;default:false" json:"optional"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
