package schedule

import (
	"fmt"

	"backend/internal/model"
)

// ValidateRule rejects inconsistent rule definitions before they are stored.
// Timing fields only valid for another frequency are errors, not ignored.
func ValidateRule(r model.DeclarationRule) error {
	switch r.Frequency {
	case model.FrequencyMonthly, model.FrequencyQuarterly, model.FrequencyYearly:
	default:
		return fmt.Errorf("%w: unknown frequency %q", model.ErrInvalidRule, r.Frequency)
	}

	if r.Type == "" {
		return fmt.Errorf("%w: type is required", model.ErrInvalidRule)
	}
	if r.DueDay != nil && (*r.DueDay < 1 || *r.DueDay > 31) {
		return fmt.Errorf("%w: due_day %d out of range 1-31", model.ErrInvalidRule, *r.DueDay)
	}
	if r.DueHour != nil && (*r.DueHour < 0 || *r.DueHour > 23) {
		return fmt.Errorf("%w: due_hour %d out of range 0-23", model.ErrInvalidRule, *r.DueHour)
	}
	if r.DueMinute != nil && (*r.DueMinute < 0 || *r.DueMinute > 59) {
		return fmt.Errorf("%w: due_minute %d out of range 0-59", model.ErrInvalidRule, *r.DueMinute)
	}

	if r.DueMonth != nil {
		if r.Frequency != model.FrequencyYearly {
			return fmt.Errorf("%w: due_month only applies to YEARLY rules", model.ErrInvalidRule)
		}
		if *r.DueMonth < 1 || *r.DueMonth > 12 {
			return fmt.Errorf("%w: due_month %d out of range 1-12", model.ErrInvalidRule, *r.DueMonth)
		}
	}

	if r.QuarterOffset != nil {
		if r.Frequency != model.FrequencyQuarterly {
			return fmt.Errorf("%w: quarter_offset only applies to QUARTERLY rules", model.ErrInvalidRule)
		}
		if *r.QuarterOffset < 1 || *r.QuarterOffset > 3 {
			return fmt.Errorf("%w: quarter_offset %d out of range 1-3", model.ErrInvalidRule, *r.QuarterOffset)
		}
	}
	if r.SkipQuarter && r.Frequency != model.FrequencyQuarterly {
		return fmt.Errorf("%w: skip_quarter only applies to QUARTERLY rules", model.ErrInvalidRule)
	}
	if r.Quarters != "" {
		if r.Frequency != model.FrequencyQuarterly {
			return fmt.Errorf("%w: quarters only applies to QUARTERLY rules", model.ErrInvalidRule)
		}
		if _, err := ParseQuarters(r.Quarters); err != nil {
			return fmt.Errorf("%w: %v", model.ErrInvalidRule, err)
		}
	}

	switch r.TaxPeriodType {
	case "", model.TaxPeriodNormal, model.TaxPeriodSpecial:
	default:
		return fmt.Errorf("%w: unknown tax_period_type %q", model.ErrInvalidRule, r.TaxPeriodType)
	}

	return nil
}
