package schedule

import (
	"time"

	"backend/internal/model"
)

// GeneratePeriods enumerates the reporting periods of a rule whose resolved
// due dates fall within [windowStart, windowEnd). Candidates are filtered by
// due date, not by the period's nominal year: a Q4 period due the following
// February belongs to a window in that following year. Disabled rules yield
// nothing.
func GeneratePeriods(rule model.DeclarationRule, windowStart, windowEnd time.Time) []Period {
	if !rule.Enabled || !windowEnd.After(windowStart) {
		return nil
	}

	var periods []Period
	emit := func(p Period) {
		due := ResolveDueDate(rule, p)
		if !due.Before(windowStart) && due.Before(windowEnd) {
			periods = append(periods, p)
		}
	}

	switch rule.Frequency {
	case model.FrequencyMonthly:
		// Due dates trail the reported month by one month, so start candidate
		// months a little before the window.
		first := time.Date(windowStart.Year(), windowStart.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -2, 0)
		for m := first; m.Before(windowEnd); m = m.AddDate(0, 1, 0) {
			emit(MonthlyPeriod(m.Year(), m.Month()))
		}
	case model.FrequencyQuarterly:
		allowed := quarterSet(rule.Quarters)
		for year := windowStart.Year() - 1; year <= windowEnd.Year(); year++ {
			for quarter := 1; quarter <= 4; quarter++ {
				if rule.SkipQuarter && quarter == 4 {
					continue
				}
				if allowed != nil && !allowed[quarter] {
					continue
				}
				emit(QuarterlyPeriod(year, quarter))
			}
		}
	case model.FrequencyYearly:
		for year := windowStart.Year() - 1; year <= windowEnd.Year(); year++ {
			emit(YearlyPeriod(year))
		}
	}

	return periods
}

// quarterSet converts the rule's CSV quarter subset into a lookup table.
// Returns nil when the rule applies to all quarters. Invalid input is
// unreachable here because rules are validated before they are stored.
func quarterSet(csv string) map[int]bool {
	quarters, err := ParseQuarters(csv)
	if err != nil || quarters == nil {
		return nil
	}
	set := make(map[int]bool, len(quarters))
	for _, q := range quarters {
		set[q] = true
	}
	return set
}
