package schedule

import (
	"time"

	"backend/internal/model"
)

// quarterEndMonth maps a quarter index to its last calendar month.
var quarterEndMonth = [5]time.Month{0, time.March, time.June, time.September, time.December}

// ResolveDueDate converts a (rule, period) pair into the concrete due
// date-time in UTC. It is total over rules that pass ValidateRule: a due day
// past the end of the target month clamps to the month's last day, and a
// quarter offset reaching past December rolls into the following year
// (Q4 with offset 2 is due the following February).
func ResolveDueDate(rule model.DeclarationRule, p Period) time.Time {
	day := intOr(rule.DueDay, 1)
	hour := intOr(rule.DueHour, 0)
	minute := intOr(rule.DueMinute, 0)

	switch rule.Frequency {
	case model.FrequencyMonthly:
		// The period identifies the month being reported; the filing is due
		// in the month after it.
		return clampedDate(p.Year, time.Month(p.Month)+1, day, hour, minute)
	case model.FrequencyQuarterly:
		offset := intOr(rule.QuarterOffset, 1)
		return clampedDate(p.Year, quarterEndMonth[p.Quarter]+time.Month(offset), day, hour, minute)
	default: // YEARLY
		month := intOr(rule.DueMonth, 1)
		return clampedDate(p.Year, time.Month(month), day, hour, minute)
	}
}

// clampedDate builds a UTC date-time, normalizing month overflow past
// December into the next year and clamping day to the month's length.
func clampedDate(year int, month time.Month, day, hour, minute int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, minute, 0, 0, time.UTC)
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
