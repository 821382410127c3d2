package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period is the structured reporting interval a tax return covers. Exactly
// one of Month/Quarter is set for monthly/quarterly periods; both are zero
// for yearly periods. It serializes to the persisted identifier forms
// "YYYY-MM", "YYYY-Q#" and "YYYY", which existing data and importers parse.
type Period struct {
	Year    int
	Quarter int // 1-4, quarterly periods only
	Month   int // 1-12, monthly periods only
}

func MonthlyPeriod(year int, month time.Month) Period {
	return Period{Year: year, Month: int(month)}
}

func QuarterlyPeriod(year, quarter int) Period {
	return Period{Year: year, Quarter: quarter}
}

func YearlyPeriod(year int) Period {
	return Period{Year: year}
}

// String renders the persisted identifier form.
func (p Period) String() string {
	switch {
	case p.Month != 0:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	case p.Quarter != 0:
		return fmt.Sprintf("%04d-Q%d", p.Year, p.Quarter)
	default:
		return fmt.Sprintf("%04d", p.Year)
	}
}

// ParsePeriod parses a persisted period identifier.
func ParsePeriod(s string) (Period, error) {
	switch {
	case len(s) == 4:
		year, err := strconv.Atoi(s)
		if err != nil || year <= 0 {
			return Period{}, fmt.Errorf("invalid yearly period %q", s)
		}
		return YearlyPeriod(year), nil
	case len(s) == 7 && s[4] == '-' && s[5] == 'Q':
		year, err := strconv.Atoi(s[:4])
		if err != nil || year <= 0 {
			return Period{}, fmt.Errorf("invalid quarterly period %q", s)
		}
		quarter, err := strconv.Atoi(s[6:])
		if err != nil || quarter < 1 || quarter > 4 {
			return Period{}, fmt.Errorf("invalid quarterly period %q", s)
		}
		return QuarterlyPeriod(year, quarter), nil
	case len(s) == 7 && s[4] == '-':
		year, err := strconv.Atoi(s[:4])
		if err != nil || year <= 0 {
			return Period{}, fmt.Errorf("invalid monthly period %q", s)
		}
		month, err := strconv.Atoi(s[5:])
		if err != nil || month < 1 || month > 12 {
			return Period{}, fmt.Errorf("invalid monthly period %q", s)
		}
		return MonthlyPeriod(year, time.Month(month)), nil
	default:
		return Period{}, fmt.Errorf("invalid period %q", s)
	}
}

// ParseQuarters parses a CSV quarter subset such as "1,2,3" into a sorted
// set of quarter indices. Empty input means no restriction and returns nil.
func ParseQuarters(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	seen := [5]bool{}
	var quarters []int
	for _, part := range strings.Split(s, ",") {
		q, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || q < 1 || q > 4 {
			return nil, fmt.Errorf("invalid quarter %q", part)
		}
		if !seen[q] {
			seen[q] = true
		}
	}
	for q := 1; q <= 4; q++ {
		if seen[q] {
			quarters = append(quarters, q)
		}
	}
	return quarters, nil
}
