package schedule

import (
	"time"

	"backend/internal/model"
)

// Classify derives the display status of a tax return at a given moment.
// Submitted returns stay SUBMITTED regardless of date. The comparison uses
// calendar days, so a return due today is still PENDING until tomorrow.
func Classify(tr model.TaxReturn, now time.Time) string {
	if tr.IsSubmitted {
		return model.StatusSubmitted
	}
	if StartOfDay(now).After(StartOfDay(tr.DueDate)) {
		return model.StatusOverdue
	}
	return model.StatusPending
}

// StartOfDay truncates a time to midnight UTC of its calendar day. List
// queries use it as the overdue cutoff so that database filtering agrees
// with Classify.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
