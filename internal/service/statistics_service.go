package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"backend/internal/model"
	"backend/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TypeComplianceSummary struct {
	Type      string `json:"type"`
	Total     int    `json:"total"`
	Pending   int    `json:"pending"`
	Submitted int    `json:"submitted"`
	Overdue   int    `json:"overdue"`
}

type ComplianceSummaryResponse struct {
	Year       int                     `json:"year"`
	CustomerID *string                 `json:"customer_id,omitempty"`
	Total      int                     `json:"total"`
	Pending    int                     `json:"pending"`
	Submitted  int                     `json:"submitted"`
	Overdue    int                     `json:"overdue"`
	ByType     []TypeComplianceSummary `json:"by_type"`
}

type StatisticsService interface {
	GetComplianceSummary(ctx context.Context, customerID *uuid.UUID, year int) (ComplianceSummaryResponse, error)
}

type statisticsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db, now: time.Now}
}

// GetComplianceSummary counts a year's tax returns per status. Status is
// derived with the classifier on the read path, never stored, so the counts
// are always consistent with the current date.
func (s *statisticsService) GetComplianceSummary(ctx context.Context, customerID *uuid.UUID, year int) (ComplianceSummaryResponse, error) {
	query := s.db.WithContext(ctx).Where("year = ?", year)
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var returns []model.TaxReturn
	if err := query.Find(&returns).Error; err != nil {
		return ComplianceSummaryResponse{}, fmt.Errorf("failed to load tax returns: %w", err)
	}

	response := ComplianceSummaryResponse{Year: year}
	if customerID != nil {
		id := customerID.String()
		response.CustomerID = &id
	}

	now := s.now()
	byType := make(map[string]*TypeComplianceSummary)
	for _, tr := range returns {
		summary, ok := byType[tr.Type]
		if !ok {
			summary = &TypeComplianceSummary{Type: tr.Type}
			byType[tr.Type] = summary
		}

		response.Total++
		summary.Total++
		switch schedule.Classify(tr, now) {
		case model.StatusSubmitted:
			response.Submitted++
			summary.Submitted++
		case model.StatusOverdue:
			response.Overdue++
			summary.Overdue++
		default:
			response.Pending++
			summary.Pending++
		}
	}

	response.ByType = make([]TypeComplianceSummary, 0, len(byType))
	for _, summary := range byType {
		response.ByType = append(response.ByType, *summary)
	}
	sort.Slice(response.ByType, func(i, j int) bool {
		return response.ByType[i].Type < response.ByType[j].Type
	})

	return response, nil
}
