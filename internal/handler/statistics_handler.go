package handler

import (
	"net/http"
	"strconv"
	"time"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statistics := router.Group("/api/statistics")
	{
		statistics.GET("/compliance", h.GetComplianceSummary)
	}
}

// GetComplianceSummary returns per-status counts of a year's tax returns
// @Summary      Compliance summary
// @Tags         statistics
// @Produce      json
// @Param        year         query  int     false  "Year (default: current year)"
// @Param        customer_id  query  string  false  "Limit to one customer"
// @Success      200  {object}  response.Response
// @Router       /api/statistics/compliance [get]
func (h *StatisticsHandler) GetComplianceSummary(c *gin.Context) {
	year := time.Now().Year()
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid year"))
			return
		}
		year = parsed
	}

	var customerID *uuid.UUID
	if id := c.Query("customer_id"); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid customer id"))
			return
		}
		customerID = &parsed
	}

	summary, err := h.statisticsService.GetComplianceSummary(c.Request.Context(), customerID, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
