package handler

import (
	"net/http"
	"strconv"
	"time"

	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaxReturnHandler struct {
	taxReturnService service.TaxReturnService
}

func NewTaxReturnHandler(taxReturnService service.TaxReturnService) *TaxReturnHandler {
	return &TaxReturnHandler{taxReturnService: taxReturnService}
}

func (h *TaxReturnHandler) RegisterRoutes(router *gin.RouterGroup) {
	returns := router.Group("/api/tax-returns")
	{
		returns.GET("", h.ListTaxReturns)
		returns.POST("/generate", h.GenerateTaxReturns)
		returns.PATCH("/:id/submission", h.ToggleSubmission)
		returns.PUT("/:id", h.UpdateTaxReturn)
	}
}

type generateTaxReturnsRequest struct {
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	AsOf       string `json:"as_of"` // RFC3339 or YYYY-MM-DD; empty means now
	Year       *int   `json:"year"`  // generate the whole year instead
}

// GenerateTaxReturns materializes due tax returns for a customer
// @Summary      Generate tax returns
// @Description  Materializes the customer's tax return instances for every assigned declaration type. Safe to call repeatedly.
// @Tags         tax-returns
// @Accept       json
// @Produce      json
// @Param        payload  body  generateTaxReturnsRequest  true  "Generation window"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/tax-returns/generate [post]
func (h *TaxReturnHandler) GenerateTaxReturns(c *gin.Context) {
	var req generateTaxReturnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid customer id"))
		return
	}

	var returns []service.TaxReturnResponse
	if req.Year != nil {
		returns, err = h.taxReturnService.GenerateForYear(c.Request.Context(), customerID, *req.Year)
	} else {
		asOf := time.Now()
		if req.AsOf != "" {
			asOf, err = parseTimeParam(req.AsOf)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid as_of date: "+err.Error()))
				return
			}
		}
		returns, err = h.taxReturnService.GenerateDueInstances(c.Request.Context(), customerID, asOf)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, returns))
}

// ListTaxReturns returns tax returns with derived status
// @Summary      List tax returns
// @Tags         tax-returns
// @Produce      json
// @Param        page         query  int     false  "Page number (default: 1)"
// @Param        limit        query  int     false  "Items per page (default: 20)"
// @Param        customer_id  query  string  false  "Filter by customer"
// @Param        year         query  int     false  "Filter by period year"
// @Param        month        query  int     false  "Filter by period month"
// @Param        type         query  string  false  "Filter by declaration type"
// @Param        status       query  string  false  "Filter by status: PENDING, SUBMITTED, OVERDUE"
// @Success      200  {object}  response.Response
// @Router       /api/tax-returns [get]
func (h *TaxReturnHandler) ListTaxReturns(c *gin.Context) {
	params := pagination.Parse(c)

	req := service.ListTaxReturnsRequest{
		CustomerID: c.Query("customer_id"),
		Type:       c.Query("type"),
		Status:     c.Query("status"),
		Page:       params.Page,
		Limit:      params.Limit,
	}
	if y := c.Query("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			req.Year = &year
		}
	}
	if m := c.Query("month"); m != "" {
		if month, err := strconv.Atoi(m); err == nil {
			req.Month = &month
		}
	}

	returns, total, err := h.taxReturnService.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, returns, params.Page, params.Limit, total))
}

// ToggleSubmission marks a tax return submitted or reopens it
// @Summary      Toggle tax return submission
// @Description  Submitting without an explicit date stamps the current time; reopening clears the submitted date.
// @Tags         tax-returns
// @Accept       json
// @Produce      json
// @Param        id       path  string                          true  "Tax return ID"
// @Param        payload  body  service.ToggleSubmissionRequest  true  "Submission payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/tax-returns/{id}/submission [patch]
func (h *TaxReturnHandler) ToggleSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid tax return id"))
		return
	}

	var req service.ToggleSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tr, err := h.taxReturnService.ToggleSubmission(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, tr))
}

// UpdateTaxReturn updates a tax return's notes or declared amount
// @Summary      Update tax return
// @Tags         tax-returns
// @Accept       json
// @Produce      json
// @Param        id       path  string                         true  "Tax return ID"
// @Param        payload  body  service.UpdateTaxReturnRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/tax-returns/{id} [put]
func (h *TaxReturnHandler) UpdateTaxReturn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid tax return id"))
		return
	}

	var req service.UpdateTaxReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	tr, err := h.taxReturnService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, tr))
}

// parseTimeParam accepts RFC3339 or a bare YYYY-MM-DD date.
func parseTimeParam(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
