package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/reports"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Daily handles GET /reports/daily
func (h *ReportsHandler) Daily(c *gin.Context) {
	report, err := h.service.Daily(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Monthly handles GET /reports/monthly
func (h *ReportsHandler) Monthly(c *gin.Context) {
	report, err := h.service.Monthly(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Range handles GET /reports/range?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportsHandler) Range(c *gin.Context) {
	var req dto.RangeReportRequest
	if !h.BindQuery(c, &req) {
		return
	}

	r, err := reports.ParseDateRange(req.From, req.To)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.service.Range(c.Request.Context(), r)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// Commissions handles GET /reports/commissions
func (h *ReportsHandler) Commissions(c *gin.Context) {
	report, err := h.service.Commissions(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// DailyDetail handles GET /reports/daily-detail
func (h *ReportsHandler) DailyDetail(c *gin.Context) {
	rows, err := h.service.DailyDetail(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(rows))
}

// MonthlyDetail handles GET /reports/monthly-detail
func (h *ReportsHandler) MonthlyDetail(c *gin.Context) {
	rows, err := h.service.MonthlyDetail(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(rows))
}
