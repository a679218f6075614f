package handlers

import (
	"github.com/gin-gonic/gin"

	"cartera/internal/core/apperror"
	"cartera/internal/core/id"
	"cartera/internal/domain/ledger"
	"cartera/internal/domain/reports"
	"cartera/internal/infrastructure/http/v1/dto"
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

// GetAgingReport handles GET /reports/aging
func (h *ReportsHandler) GetAgingReport(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AgingReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	filter := reports.AgingReportFilter{
		AsOfDate:    req.AsOfDate,
		Side:        ledger.Side(req.Side),
		OverdueOnly: req.OverdueOnly,
		Limit:       req.Limit,
		Offset:      req.Offset,
	}

	// A bad account filter must fail, not fall back to the unfiltered report.
	for _, aStr := range req.AccountIDs {
		aID, err := id.Parse(aStr)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid account id: "+aStr))
			return
		}
		filter.AccountIDs = append(filter.AccountIDs, aID)
	}

	for _, p := range req.Priorities {
		filter.Priorities = append(filter.Priorities, ledger.Priority(p))
	}

	report, err := h.service.GetAgingReport(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromAgingReport(report))
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/aging", h.GetAgingReport)
}
