package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cartera/internal/core/apperror"
	"cartera/internal/core/id"
	"cartera/internal/domain/registers/movements"
	"cartera/internal/infrastructure/http/v1/dto"
)

// MovementsHandler handles HTTP requests for the movement register.
type MovementsHandler struct {
	*BaseHandler
	service *movements.Service
}

// NewMovementsHandler creates a new movement register handler.
func NewMovementsHandler(base *BaseHandler, service *movements.Service) *MovementsHandler {
	return &MovementsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Record handles POST /registers/movements
func (h *MovementsHandler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RecordMovementsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	records, err := req.ToRecords()
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	if err := h.service.RecordMovements(ctx, records); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromMovementRecords(records))
}

// Replace handles PUT /registers/movements/:recorderId
func (h *MovementsHandler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	recorderID, err := id.Parse(c.Param("recorderId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid recorder id format"))
		return
	}

	var req dto.RecordMovementsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	records, err := req.ToRecords()
	if err != nil {
		h.Error(c, apperror.NewValidation(err.Error()))
		return
	}

	// Rows are keyed by the path recorder; a body addressing a different
	// document must not silently retarget the replace.
	if records[0].RecorderID != recorderID {
		h.Error(c, apperror.NewValidation("recorderId in body does not match path"))
		return
	}

	if err := h.service.ReplaceMovements(ctx, recorderID, records); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromMovementRecords(records))
}

// Reverse handles DELETE /registers/movements/:recorderId
func (h *MovementsHandler) Reverse(c *gin.Context) {
	ctx := c.Request.Context()

	recorderID, err := id.Parse(c.Param("recorderId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid recorder id format"))
		return
	}

	if err := h.service.ReverseMovements(ctx, recorderID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// GetByRecorder handles GET /registers/movements/:recorderId
func (h *MovementsHandler) GetByRecorder(c *gin.Context) {
	ctx := c.Request.Context()

	recorderID, err := id.Parse(c.Param("recorderId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid recorder id format"))
		return
	}

	records, err := h.service.GetByRecorder(ctx, recorderID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"items": dto.FromMovementRecords(records)})
}

// RegisterRoutes registers movement register routes.
func (h *MovementsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Record)
	rg.GET("/:recorderId", h.GetByRecorder)
	rg.PUT("/:recorderId", h.Replace)
	rg.DELETE("/:recorderId", h.Reverse)
}
