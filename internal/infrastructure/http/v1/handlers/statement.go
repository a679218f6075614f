package handlers

import (
	"github.com/gin-gonic/gin"

	"cartera/internal/core/apperror"
	"cartera/internal/core/id"
	"cartera/internal/domain/cartera"
	"cartera/internal/infrastructure/http/v1/dto"
)

// StatementHandler handles HTTP requests for account statements.
type StatementHandler struct {
	*BaseHandler
	service *cartera.Service
}

// NewStatementHandler creates a new statement handler.
func NewStatementHandler(base *BaseHandler, service *cartera.Service) *StatementHandler {
	return &StatementHandler{
		BaseHandler: base,
		service:     service,
	}
}

// GetClientStatement handles GET /statements/clients/:id
func (h *StatementHandler) GetClientStatement(c *gin.Context) {
	ctx := c.Request.Context()

	clientID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.StatementRequest
	if !h.BindQuery(c, &req) {
		return
	}

	statement, err := h.service.GetClientStatement(ctx, clientID, req.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStatement(statement))
}

// GetProviderStatement handles GET /statements/providers/:id
func (h *StatementHandler) GetProviderStatement(c *gin.Context) {
	ctx := c.Request.Context()

	providerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.StatementRequest
	if !h.BindQuery(c, &req) {
		return
	}

	statement, err := h.service.GetProviderStatement(ctx, providerID, req.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromStatement(statement))
}

// RegisterRoutes registers statement routes.
func (h *StatementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/clients/:id", h.GetClientStatement)
	rg.GET("/providers/:id", h.GetProviderStatement)
}
