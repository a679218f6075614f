package handlers

import (
	"github.com/gin-gonic/gin"

	"cartera/internal/core/apperror"
	"cartera/internal/domain/catalogs/provider"
	"cartera/internal/infrastructure/http/v1/dto"
)

// ProviderHTTPHandler is the configured generic handler for the provider catalog.
type ProviderHTTPHandler struct {
	*CatalogHandler[*provider.Provider, dto.CreateProviderRequest, dto.UpdateProviderRequest]
	service *provider.Service
}

// NewProviderHandler wires the generic catalog handler to the provider service.
func NewProviderHandler(base *BaseHandler, service *provider.Service) *ProviderHTTPHandler {
	config := CatalogHandlerConfig[*provider.Provider, dto.CreateProviderRequest, dto.UpdateProviderRequest]{
		Service:    service.CatalogService,
		EntityName: "provider",

		MapCreateDTO: func(req dto.CreateProviderRequest) (*provider.Provider, error) {
			return req.ToEntity(), nil
		},

		MapUpdateDTO: func(req dto.UpdateProviderRequest, existing *provider.Provider) (*provider.Provider, error) {
			req.ApplyTo(existing)
			return existing, nil
		},

		MapToDTO: func(entity *provider.Provider) any {
			return dto.FromProvider(entity)
		},
	}

	return &ProviderHTTPHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// FindByTaxID handles GET /catalog/providers/by-tax-id/:taxId
func (h *ProviderHTTPHandler) FindByTaxID(c *gin.Context) {
	taxID := c.Param("taxId")
	if taxID == "" {
		h.Error(c, apperror.NewValidation("tax id is required"))
		return
	}

	found, err := h.service.FindByTaxID(c.Request.Context(), taxID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromProvider(found))
}
