package handlers

import (
	"github.com/gin-gonic/gin"

	"cartera/internal/core/apperror"
	"cartera/internal/domain/catalogs/client"
	"cartera/internal/infrastructure/http/v1/dto"
)

// ClientHTTPHandler is the configured generic handler for the client catalog.
type ClientHTTPHandler struct {
	*CatalogHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]
	service *client.Service
}

// NewClientHandler wires the generic catalog handler to the client service.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHTTPHandler {
	config := CatalogHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Service:    service.CatalogService,
		EntityName: "client",

		MapCreateDTO: func(req dto.CreateClientRequest) (*client.Client, error) {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) (*client.Client, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},

		MapToDTO: func(entity *client.Client) any {
			return dto.FromClient(entity)
		},
	}

	return &ClientHTTPHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// FindByTaxID handles GET /catalog/clients/by-tax-id/:taxId
func (h *ClientHTTPHandler) FindByTaxID(c *gin.Context) {
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

	h.OK(c, dto.FromClient(found))
}
