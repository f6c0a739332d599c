package handlers

import (
	"github.com/gin-gonic/gin"

	"farina/internal/core/apperror"
	"farina/internal/domain/catalogs/cliente"
	"farina/internal/infrastructure/http/v1/dto"
)

// ClienteHTTPHandler aliases the generic handler for clienti.
type ClienteHTTPHandler struct {
	*CatalogHandler[*cliente.Cliente, dto.CreateClienteRequest, dto.UpdateClienteRequest]
	service *cliente.Service
}

// NewClienteHandler wires the generic catalog handler to the cliente domain.
func NewClienteHandler(base *BaseHandler, service *cliente.Service) *ClienteHTTPHandler {
	config := CatalogHandlerConfig[*cliente.Cliente, dto.CreateClienteRequest, dto.UpdateClienteRequest]{
		Service:    service.CatalogService,
		EntityName: "cliente",
		MapCreateDTO: func(req dto.CreateClienteRequest) *cliente.Cliente {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateClienteRequest, existing *cliente.Cliente) *cliente.Cliente {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *cliente.Cliente) any {
			return dto.FromCliente(entity)
		},
	}

	return &ClienteHTTPHandler{
		CatalogHandler: NewCatalogHandler(base, config),
		service:        service,
	}
}

// ByPartitaIVA handles GET /clienti/partita-iva/:piva.
// Used by the order form to prefill the customer from an invoice.
func (h *ClienteHTTPHandler) ByPartitaIVA(c *gin.Context) {
	piva := c.Param("piva")
	if piva == "" {
		h.Error(c, apperror.NewValidation("partita iva is required"))
		return
	}

	cli, err := h.service.FindByPartitaIVA(c.Request.Context(), piva)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCliente(cli))
}
