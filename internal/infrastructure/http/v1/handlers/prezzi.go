package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/domain/prezzi"
	"farina/internal/infrastructure/http/v1/dto"
)

// PrezziHandler handles price history endpoints.
type PrezziHandler struct {
	*BaseHandler
	service *prezzi.Service
}

// NewPrezziHandler creates a new prezzi handler.
func NewPrezziHandler(base *BaseHandler, service *prezzi.Service) *PrezziHandler {
	return &PrezziHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Ultimo handles GET /prezzi/ultimo - the last agreed price for a
// (cliente, prodotto) pair, prefetched by the order form.
func (h *PrezziHandler) Ultimo(c *gin.Context) {
	var req dto.UltimoPrezzoRequest
	if !h.BindQuery(c, &req) {
		return
	}

	clienteID, err := id.Parse(req.ClienteID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid cliente_id"))
		return
	}
	prodottoID, err := id.Parse(req.ProdottoID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid prodotto_id"))
		return
	}

	p, err := h.service.Ultimo(c.Request.Context(), clienteID, prodottoID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPrezzo(p))
}

// UltimoPerOrdine handles GET /ordini/ultimo-prezzo/:clienteId/:prodottoId,
// the path form used by the order entry screen.
func (h *PrezziHandler) UltimoPerOrdine(c *gin.Context) {
	clienteID, err := id.Parse(c.Param("clienteId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid cliente id format"))
		return
	}
	prodottoID, err := id.Parse(c.Param("prodottoId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid prodotto id format"))
		return
	}

	p, err := h.service.Ultimo(c.Request.Context(), clienteID, prodottoID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromPrezzo(p))
}

// StoricoCliente handles GET /prezzi/storico/:clienteId - the per-mill price
// history the operator consults while negotiating.
func (h *PrezziHandler) StoricoCliente(c *gin.Context) {
	clienteID, err := id.Parse(c.Param("clienteId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid cliente id format"))
		return
	}

	var da *time.Time
	if v := c.Query("da"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid da, expected YYYY-MM-DD"))
			return
		}
		da = &t
	}

	gruppi, err := h.service.StoricoCliente(c.Request.Context(), clienteID, da)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.StoricoPrezziResponse{
		ClienteID: clienteID.String(),
		Mulini:    gruppi,
	})
}
