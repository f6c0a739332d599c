package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/domain/composizione"
	"farina/internal/domain/documents/ordine"
	"farina/internal/infrastructure/http/v1/dto"
)

// ComposizioneHandler handles load-composition endpoints.
type ComposizioneHandler struct {
	*BaseHandler
	service *composizione.Service
}

// NewComposizioneHandler creates a new composizione handler.
func NewComposizioneHandler(base *BaseHandler, service *composizione.Service) *ComposizioneHandler {
	return &ComposizioneHandler{
		BaseHandler: base,
		service:     service,
	}
}

// OrdiniDisponibili handles GET /composizione-carichi/ordini-disponibili.
// Open orders grouped by (mulino, tipo).
func (h *ComposizioneHandler) OrdiniDisponibili(c *gin.Context) {
	mulinoID, tipo, ok := h.parseFiltri(c)
	if !ok {
		return
	}

	gruppi, err := h.service.OrdiniDisponibili(c.Request.Context(), mulinoID, tipo)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GruppiResponse{Gruppi: gruppi})
}

// MuliniConOrdini handles GET /composizione-carichi/mulini-con-ordini.
// The grouped view without order detail.
func (h *ComposizioneHandler) MuliniConOrdini(c *gin.Context) {
	mulinoID, tipo, ok := h.parseFiltri(c)
	if !ok {
		return
	}

	gruppi, err := h.service.OrdiniDisponibili(c.Request.Context(), mulinoID, tipo)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MuliniConOrdiniResponse{Mulini: dto.FromGruppi(gruppi)})
}

// Suggerimenti handles GET /composizione-carichi/suggerimenti.
func (h *ComposizioneHandler) Suggerimenti(c *gin.Context) {
	mulinoID, tipo, ok := h.parseFiltri(c)
	if !ok {
		return
	}

	suggerimenti, err := h.service.Suggerimenti(c.Request.Context(), mulinoID, tipo)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuggerimentiResponse{Suggerimenti: suggerimenti})
}

// Crea handles POST /composizione-carichi/crea - confirm a combination into
// a bozza carico.
func (h *ComposizioneHandler) Crea(c *gin.Context) {
	var req dto.CreaCaricoRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ordineIDs, err := dto.ParseIDs(req.OrdineIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.service.Crea(c.Request.Context(), ordineIDs, req.Note)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCarico(doc))
}

func (h *ComposizioneHandler) parseFiltri(c *gin.Context) (*id.ID, *ordine.Tipo, bool) {
	var mulinoID *id.ID
	if v := c.Query("mulino_id"); v != "" {
		parsed, err := id.Parse(v)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid mulino_id"))
			return nil, nil, false
		}
		mulinoID = &parsed
	}

	var tipo *ordine.Tipo
	if v := c.Query("tipo"); v != "" {
		t := ordine.Tipo(v)
		tipo = &t
	}

	return mulinoID, tipo, true
}
