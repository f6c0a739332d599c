package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/domain/documents/carico"
	"farina/internal/domain/documents/ordine"
	"farina/internal/infrastructure/http/v1/dto"
)

// CaricoHandler handles truck load endpoints.
type CaricoHandler struct {
	*BaseHandler
	service *carico.Service
}

// NewCaricoHandler creates a new carico handler.
func NewCaricoHandler(base *BaseHandler, service *carico.Service) *CaricoHandler {
	return &CaricoHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /carichi.
func (h *CaricoHandler) List(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	for _, s := range c.QueryArray("stato") {
		filter.Stati = append(filter.Stati, carico.Stato(s))
	}
	h.list(c, filter)
}

// Aperti handles GET /carichi/aperti - loads still being composed or waiting
// for pickup.
func (h *CaricoHandler) Aperti(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	filter.Stati = []carico.Stato{carico.StatoBozza, carico.StatoAssegnato}
	h.list(c, filter)
}

// Bozze handles GET /carichi/bozze.
func (h *CaricoHandler) Bozze(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	filter.Stati = []carico.Stato{carico.StatoBozza}
	h.list(c, filter)
}

func (h *CaricoHandler) parseFilter(c *gin.Context) (carico.ListFilter, bool) {
	filter := carico.ListFilter{ListFilter: h.ParseListFilter(c)}

	if v := c.Query("mulino_id"); v != "" {
		parsed, err := id.Parse(v)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid mulino_id"))
			return filter, false
		}
		filter.MulinoID = &parsed
	}
	if v := c.Query("trasportatore_id"); v != "" {
		parsed, err := id.Parse(v)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid trasportatore_id"))
			return filter, false
		}
		filter.TrasportatoreID = &parsed
	}
	if v := c.Query("tipo"); v != "" {
		t := ordine.Tipo(v)
		filter.Tipo = &t
	}
	return filter, true
}

func (h *CaricoHandler) list(c *gin.Context, filter carico.ListFilter) {
	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromCarico(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Ordini handles GET /carichi/:id/ordini - the orders grouped in the load.
func (h *CaricoHandler) Ordini(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	ordini, err := h.service.Ordini(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.OrdineResponse, len(ordini))
	for i, o := range ordini {
		items[i] = dto.FromOrdine(o)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Get handles GET /carichi/:id - the load with its orders.
func (h *CaricoHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	ordini, err := h.service.Ordini(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCaricoConOrdini(doc, ordini))
}

// CreateBozza handles POST /carichi - group orders into a new draft.
func (h *CaricoHandler) CreateBozza(c *gin.Context) {
	var req dto.CreateBozzaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ordineIDs, err := dto.ParseIDs(req.OrdineIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.service.CreateBozza(c.Request.Context(), ordineIDs, req.Note)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCarico(doc))
}

// DaOrdineGrande handles POST /carichi/da-ordine-grande.
func (h *CaricoHandler) DaOrdineGrande(c *gin.Context) {
	var req dto.DaOrdineGrandeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ordineID, err := id.Parse(req.OrdineID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid ordine_id"))
		return
	}
	trasportatoreID, err := id.Parse(req.TrasportatoreID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid trasportatore_id"))
		return
	}

	doc, err := h.service.CreateDaOrdineGrande(c.Request.Context(), ordineID, trasportatoreID, req.DataRitiro)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCarico(doc))
}

// Valida handles POST /carichi/valida - dry-run validation of a combination.
func (h *CaricoHandler) Valida(c *gin.Context) {
	var req dto.ValidaRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ordineIDs, err := dto.ParseIDs(req.OrdineIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	esito, err := h.service.Valida(c.Request.Context(), ordineIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, esito)
}

// AggiungiOrdini handles POST /carichi/:id/ordini.
func (h *CaricoHandler) AggiungiOrdini(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.AggiungiOrdiniRequest
	if !h.BindJSON(c, &req) {
		return
	}

	ordineIDs, err := dto.ParseIDs(req.OrdineIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.service.AggiungiOrdini(c.Request.Context(), docID, ordineIDs)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCarico(doc))
}

// RimuoviOrdine handles DELETE /carichi/:id/ordini/:ordineId.
func (h *CaricoHandler) RimuoviOrdine(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}
	ordineID, err := id.Parse(c.Param("ordineId"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid ordine id format"))
		return
	}

	doc, err := h.service.RimuoviOrdine(c.Request.Context(), docID, ordineID)
	if err != nil {
		h.Error(c, err)
		return
	}
	if doc == nil {
		// The load was emptied (or left with a single order while still
		// bozza) and deleted; the freed orders are back to aperto.
		h.NoContent(c)
		return
	}

	h.OK(c, dto.FromCarico(doc))
}

// OrdiniDisponibili handles GET /carichi/:id/ordini-disponibili.
// Open orders compatible with this load (same mulino, tipo, residual space).
func (h *CaricoHandler) OrdiniDisponibili(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	ordini, err := h.service.OrdiniDisponibili(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]*dto.OrdineResponse, len(ordini))
	for i, o := range ordini {
		items[i] = dto.FromOrdine(o)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AssegnaTrasportatore handles POST /carichi/:id/assegna-trasportatore.
func (h *CaricoHandler) AssegnaTrasportatore(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.AssegnaTrasportatoreRequest
	if !h.BindJSON(c, &req) {
		return
	}

	trasportatoreID, err := id.Parse(req.TrasportatoreID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid trasportatore_id"))
		return
	}

	doc, err := h.service.AssegnaTrasportatore(c.Request.Context(), docID, trasportatoreID, req.DataRitiro)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCarico(doc))
}

// Ritira handles POST /carichi/:id/ritira.
func (h *CaricoHandler) Ritira(c *gin.Context) {
	h.transizione(c, h.service.Ritira)
}

// Consegna handles POST /carichi/:id/consegna.
func (h *CaricoHandler) Consegna(c *gin.Context) {
	h.transizione(c, h.service.Consegna)
}

// Delete handles DELETE /carichi/:id.
func (h *CaricoHandler) Delete(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// transizione runs a dated state transition, defaulting to now.
func (h *CaricoHandler) transizione(c *gin.Context, fn func(ctx context.Context, docID id.ID, quando time.Time) (*carico.Carico, error)) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.DataEffettivaRequest
	if c.Request.ContentLength > 0 {
		if !h.BindJSON(c, &req) {
			return
		}
	}

	quando := time.Now().UTC()
	if req.Data != nil {
		quando = *req.Data
	}

	doc, err := fn(c.Request.Context(), docID, quando)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromCarico(doc))
}
