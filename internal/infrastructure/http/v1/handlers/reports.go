package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/domain/reports"
	"farina/internal/infrastructure/export"
	"farina/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles the pagamenti and statistiche endpoints.
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

// RibaInScadenza handles GET /pagamenti/riba-in-scadenza.
func (h *ReportsHandler) RibaInScadenza(c *gin.Context) {
	var req dto.RibaInScadenzaRequest
	if !h.BindQuery(c, &req) {
		return
	}

	righe, err := h.service.RibaInScadenza(c.Request.Context(), req.Giorni)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": righe})
}

// Provvigioni handles GET /pagamenti/provvigioni - quarterly commission report.
func (h *ReportsHandler) Provvigioni(c *gin.Context) {
	filter, ok := h.provvigioniFilter(c)
	if !ok {
		return
	}

	riepilogo, err := h.service.ProvvigioniTrimestre(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, riepilogo)
}

// ProvvigioniOrdini handles GET /pagamenti/provvigioni/ordini - the order
// lines behind the report, for the drill-down view.
func (h *ReportsHandler) ProvvigioniOrdini(c *gin.Context) {
	filter, ok := h.provvigioniFilter(c)
	if !ok {
		return
	}

	righe, err := h.service.RigheTrimestre(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": righe})
}

// ProvvigioniExport handles GET /pagamenti/provvigioni/export - xlsx workbook.
func (h *ReportsHandler) ProvvigioniExport(c *gin.Context) {
	ctx := c.Request.Context()

	filter, ok := h.provvigioniFilter(c)
	if !ok {
		return
	}

	riepilogo, err := h.service.ProvvigioniTrimestre(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	righe, err := h.service.RigheTrimestre(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	f, err := export.ProvvigioniXLSX(riepilogo, righe)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("provvigioni_%d_T%d.xlsx", filter.Anno, filter.Trimestre)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		h.Error(c, apperror.NewInternal(err))
	}
}

// Riepilogo handles GET /statistiche/riepilogo - yearly summary.
func (h *ReportsHandler) Riepilogo(c *gin.Context) {
	var req dto.RiepilogoAnnoRequest
	if !h.BindQuery(c, &req) {
		return
	}

	riepilogo, err := h.service.RiepilogoAnno(c.Request.Context(), req.Anno)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, riepilogo)
}

// TopClienti handles GET /statistiche/top-clienti.
func (h *ReportsHandler) TopClienti(c *gin.Context) {
	var req dto.TopClientiRequest
	if !h.BindQuery(c, &req) {
		return
	}

	clienti, err := h.service.TopClienti(c.Request.Context(), req.Anno, req.Limite)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": clienti})
}

func (h *ReportsHandler) provvigioniFilter(c *gin.Context) (reports.ProvvigioniFilter, bool) {
	var req dto.ProvvigioniRequest
	if !h.BindQuery(c, &req) {
		return reports.ProvvigioniFilter{}, false
	}

	filter := reports.ProvvigioniFilter{
		Anno:      req.Anno,
		Trimestre: req.Trimestre,
	}
	if req.MulinoID != "" {
		parsed, err := id.Parse(req.MulinoID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid mulino_id"))
			return reports.ProvvigioniFilter{}, false
		}
		filter.MulinoID = &parsed
	}
	return filter, true
}
