package dto

import (
	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/documents/carico"
	"farina/internal/domain/documents/ordine"
)

// --- Request DTOs ---

// CreateBozzaRequest groups existing orders into a new draft carico.
type CreateBozzaRequest struct {
	OrdineIDs []string `json:"ordine_ids" binding:"required,min=1"`
	Note      string   `json:"note"`
}

// DaOrdineGrandeRequest converts a truck-sized order straight into a carico.
type DaOrdineGrandeRequest struct {
	OrdineID        string    `json:"ordine_id" binding:"required"`
	TrasportatoreID string    `json:"trasportatore_id" binding:"required"`
	DataRitiro      time.Time `json:"data_ritiro" binding:"required"`
}

// AggiungiOrdiniRequest adds orders to an existing carico.
type AggiungiOrdiniRequest struct {
	OrdineIDs []string `json:"ordine_ids" binding:"required,min=1"`
}

// AssegnaTrasportatoreRequest moves a bozza to assegnato.
type AssegnaTrasportatoreRequest struct {
	TrasportatoreID string    `json:"trasportatore_id" binding:"required"`
	DataRitiro      time.Time `json:"data_ritiro" binding:"required"`
}

// DataEffettivaRequest carries the actual pickup or delivery date.
// When omitted the handler uses the current time.
type DataEffettivaRequest struct {
	Data *time.Time `json:"data"`
}

// ValidaRequest asks for a dry-run validation of an order combination.
type ValidaRequest struct {
	OrdineIDs []string `json:"ordine_ids" binding:"required,min=1"`
}

// ParseIDs converts the string IDs of a request into domain IDs.
func ParseIDs(raw []string) ([]id.ID, error) {
	ids := make([]id.ID, 0, len(raw))
	for _, s := range raw {
		parsed, err := id.Parse(s)
		if err != nil {
			return nil, apperror.NewValidation("invalid ordine id").
				WithDetail("value", s)
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}

// --- Response DTOs ---

// CaricoResponse is the response body for a carico.
type CaricoResponse struct {
	ID                  string             `json:"id"`
	Numero              string             `json:"numero"`
	Data                time.Time          `json:"data"`
	MulinoID            string             `json:"mulino_id"`
	Tipo                ordine.Tipo        `json:"tipo"`
	TrasportatoreID     *string            `json:"trasportatore_id,omitempty"`
	DataRitiro          *time.Time         `json:"data_ritiro,omitempty"`
	DataRitiroEffettiva *time.Time         `json:"data_ritiro_effettiva,omitempty"`
	DataConsegna        *time.Time         `json:"data_consegna,omitempty"`
	Stato               carico.Stato       `json:"stato"`
	TotaleQuintali      types.Quintali     `json:"totale_quintali"`
	QuintaliDisponibili types.Quintali     `json:"quintali_disponibili"`
	Riempimento         carico.Riempimento `json:"riempimento"`
	Note                string             `json:"note,omitempty"`
	DeletionMark        bool               `json:"deletion_mark"`
	Version             int                `json:"version"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// FromCarico creates response DTO from domain entity. Returns nil for a nil
// carico (RimuoviOrdine yields none when the removal deleted the load).
func FromCarico(doc *carico.Carico) *CaricoResponse {
	if doc == nil {
		return nil
	}
	return &CaricoResponse{
		ID:                  doc.ID.String(),
		Numero:              doc.Numero,
		Data:                doc.Data,
		MulinoID:            doc.MulinoID.String(),
		Tipo:                doc.Tipo,
		TrasportatoreID:     idToString(doc.TrasportatoreID),
		DataRitiro:          doc.DataRitiro,
		DataRitiroEffettiva: doc.DataRitiroEffettiva,
		DataConsegna:        doc.DataConsegna,
		Stato:               doc.Stato,
		TotaleQuintali:      doc.TotaleQuintali,
		QuintaliDisponibili: doc.QuintaliDisponibili(),
		Riempimento:         doc.Riempimento(),
		Note:                doc.Note,
		DeletionMark:        doc.DeletionMark,
		Version:             doc.Version,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
}

// CaricoDettaglioResponse is the carico with its grouped orders.
type CaricoDettaglioResponse struct {
	CaricoResponse
	Ordini []*OrdineResponse `json:"ordini"`
}

// FromCaricoConOrdini creates the detail response.
func FromCaricoConOrdini(doc *carico.Carico, ordini []*ordine.Ordine) *CaricoDettaglioResponse {
	resp := &CaricoDettaglioResponse{
		CaricoResponse: *FromCarico(doc),
		Ordini:         make([]*OrdineResponse, len(ordini)),
	}
	// The detail card shows fill against the composizione tolerance.
	resp.Riempimento = doc.RiempimentoDettaglio()
	for i, o := range ordini {
		resp.Ordini[i] = FromOrdine(o)
	}
	return resp
}
