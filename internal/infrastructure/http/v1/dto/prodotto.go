package dto

import (
	"farina/internal/core/types"
	"farina/internal/domain/catalogs/prodotto"
)

// CreateProdottoRequest is the request body for creating a prodotto.
type CreateProdottoRequest struct {
	Nome              string                    `json:"nome" binding:"required"`
	Tipologia         prodotto.Tipologia        `json:"tipologia"`
	TipoProvvigione   *prodotto.TipoProvvigione `json:"tipo_provvigione"`
	ValoreProvvigione *types.Money              `json:"valore_provvigione"`
	Note              string                    `json:"note"`
}

// ToEntity converts DTO to domain entity. Commission fields default to the
// standard 3% when omitted.
func (r *CreateProdottoRequest) ToEntity() *prodotto.Prodotto {
	p := prodotto.NewProdotto(r.Nome)
	if r.Tipologia != "" {
		p.Tipologia = r.Tipologia
	}
	if r.TipoProvvigione != nil {
		p.TipoProvvigione = *r.TipoProvvigione
	}
	if r.ValoreProvvigione != nil {
		p.ValoreProvvigione = *r.ValoreProvvigione
	}
	p.Note = r.Note
	return p
}

// UpdateProdottoRequest is the request body for updating a prodotto.
type UpdateProdottoRequest struct {
	Nome              string                   `json:"nome" binding:"required"`
	Tipologia         prodotto.Tipologia       `json:"tipologia" binding:"required"`
	TipoProvvigione   prodotto.TipoProvvigione `json:"tipo_provvigione" binding:"required"`
	ValoreProvvigione types.Money              `json:"valore_provvigione"`
	Note              string                   `json:"note"`
	Version           int                      `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProdottoRequest) ApplyTo(p *prodotto.Prodotto) {
	p.Nome = r.Nome
	p.Tipologia = r.Tipologia
	p.TipoProvvigione = r.TipoProvvigione
	p.ValoreProvvigione = r.ValoreProvvigione
	p.Note = r.Note
	p.Version = r.Version
}

// ProdottoResponse is the response body for a prodotto.
type ProdottoResponse struct {
	ID                string                   `json:"id"`
	Nome              string                   `json:"nome"`
	Tipologia         prodotto.Tipologia       `json:"tipologia"`
	TipoProvvigione   prodotto.TipoProvvigione `json:"tipo_provvigione"`
	ValoreProvvigione types.Money              `json:"valore_provvigione"`
	Note              string                   `json:"note,omitempty"`
	DeletionMark      bool                     `json:"deletion_mark"`
	Version           int                      `json:"version"`
}

// FromProdotto creates response DTO from domain entity.
func FromProdotto(p *prodotto.Prodotto) *ProdottoResponse {
	return &ProdottoResponse{
		ID:                p.ID.String(),
		Nome:              p.Nome,
		Tipologia:         p.Tipologia,
		TipoProvvigione:   p.TipoProvvigione,
		ValoreProvvigione: p.ValoreProvvigione,
		Note:              p.Note,
		DeletionMark:      p.DeletionMark,
		Version:           p.Version,
	}
}
