package dto

import (
	"farina/internal/core/types"
	"farina/internal/domain/composizione"
)

// CreaCaricoRequest confirms a suggested combination into a draft carico.
type CreaCaricoRequest struct {
	OrdineIDs []string `json:"ordine_ids" binding:"required,min=1"`
	Note      string   `json:"note"`
}

// GruppiResponse wraps the open orders grouped by (mulino, tipo).
type GruppiResponse struct {
	Gruppi []composizione.Gruppo `json:"gruppi"`
}

// SuggerimentiResponse wraps the proposed combinations.
type SuggerimentiResponse struct {
	Suggerimenti []composizione.Suggerimento `json:"suggerimenti"`
}

// MulinoConOrdini is a group summary without the per-order detail, used to
// pick the mill to compose a load for.
type MulinoConOrdini struct {
	MulinoID       string         `json:"mulino_id"`
	Tipo           string         `json:"tipo"`
	TotaleQuintali types.Quintali `json:"totale_quintali"`
	NumOrdini      int            `json:"num_ordini"`
}

// MuliniConOrdiniResponse wraps the group summaries.
type MuliniConOrdiniResponse struct {
	Mulini []MulinoConOrdini `json:"mulini"`
}

// FromGruppi strips the order detail from the grouped view.
func FromGruppi(gruppi []composizione.Gruppo) []MulinoConOrdini {
	mulini := make([]MulinoConOrdini, len(gruppi))
	for i, g := range gruppi {
		mulini[i] = MulinoConOrdini{
			MulinoID:       g.MulinoID.String(),
			Tipo:           string(g.Tipo),
			TotaleQuintali: g.TotaleQuintali,
			NumOrdini:      g.NumOrdini,
		}
	}
	return mulini
}
