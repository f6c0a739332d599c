package dto

import (
	"time"

	"farina/internal/core/types"
	"farina/internal/domain/prezzi"
)

// UltimoPrezzoRequest asks for the last agreed price of a pair.
type UltimoPrezzoRequest struct {
	ClienteID  string `form:"cliente_id" binding:"required"`
	ProdottoID string `form:"prodotto_id" binding:"required"`
}

// UltimoPrezzoResponse is the last agreed price.
type UltimoPrezzoResponse struct {
	PrezzoQuintale types.Money `json:"prezzo_quintale"`
	MulinoID       string      `json:"mulino_id"`
	Data           time.Time   `json:"data"`
}

// FromPrezzo creates response DTO from a price-history row.
func FromPrezzo(p *prezzi.Prezzo) *UltimoPrezzoResponse {
	return &UltimoPrezzoResponse{
		PrezzoQuintale: p.PrezzoQuintale,
		MulinoID:       p.MulinoID.String(),
		Data:           p.Data,
	}
}

// StoricoPrezziResponse is the per-mill price history of a customer.
type StoricoPrezziResponse struct {
	ClienteID string                `json:"cliente_id"`
	Mulini    []prezzi.GruppoMulino `json:"mulini"`
}
