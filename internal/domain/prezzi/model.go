// Package prezzi keeps the price history of every (cliente, prodotto, mulino)
// combination, fed by order lines. The operator consults it when taking new
// orders over the phone.
package prezzi

import (
	"time"

	"farina/internal/core/id"
	"farina/internal/core/types"
)

// Prezzo is one price-history row.
type Prezzo struct {
	ID id.ID `db:"id" json:"id"`

	ClienteID  id.ID `db:"cliente_id" json:"cliente_id"`
	ProdottoID id.ID `db:"prodotto_id" json:"prodotto_id"`
	MulinoID   id.ID `db:"mulino_id" json:"mulino_id"`

	// PrezzoQuintale as agreed on the order line that produced this row
	PrezzoQuintale types.Money `db:"prezzo_quintale" json:"prezzo_quintale"`

	// Data of the order
	Data time.Time `db:"data" json:"data"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GruppoMulino collects the price rows of one mill, in the view shown to the
// operator while negotiating.
type GruppoMulino struct {
	MulinoID id.ID    `json:"mulino_id"`
	Prezzi   []Prezzo `json:"prezzi"`
}

// GroupByMulino groups rows by mill preserving the first-seen mill order,
// so the most recently used mills stay on top when rows arrive sorted by
// date descending. Returns an empty slice, not nil, for empty input.
func GroupByMulino(rows []Prezzo) []GruppoMulino {
	gruppi := make([]GruppoMulino, 0)
	indice := make(map[id.ID]int)

	for _, r := range rows {
		i, ok := indice[r.MulinoID]
		if !ok {
			i = len(gruppi)
			indice[r.MulinoID] = i
			gruppi = append(gruppi, GruppoMulino{MulinoID: r.MulinoID})
		}
		gruppi[i].Prezzi = append(gruppi[i].Prezzi, r)
	}
	return gruppi
}
