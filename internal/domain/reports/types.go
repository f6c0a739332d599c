// Package reports provides commission and sales report services.
package reports

import (
	"time"

	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/catalogs/prodotto"
)

// ProvvigioniFilter selects the quarter to report on. Orders fall into a
// quarter by their data_incasso_mulino, not by the order date.
type ProvvigioniFilter struct {
	Anno      int    `json:"anno"`
	Trimestre int    `json:"trimestre"`
	MulinoID  *id.ID `json:"mulino_id,omitempty"`
}

// RigaProvvigione is a single order line with its commission parameters and
// the computed commission amount.
type RigaProvvigione struct {
	OrdineID          id.ID                    `json:"ordine_id" db:"ordine_id"`
	NumeroOrdine      string                   `json:"numero_ordine" db:"numero_ordine"`
	DataOrdine        time.Time                `json:"data_ordine" db:"data_ordine"`
	DataIncasso       *time.Time               `json:"data_incasso,omitempty" db:"data_incasso"`
	ClienteNome       string                   `json:"cliente_nome" db:"cliente_nome"`
	MulinoID          id.ID                    `json:"mulino_id" db:"mulino_id"`
	MulinoNome        string                   `json:"mulino_nome" db:"mulino_nome"`
	ProdottoID        id.ID                    `json:"prodotto_id" db:"prodotto_id"`
	ProdottoNome      string                   `json:"prodotto_nome" db:"prodotto_nome"`
	TipoProvvigione   prodotto.TipoProvvigione `json:"tipo_provvigione" db:"tipo_provvigione"`
	ValoreProvvigione types.Money              `json:"valore_provvigione" db:"valore_provvigione"`
	Quintali          types.Quintali           `json:"quintali" db:"quintali"`
	PrezzoQuintale    types.Money              `json:"prezzo_quintale" db:"prezzo_quintale"`
	ImportoRiga       types.Money              `json:"importo_riga" db:"importo_riga"`
	Provvigione       types.Money              `json:"provvigione" db:"-"`
}

// ProvvigioneProdotto aggregates commissions by product within a mill.
type ProvvigioneProdotto struct {
	ProdottoID        id.ID                    `json:"prodotto_id"`
	ProdottoNome      string                   `json:"prodotto_nome"`
	TipoProvvigione   prodotto.TipoProvvigione `json:"tipo_provvigione"`
	ValoreProvvigione types.Money              `json:"valore_provvigione"`
	TotaleQuintali    types.Quintali           `json:"totale_quintali"`
	TotaleImporto     types.Money              `json:"totale_importo"`
	TotaleProvvigioni types.Money              `json:"totale_provvigioni"`
	NumRighe          int                      `json:"num_righe"`
}

// ProvvigioneMulino aggregates commissions by mill for a quarter.
type ProvvigioneMulino struct {
	MulinoID          id.ID                 `json:"mulino_id"`
	MulinoNome        string                `json:"mulino_nome"`
	TotaleQuintali    types.Quintali        `json:"totale_quintali"`
	TotaleIncassato   types.Money           `json:"totale_incassato"`
	TotaleProvvigioni types.Money           `json:"totale_provvigioni"`
	NumOrdini         int                   `json:"num_ordini"`
	Prodotti          []ProvvigioneProdotto `json:"prodotti"`
}

// RiepilogoTrimestre is the quarterly commission report.
type RiepilogoTrimestre struct {
	Anno              int                 `json:"anno"`
	Trimestre         int                 `json:"trimestre"`
	DataInizio        time.Time           `json:"data_inizio"`
	DataFine          time.Time           `json:"data_fine"`
	TotaleQuintali    types.Quintali      `json:"totale_quintali"`
	TotaleIncassato   types.Money         `json:"totale_incassato"`
	TotaleProvvigioni types.Money         `json:"totale_provvigioni"`
	Mulini            []ProvvigioneMulino `json:"mulini"`
}

// RibaInScadenza is a RIBA order whose payment date is approaching.
type RibaInScadenza struct {
	OrdineID       id.ID          `json:"ordine_id" db:"ordine_id"`
	NumeroOrdine   string         `json:"numero_ordine" db:"numero_ordine"`
	ClienteID      id.ID          `json:"cliente_id" db:"cliente_id"`
	ClienteNome    string         `json:"cliente_nome" db:"cliente_nome"`
	DataRitiro     *time.Time     `json:"data_ritiro,omitempty" db:"data_ritiro"`
	DataIncasso    time.Time      `json:"data_incasso" db:"data_incasso"`
	TotaleQuintali types.Quintali `json:"totale_quintali" db:"totale_quintali"`
	TotaleImporto  types.Money    `json:"totale_importo" db:"totale_importo"`
	GiorniMancanti int            `json:"giorni_mancanti" db:"-"`
}

// MeseRiepilogo is the per-month slice of the yearly summary.
type MeseRiepilogo struct {
	Mese           int            `json:"mese" db:"mese"`
	TotaleQuintali types.Quintali `json:"totale_quintali" db:"totale_quintali"`
	TotaleImporto  types.Money    `json:"totale_importo" db:"totale_importo"`
	NumOrdini      int            `json:"num_ordini" db:"num_ordini"`
}

// RiepilogoAnno is the yearly statistics summary.
type RiepilogoAnno struct {
	Anno              int             `json:"anno"`
	TotaleQuintali    types.Quintali  `json:"totale_quintali"`
	TotaleImporto     types.Money     `json:"totale_importo"`
	TotaleProvvigioni types.Money     `json:"totale_provvigioni"`
	NumOrdini         int             `json:"num_ordini"`
	CarichiConsegnati int             `json:"carichi_consegnati"`
	Mesi              []MeseRiepilogo `json:"mesi"`
}

// TopCliente ranks a customer by volume sold in a year.
type TopCliente struct {
	ClienteID      id.ID          `json:"cliente_id" db:"cliente_id"`
	ClienteNome    string         `json:"cliente_nome" db:"cliente_nome"`
	TotaleQuintali types.Quintali `json:"totale_quintali" db:"totale_quintali"`
	TotaleImporto  types.Money    `json:"totale_importo" db:"totale_importo"`
	NumOrdini      int            `json:"num_ordini" db:"num_ordini"`
}
