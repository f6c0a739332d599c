// Package ordine provides the Ordine document (ordini cliente con righe prodotto).
package ordine

import (
	"context"

	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/entity"
	"farina/internal/core/id"
	"farina/internal/core/types"
)

// Stato is the legacy order state, kept for the pagamenti views.
type Stato string

const (
	StatoInserito Stato = "inserito"
	StatoRitirato Stato = "ritirato"
)

// StatoLogistico tracks the order through the shipping cycle.
type StatoLogistico string

const (
	// LogisticoAperto: created, not in any carico
	LogisticoAperto StatoLogistico = "aperto"

	// LogisticoInCluster: grouped into a draft carico
	LogisticoInCluster StatoLogistico = "in_cluster"

	// LogisticoInCarico: the carico has a trasportatore assigned
	LogisticoInCarico StatoLogistico = "in_carico"

	// LogisticoSpedito: picked up at the mill
	LogisticoSpedito StatoLogistico = "spedito"
)

// Tipo distinguishes bulk orders from palletized ones.
// A carico only groups orders of one tipo.
type Tipo string

const (
	TipoSfuso  Tipo = "sfuso"
	TipoPedane Tipo = "pedane"
)

// SogliaOrdineGrande is the size, in quintali, at which a single order
// fills a truck by itself and is converted directly into a carico.
var SogliaOrdineGrande = types.NewQuintaliFromInt(280)

// Ordine represents a customer order.
//
// An ordine belongs to at most one carico; CaricoID is nil until the order
// is grouped, and StatoLogistico tracks the shipping cycle.
type Ordine struct {
	entity.Document

	ClienteID id.ID `db:"cliente_id" json:"cliente_id"`

	// Tipo: sfuso o pedane
	Tipo Tipo `db:"tipo" json:"tipo"`

	// DataRitiro is the requested pickup date at the mill
	DataRitiro *time.Time `db:"data_ritiro" json:"data_ritiro,omitempty"`

	// DataIncassoMulino is when the mill collects payment (RIBA orders);
	// derived from DataRitiro, persisted for the pagamenti views.
	DataIncassoMulino *time.Time `db:"data_incasso_mulino" json:"data_incasso_mulino,omitempty"`

	// TrasportatoreID is set for orders shipped outside a carico
	TrasportatoreID *id.ID `db:"trasportatore_id" json:"trasportatore_id,omitempty"`

	// CaricoID references the carico this order is grouped into
	CaricoID *id.ID `db:"carico_id" json:"carico_id,omitempty"`

	Stato          Stato          `db:"stato" json:"stato"`
	StatoLogistico StatoLogistico `db:"stato_logistico" json:"stato_logistico"`

	// EmailInviataIl records when the order summary was mailed to the mill
	EmailInviataIl *time.Time `db:"email_inviata_il" json:"email_inviata_il,omitempty"`

	// Table part
	Righe []Riga `db:"-" json:"righe"`
}

// Riga represents one product line of an order.
type Riga struct {
	RigaID     id.ID `db:"riga_id" json:"riga_id"`
	NumeroRiga int   `db:"numero_riga" json:"numero_riga"`

	ProdottoID id.ID `db:"prodotto_id" json:"prodotto_id"`
	MulinoID   id.ID `db:"mulino_id" json:"mulino_id"`

	// Pedane is the pallet count for tipo=pedane orders
	Pedane *int `db:"pedane" json:"pedane,omitempty"`

	// Quintali is the line weight; for pedane lines it is derived from
	// the cliente's pedana standard
	Quintali types.Quintali `db:"quintali" json:"quintali"`

	PrezzoQuintale types.Money `db:"prezzo_quintale" json:"prezzo_quintale"`
	PrezzoTotale   types.Money `db:"prezzo_totale" json:"prezzo_totale"`
}

// NewOrdine creates a new order for the given customer.
func NewOrdine(clienteID id.ID, tipo Tipo) *Ordine {
	return &Ordine{
		Document:       entity.NewDocument(),
		ClienteID:      clienteID,
		Tipo:           tipo,
		Stato:          StatoInserito,
		StatoLogistico: LogisticoAperto,
		Righe:          make([]Riga, 0),
	}
}

// AddRiga appends a line and computes its total.
func (o *Ordine) AddRiga(prodottoID, mulinoID id.ID, pedane *int, quintali types.Quintali, prezzoQuintale types.Money) {
	riga := Riga{
		RigaID:         id.New(),
		NumeroRiga:     len(o.Righe) + 1,
		ProdottoID:     prodottoID,
		MulinoID:       mulinoID,
		Pedane:         pedane,
		Quintali:       quintali,
		PrezzoQuintale: prezzoQuintale,
		PrezzoTotale:   prezzoQuintale.Mul(quintali.Decimal()),
	}
	o.Righe = append(o.Righe, riga)
}

// TotaleQuintali sums the line weights.
func (o *Ordine) TotaleQuintali() types.Quintali {
	var tot types.Quintali
	for _, r := range o.Righe {
		tot += r.Quintali
	}
	return tot
}

// TotaleImporto sums the line totals.
func (o *Ordine) TotaleImporto() types.Money {
	tot := types.Zero()
	for _, r := range o.Righe {
		tot = tot.Add(r.PrezzoTotale)
	}
	return tot
}

// MulinoPrincipaleID returns the mill holding the largest quintali share
// among the order lines. Nil for an order without lines.
// Used to decide which carico an order is compatible with.
func (o *Ordine) MulinoPrincipaleID() *id.ID {
	if len(o.Righe) == 0 {
		return nil
	}

	perMulino := make(map[id.ID]types.Quintali)
	ordine := make([]id.ID, 0, len(o.Righe))
	for _, r := range o.Righe {
		if _, seen := perMulino[r.MulinoID]; !seen {
			ordine = append(ordine, r.MulinoID)
		}
		perMulino[r.MulinoID] += r.Quintali
	}

	best := ordine[0]
	for _, mid := range ordine[1:] {
		if perMulino[mid] > perMulino[best] {
			best = mid
		}
	}
	return &best
}

// IsAssegnabile reports whether the order can join a carico.
func (o *Ordine) IsAssegnabile() bool {
	return o.CaricoID == nil && o.StatoLogistico == LogisticoAperto
}

// IsOrdineGrande reports whether the order fills a truck by itself.
func (o *Ordine) IsOrdineGrande() bool {
	return o.TotaleQuintali() >= SogliaOrdineGrande
}

// Validate implements entity.Validatable.
func (o *Ordine) Validate(ctx context.Context) error {
	if err := o.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(o.ClienteID) {
		return apperror.NewValidation("cliente is required").
			WithDetail("field", "cliente_id")
	}

	switch o.Tipo {
	case TipoSfuso, TipoPedane:
	default:
		return apperror.NewValidation("invalid tipo ordine").
			WithDetail("field", "tipo").
			WithDetail("value", string(o.Tipo))
	}

	switch o.StatoLogistico {
	case LogisticoAperto, LogisticoInCluster, LogisticoInCarico, LogisticoSpedito:
	default:
		return apperror.NewValidation("invalid stato logistico").
			WithDetail("field", "stato_logistico").
			WithDetail("value", string(o.StatoLogistico))
	}

	if len(o.Righe) == 0 {
		return apperror.NewValidation("at least one riga is required").
			WithDetail("field", "righe")
	}

	for i, r := range o.Righe {
		if id.IsNil(r.ProdottoID) {
			return apperror.NewValidation("prodotto is required").
				WithDetail("field", "righe").
				WithDetail("numero_riga", i+1)
		}
		if id.IsNil(r.MulinoID) {
			return apperror.NewValidation("mulino is required").
				WithDetail("field", "righe").
				WithDetail("numero_riga", i+1)
		}
		if !r.Quintali.IsPositive() {
			return apperror.NewValidation("quintali must be positive").
				WithDetail("field", "righe").
				WithDetail("numero_riga", i+1)
		}
		if r.PrezzoQuintale.IsNegative() {
			return apperror.NewValidation("prezzo quintale cannot be negative").
				WithDetail("field", "righe").
				WithDetail("numero_riga", i+1)
		}
		if o.Tipo == TipoPedane && r.Pedane != nil && *r.Pedane < 0 {
			return apperror.NewValidation("pedane cannot be negative").
				WithDetail("field", "righe").
				WithDetail("numero_riga", i+1)
		}
	}

	return nil
}
