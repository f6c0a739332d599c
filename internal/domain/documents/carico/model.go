// Package carico provides the Carico document: the logistic grouping of
// ordini into one truck load picked up at a single mill.
package carico

import (
	"context"
	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/entity"
	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/documents/ordine"
)

// Stato is the life cycle state of a carico.
type Stato string

const (
	// StatoBozza: created, possibly without trasportatore and pickup date
	StatoBozza Stato = "bozza"

	// StatoAssegnato: trasportatore and pickup date assigned
	StatoAssegnato Stato = "assegnato"

	// StatoRitirato: goods picked up at the mill
	StatoRitirato Stato = "ritirato"

	// StatoConsegnato: delivered to the customers
	StatoConsegnato Stato = "consegnato"
)

// Carico groups 1..N orders sharing the same mulino and tipo into one truck.
type Carico struct {
	entity.Document

	MulinoID id.ID       `db:"mulino_id" json:"mulino_id"`
	Tipo     ordine.Tipo `db:"tipo" json:"tipo"`

	// TrasportatoreID is nil while the carico is a bozza
	TrasportatoreID *id.ID `db:"trasportatore_id" json:"trasportatore_id,omitempty"`

	// DataRitiro is the planned pickup date (nil for bozze)
	DataRitiro *time.Time `db:"data_ritiro" json:"data_ritiro,omitempty"`

	// DataRitiroEffettiva is set on the bozza->ritirato transition
	DataRitiroEffettiva *time.Time `db:"data_ritiro_effettiva" json:"data_ritiro_effettiva,omitempty"`

	// DataConsegna is set on delivery
	DataConsegna *time.Time `db:"data_consegna" json:"data_consegna,omitempty"`

	Stato Stato `db:"stato" json:"stato"`

	// TotaleQuintali is cached and resynchronized whenever orders change
	TotaleQuintali types.Quintali `db:"totale_quintali" json:"totale_quintali"`
}

// NewCarico creates a draft carico for a mill and tipo.
func NewCarico(mulinoID id.ID, tipo ordine.Tipo) *Carico {
	return &Carico{
		Document: entity.NewDocument(),
		MulinoID: mulinoID,
		Tipo:     tipo,
		Stato:    StatoBozza,
	}
}

// Riempimento evaluates the cached total against the hard capacity.
func (c *Carico) Riempimento() Riempimento {
	return EvaluateFillTotale(c.TotaleQuintali, CapienzaMassima)
}

// RiempimentoDettaglio evaluates against the composizione tolerance, used by
// the detail card where an operator is still trimming the load.
func (c *Carico) RiempimentoDettaglio() Riempimento {
	return EvaluateFillTotale(c.TotaleQuintali, SogliaTolleranza)
}

// QuintaliDisponibili returns the residual capacity.
func (c *Carico) QuintaliDisponibili() types.Quintali {
	if c.TotaleQuintali >= CapienzaMassima {
		return 0
	}
	return CapienzaMassima - c.TotaleQuintali
}

// IsModificabile reports whether orders can still be added or removed.
func (c *Carico) IsModificabile() bool {
	return c.Stato == StatoBozza || c.Stato == StatoAssegnato
}

// CanTransition checks the linear state machine
// bozza -> assegnato -> ritirato -> consegnato.
func (c *Carico) CanTransition(to Stato) bool {
	switch c.Stato {
	case StatoBozza:
		return to == StatoAssegnato
	case StatoAssegnato:
		return to == StatoRitirato
	case StatoRitirato:
		return to == StatoConsegnato
	}
	return false
}

// Validate implements entity.Validatable.
func (c *Carico) Validate(ctx context.Context) error {
	if err := c.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(c.MulinoID) {
		return apperror.NewValidation("mulino is required").
			WithDetail("field", "mulino_id")
	}

	switch c.Tipo {
	case ordine.TipoSfuso, ordine.TipoPedane:
	default:
		return apperror.NewValidation("invalid tipo carico").
			WithDetail("field", "tipo").
			WithDetail("value", string(c.Tipo))
	}

	switch c.Stato {
	case StatoBozza, StatoAssegnato, StatoRitirato, StatoConsegnato:
	default:
		return apperror.NewValidation("invalid stato carico").
			WithDetail("field", "stato").
			WithDetail("value", string(c.Stato))
	}

	if c.Stato != StatoBozza {
		if c.TrasportatoreID == nil {
			return apperror.NewValidation("trasportatore is required outside bozza").
				WithDetail("field", "trasportatore_id")
		}
		if c.DataRitiro == nil {
			return apperror.NewValidation("data ritiro is required outside bozza").
				WithDetail("field", "data_ritiro")
		}
	}

	if c.TotaleQuintali.IsNegative() {
		return apperror.NewValidation("totale quintali cannot be negative").
			WithDetail("field", "totale_quintali")
	}

	return nil
}
