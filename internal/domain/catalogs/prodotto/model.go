// Package prodotto provides the Prodotto catalog (tipi di farina a listino).
package prodotto

import (
	"context"

	"farina/internal/core/apperror"
	"farina/internal/core/entity"
	"farina/internal/core/types"
)

// Tipologia classifies flour by refinement grade.
type Tipologia string

const (
	TipologiaZero       Tipologia = "0"
	TipologiaDoppioZero Tipologia = "00"
	TipologiaAltro      Tipologia = "altro"
)

// TipoProvvigione defines how the agency commission is computed.
type TipoProvvigione string

const (
	// ProvvigionePercentuale: commissione = quintali * prezzo * (valore / 100)
	ProvvigionePercentuale TipoProvvigione = "percentuale"

	// ProvvigioneFisso: commissione = quintali * valore (euro al quintale)
	ProvvigioneFisso TipoProvvigione = "fisso"
)

// Prodotto represents a flour product sold through the agency.
type Prodotto struct {
	entity.Catalog

	Tipologia Tipologia `db:"tipologia" json:"tipologia"`

	// Commission parameters applied to every riga ordine of this product
	TipoProvvigione   TipoProvvigione `db:"tipo_provvigione" json:"tipo_provvigione"`
	ValoreProvvigione types.Money     `db:"valore_provvigione" json:"valore_provvigione"`
}

// NewProdotto creates a new Prodotto with business defaults
// (tipologia altro, provvigione percentuale 3%).
func NewProdotto(nome string) *Prodotto {
	return &Prodotto{
		Catalog:           entity.NewCatalog(nome),
		Tipologia:         TipologiaAltro,
		TipoProvvigione:   ProvvigionePercentuale,
		ValoreProvvigione: types.MustMoney("3"),
	}
}

// Validate implements entity.Validatable interface.
func (p *Prodotto) Validate(ctx context.Context) error {
	if err := p.Catalog.Validate(ctx); err != nil {
		return err
	}

	switch p.Tipologia {
	case TipologiaZero, TipologiaDoppioZero, TipologiaAltro:
	default:
		return apperror.NewValidation("invalid tipologia").
			WithDetail("field", "tipologia").
			WithDetail("value", string(p.Tipologia))
	}

	switch p.TipoProvvigione {
	case ProvvigionePercentuale, ProvvigioneFisso:
	default:
		return apperror.NewValidation("invalid tipo provvigione").
			WithDetail("field", "tipo_provvigione").
			WithDetail("value", string(p.TipoProvvigione))
	}

	if p.ValoreProvvigione.IsNegative() {
		return apperror.NewValidation("valore provvigione cannot be negative").
			WithDetail("field", "valore_provvigione")
	}

	return nil
}
