// Package cliente provides the Cliente catalog (anagrafica clienti).
// Clienti are the bakeries and food businesses buying flour through the agency.
package cliente

import (
	"context"
	"regexp"

	"farina/internal/core/apperror"
	"farina/internal/core/entity"
	"farina/internal/core/types"
)

// Pre-compiled regex patterns for validation
var (
	partitaIVARE = regexp.MustCompile(`^\d{11}$`)
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Cliente represents a customer of the trading agency.
type Cliente struct {
	entity.Catalog

	// PartitaIVA is the Italian VAT number (11 digits)
	PartitaIVA *string `db:"partita_iva" json:"partita_iva,omitempty"`

	// Indirizzo, Comune, Provincia describe the delivery address
	Indirizzo *string `db:"indirizzo" json:"indirizzo,omitempty"`
	Comune    *string `db:"comune" json:"comune,omitempty"`
	Provincia *string `db:"provincia" json:"provincia,omitempty"`

	Telefono *string `db:"telefono" json:"telefono,omitempty"`
	Email    *string `db:"email" json:"email,omitempty"`

	// PedanaStandard is the weight of one standard pallet for this customer,
	// in quintali. Nil when the customer only buys sfuso.
	PedanaStandard *types.Quintali `db:"pedana_standard" json:"pedana_standard,omitempty"`

	// Riba indicates the customer pays by RiBa (ricevuta bancaria).
	Riba bool `db:"riba" json:"riba"`
}

// NewCliente creates a new Cliente with the required ragione sociale.
func NewCliente(ragioneSociale string) *Cliente {
	return &Cliente{
		Catalog: entity.NewCatalog(ragioneSociale),
	}
}

// Validate implements entity.Validatable interface.
func (c *Cliente) Validate(ctx context.Context) error {
	// Base catalog validation (nome = ragione sociale)
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}

	if c.PartitaIVA != nil && *c.PartitaIVA != "" && !partitaIVARE.MatchString(*c.PartitaIVA) {
		return apperror.NewValidation("partita IVA must be 11 digits").
			WithDetail("field", "partita_iva")
	}

	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	if c.PedanaStandard != nil && !c.PedanaStandard.IsPositive() {
		return apperror.NewValidation("pedana standard must be positive").
			WithDetail("field", "pedana_standard").
			WithDetail("value", c.PedanaStandard.String())
	}

	return nil
}

// HasPedanaStandard reports whether pallet-based orders can be converted
// to quintali for this customer.
func (c *Cliente) HasPedanaStandard() bool {
	return c.PedanaStandard != nil && c.PedanaStandard.IsPositive()
}
