package entity

import (
	"context"

	"farina/internal/core/apperror"
)

// Catalog is the base type for reference data (anagrafiche).
// Examples: Clienti, Mulini, Prodotti, Trasportatori.
type Catalog struct {
	BaseCatalog

	// Nome is the display name (ragione sociale for aziende)
	Nome string `db:"nome" json:"nome"`

	// Note is free-form operator notes
	Note string `db:"note" json:"note,omitempty"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(nome string) Catalog {
	return Catalog{
		BaseCatalog: NewBaseCatalog(),
		Nome:        nome,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Nome == "" {
		return apperror.NewValidation("nome is required").
			WithDetail("field", "nome")
	}
	return nil
}
