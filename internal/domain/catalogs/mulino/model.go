// Package mulino provides the Mulino catalog (anagrafica mulini fornitori).
package mulino

import (
	"context"
	"regexp"

	"farina/internal/core/apperror"
	"farina/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Mulino represents a flour mill the agency sells for.
type Mulino struct {
	entity.Catalog

	// Referente is the contact person at the mill
	Referente *string `db:"referente" json:"referente,omitempty"`

	Telefono  *string `db:"telefono" json:"telefono,omitempty"`
	Email     *string `db:"email" json:"email,omitempty"`
	Indirizzo *string `db:"indirizzo" json:"indirizzo,omitempty"`
}

// NewMulino creates a new Mulino with the required name.
func NewMulino(nome string) *Mulino {
	return &Mulino{
		Catalog: entity.NewCatalog(nome),
	}
}

// Validate implements entity.Validatable interface.
func (m *Mulino) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}

	if m.Email != nil && *m.Email != "" && !emailRE.MatchString(*m.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}
