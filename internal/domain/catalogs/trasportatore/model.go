// Package trasportatore provides the Trasportatore catalog (vettori).
package trasportatore

import (
	"context"
	"regexp"

	"farina/internal/core/apperror"
	"farina/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Trasportatore represents a haulage company picking up truck loads at the mills.
type Trasportatore struct {
	entity.Catalog

	Referente *string `db:"referente" json:"referente,omitempty"`
	Telefono  *string `db:"telefono" json:"telefono,omitempty"`
	Email     *string `db:"email" json:"email,omitempty"`

	// Targhe lists the plates of the trucks usually assigned (free text)
	Targhe *string `db:"targhe" json:"targhe,omitempty"`
}

// NewTrasportatore creates a new Trasportatore with the required name.
func NewTrasportatore(nome string) *Trasportatore {
	return &Trasportatore{
		Catalog: entity.NewCatalog(nome),
	}
}

// Validate implements entity.Validatable interface.
func (t *Trasportatore) Validate(ctx context.Context) error {
	if err := t.Catalog.Validate(ctx); err != nil {
		return err
	}

	if t.Email != nil && *t.Email != "" && !emailRE.MatchString(*t.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}
