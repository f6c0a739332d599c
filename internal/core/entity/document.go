package entity

import (
	"context"
	"time"

	"farina/internal/core/apperror"
)

// Document is the base type for business transactions.
// Examples: Ordine, Carico.
type Document struct {
	BaseDocument

	// Numero is the document number (auto-generated, unique within type+year)
	Numero string `db:"numero" json:"numero"`

	// Data is the business date of the document
	Data time.Time `db:"data" json:"data"`

	// Note is an optional user comment
	Note string `db:"note" json:"note,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument() Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Data:         time.Now().UTC(),
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Data.IsZero() {
		return apperror.NewValidation("data is required").
			WithDetail("field", "data")
	}
	return nil
}
