package cliente

import (
	"context"

	"farina/internal/domain"
)

// Repository defines the interface for Cliente persistence.
type Repository interface {
	domain.CatalogRepository[*Cliente]

	// FindByPartitaIVA retrieves a cliente by VAT number.
	FindByPartitaIVA(ctx context.Context, partitaIVA string) (*Cliente, error)
}
