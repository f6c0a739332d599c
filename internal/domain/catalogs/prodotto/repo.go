package prodotto

import (
	"farina/internal/domain"
)

// Repository defines the interface for Prodotto persistence.
type Repository interface {
	domain.CatalogRepository[*Prodotto]
}
