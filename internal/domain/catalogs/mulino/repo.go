package mulino

import (
	"farina/internal/domain"
)

// Repository defines the interface for Mulino persistence.
type Repository interface {
	domain.CatalogRepository[*Mulino]
}
