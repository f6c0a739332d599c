package trasportatore

import (
	"farina/internal/domain"
)

// Repository defines the interface for Trasportatore persistence.
type Repository interface {
	domain.CatalogRepository[*Trasportatore]
}
