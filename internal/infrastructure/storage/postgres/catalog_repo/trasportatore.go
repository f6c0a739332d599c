package catalog_repo

import (
	"farina/internal/domain/catalogs/trasportatore"
	"farina/internal/infrastructure/storage/postgres"
)

const trasportatoreTable = "cat_trasportatori"

// TrasportatoreRepo implements trasportatore.Repository.
type TrasportatoreRepo struct {
	*BaseCatalogRepo[*trasportatore.Trasportatore]
}

// NewTrasportatoreRepo creates a new trasportatore repository.
func NewTrasportatoreRepo(txManager *postgres.TxManager) *TrasportatoreRepo {
	return &TrasportatoreRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*trasportatore.Trasportatore](
			txManager,
			trasportatoreTable,
			postgres.ExtractDBColumns[trasportatore.Trasportatore](),
			func() *trasportatore.Trasportatore { return &trasportatore.Trasportatore{} },
		),
	}
}
