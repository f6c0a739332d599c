package catalog_repo

import (
	"farina/internal/domain/catalogs/mulino"
	"farina/internal/infrastructure/storage/postgres"
)

const mulinoTable = "cat_mulini"

// MulinoRepo implements mulino.Repository.
type MulinoRepo struct {
	*BaseCatalogRepo[*mulino.Mulino]
}

// NewMulinoRepo creates a new mulino repository.
func NewMulinoRepo(txManager *postgres.TxManager) *MulinoRepo {
	return &MulinoRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*mulino.Mulino](
			txManager,
			mulinoTable,
			postgres.ExtractDBColumns[mulino.Mulino](),
			func() *mulino.Mulino { return &mulino.Mulino{} },
		),
	}
}
