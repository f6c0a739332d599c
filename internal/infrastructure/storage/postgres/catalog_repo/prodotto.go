package catalog_repo

import (
	"farina/internal/domain/catalogs/prodotto"
	"farina/internal/infrastructure/storage/postgres"
)

const prodottoTable = "cat_prodotti"

// ProdottoRepo implements prodotto.Repository.
type ProdottoRepo struct {
	*BaseCatalogRepo[*prodotto.Prodotto]
}

// NewProdottoRepo creates a new prodotto repository.
func NewProdottoRepo(txManager *postgres.TxManager) *ProdottoRepo {
	return &ProdottoRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*prodotto.Prodotto](
			txManager,
			prodottoTable,
			postgres.ExtractDBColumns[prodotto.Prodotto](),
			func() *prodotto.Prodotto { return &prodotto.Prodotto{} },
		),
	}
}
