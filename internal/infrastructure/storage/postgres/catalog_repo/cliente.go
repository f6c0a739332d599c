package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"farina/internal/core/apperror"
	"farina/internal/domain/catalogs/cliente"
	"farina/internal/infrastructure/storage/postgres"
)

const clienteTable = "cat_clienti"

// ClienteRepo implements cliente.Repository.
type ClienteRepo struct {
	*BaseCatalogRepo[*cliente.Cliente]
}

// NewClienteRepo creates a new cliente repository.
func NewClienteRepo(txManager *postgres.TxManager) *ClienteRepo {
	return &ClienteRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*cliente.Cliente](
			txManager,
			clienteTable,
			postgres.ExtractDBColumns[cliente.Cliente](),
			func() *cliente.Cliente { return &cliente.Cliente{} },
		),
	}
}

// FindByPartitaIVA retrieves a cliente by VAT number.
func (r *ClienteRepo) FindByPartitaIVA(ctx context.Context, partitaIVA string) (*cliente.Cliente, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"partita_iva": partitaIVA}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	c, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("cliente", partitaIVA)
		}
		return nil, err
	}
	return c, nil
}
