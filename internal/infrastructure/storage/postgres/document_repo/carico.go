package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"farina/internal/domain"
	"farina/internal/domain/documents/carico"
	"farina/internal/infrastructure/storage/postgres"
)

const carichiTable = "doc_carichi"

// CaricoRepo implements carico.Repository.
type CaricoRepo struct {
	*BaseDocumentRepo[*carico.Carico]
}

// NewCaricoRepo creates a new carico repository.
func NewCaricoRepo(txManager *postgres.TxManager) *CaricoRepo {
	return &CaricoRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*carico.Carico](
			txManager,
			carichiTable,
			postgres.ExtractDBColumns[carico.Carico](),
			func() *carico.Carico { return &carico.Carico{} },
		),
	}
}

// List retrieves carichi with filtering.
func (r *CaricoRepo) List(ctx context.Context, filter carico.ListFilter) (domain.ListResult[*carico.Carico], error) {
	var conds []squirrel.Sqlizer

	if filter.MulinoID != nil {
		conds = append(conds, squirrel.Eq{"mulino_id": *filter.MulinoID})
	}
	if filter.TrasportatoreID != nil {
		conds = append(conds, squirrel.Eq{"trasportatore_id": *filter.TrasportatoreID})
	}
	if filter.Tipo != nil {
		conds = append(conds, squirrel.Eq{"tipo": *filter.Tipo})
	}
	if len(filter.Stati) > 0 {
		conds = append(conds, squirrel.Eq{"stato": filter.Stati})
	}
	if filter.DataRitiroDa != nil {
		conds = append(conds, squirrel.GtOrEq{"data_ritiro": *filter.DataRitiroDa})
	}
	if filter.DataRitiroA != nil {
		conds = append(conds, squirrel.LtOrEq{"data_ritiro": *filter.DataRitiroA})
	}

	return r.ListWhere(ctx, filter.ListFilter, conds)
}
