package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"farina/internal/core/id"
	"farina/internal/domain"
	"farina/internal/domain/documents/ordine"
	"farina/internal/infrastructure/storage/postgres"
)

const (
	ordiniTable      = "doc_ordini"
	ordineRigheTable = "doc_ordine_righe"
)

// OrdineRepo implements ordine.Repository.
type OrdineRepo struct {
	*BaseDocumentRepo[*ordine.Ordine]
}

// NewOrdineRepo creates a new order repository.
func NewOrdineRepo(txManager *postgres.TxManager) *OrdineRepo {
	return &OrdineRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*ordine.Ordine](
			txManager,
			ordiniTable,
			postgres.ExtractDBColumns[ordine.Ordine](),
			func() *ordine.Ordine { return &ordine.Ordine{} },
		),
	}
}

// GetLines retrieves righe for an order.
func (r *OrdineRepo) GetLines(ctx context.Context, docID id.ID) ([]ordine.Riga, error) {
	q := r.Builder().
		Select(
			"riga_id", "numero_riga", "prodotto_id", "mulino_id",
			"pedane", "quintali", "prezzo_quintale", "prezzo_totale",
		).
		From(ordineRigheTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("numero_riga")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []ordine.Riga
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves righe for an order (delete existing + insert new).
func (r *OrdineRepo) SaveLines(ctx context.Context, docID id.ID, lines []ordine.Riga) error {
	querier := r.Querier(ctx)

	// Delete existing lines
	deleteSQL := "DELETE FROM " + ordineRigheTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(ordineRigheTable).
		Columns(
			"riga_id", "document_id", "numero_riga", "prodotto_id", "mulino_id",
			"pedane", "quintali", "prezzo_quintale", "prezzo_totale",
		)

	for _, line := range lines {
		q = q.Values(
			line.RigaID, docID, line.NumeroRiga, line.ProdottoID, line.MulinoID,
			line.Pedane, line.Quintali, line.PrezzoQuintale, line.PrezzoTotale,
		)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// List retrieves orders with filtering.
func (r *OrdineRepo) List(ctx context.Context, filter ordine.ListFilter) (domain.ListResult[*ordine.Ordine], error) {
	var conds []squirrel.Sqlizer

	if filter.ClienteID != nil {
		conds = append(conds, squirrel.Eq{"cliente_id": *filter.ClienteID})
	}
	if filter.CaricoID != nil {
		conds = append(conds, squirrel.Eq{"carico_id": *filter.CaricoID})
	}
	if filter.Stato != nil {
		conds = append(conds, squirrel.Eq{"stato": *filter.Stato})
	}
	if filter.StatoLogistico != nil {
		conds = append(conds, squirrel.Eq{"stato_logistico": *filter.StatoLogistico})
	}
	if filter.Tipo != nil {
		conds = append(conds, squirrel.Eq{"tipo": *filter.Tipo})
	}
	if filter.DataDa != nil {
		conds = append(conds, squirrel.GtOrEq{"data": *filter.DataDa})
	}
	if filter.DataA != nil {
		conds = append(conds, squirrel.LtOrEq{"data": *filter.DataA})
	}
	if filter.SoloAssegnabili {
		conds = append(conds,
			squirrel.Eq{"carico_id": nil},
			squirrel.Eq{"stato_logistico": ordine.LogisticoAperto},
		)
	}
	if filter.MulinoID != nil {
		// The mill lives on the righe, not on the order head.
		conds = append(conds, squirrel.Expr(
			"EXISTS (SELECT 1 FROM "+ordineRigheTable+" rg WHERE rg.document_id = "+ordiniTable+".id AND rg.mulino_id = ?)",
			*filter.MulinoID,
		))
	}

	return r.ListWhere(ctx, filter.ListFilter, conds)
}

// ListByCarico returns the orders grouped into a carico, with lines loaded.
func (r *OrdineRepo) ListByCarico(ctx context.Context, caricoID id.ID) ([]*ordine.Ordine, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"carico_id": caricoID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("data", "numero")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var docs []*ordine.Ordine
	if err := pgxscan.Select(ctx, r.Querier(ctx), &docs, sql, args...); err != nil {
		return nil, fmt.Errorf("list by carico: %w", err)
	}

	for _, doc := range docs {
		lines, err := r.GetLines(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		doc.Righe = lines
	}

	return docs, nil
}
