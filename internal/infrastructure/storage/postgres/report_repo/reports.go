// Package report_repo provides PostgreSQL implementations for report repositories.
package report_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"farina/internal/core/id"
	"farina/internal/domain/reports"
	"farina/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// RigheProvvigione returns order lines joined with customer, mill and product
// for orders whose data_incasso_mulino falls in the given range.
func (r *ReportRepo) RigheProvvigione(ctx context.Context, da, a time.Time, mulinoID *id.ID) ([]reports.RigaProvvigione, error) {
	query := `
		SELECT
			o.id as ordine_id,
			o.numero as numero_ordine,
			o.data as data_ordine,
			o.data_incasso_mulino as data_incasso,
			c.nome as cliente_nome,
			rg.mulino_id,
			m.nome as mulino_nome,
			rg.prodotto_id,
			p.nome as prodotto_nome,
			p.tipo_provvigione,
			p.valore_provvigione,
			rg.quintali,
			rg.prezzo_quintale,
			rg.prezzo_totale as importo_riga
		FROM doc_ordine_righe rg
		JOIN doc_ordini o ON o.id = rg.document_id
		JOIN cat_clienti c ON c.id = o.cliente_id
		JOIN cat_mulini m ON m.id = rg.mulino_id
		JOIN cat_prodotti p ON p.id = rg.prodotto_id
		WHERE o.deletion_mark = false
		  AND o.data_incasso_mulino >= $1
		  AND o.data_incasso_mulino <= $2
	`
	args := []any{da, a}

	if mulinoID != nil {
		query += " AND rg.mulino_id = $3"
		args = append(args, *mulinoID)
	}

	query += " ORDER BY m.nome, o.data, o.numero, rg.numero_riga"

	var rows []reports.RigaProvvigione
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("righe provvigione: %w", err)
	}

	return rows, nil
}

// OrdiniRibaInScadenza returns RIBA orders with an upcoming payment date.
func (r *ReportRepo) OrdiniRibaInScadenza(ctx context.Context, entro time.Time) ([]reports.RibaInScadenza, error) {
	query := `
		WITH totali AS (
			SELECT document_id,
			       SUM(quintali) as totale_quintali,
			       SUM(prezzo_totale) as totale_importo
			FROM doc_ordine_righe
			GROUP BY document_id
		)
		SELECT
			o.id as ordine_id,
			o.numero as numero_ordine,
			o.cliente_id,
			c.nome as cliente_nome,
			o.data_ritiro,
			o.data_incasso_mulino as data_incasso,
			COALESCE(t.totale_quintali, 0) as totale_quintali,
			COALESCE(t.totale_importo, 0) as totale_importo
		FROM doc_ordini o
		JOIN cat_clienti c ON c.id = o.cliente_id
		LEFT JOIN totali t ON t.document_id = o.id
		WHERE o.deletion_mark = false
		  AND c.riba = true
		  AND o.data_incasso_mulino IS NOT NULL
		  AND o.data_incasso_mulino >= CURRENT_DATE
		  AND o.data_incasso_mulino <= $1
		ORDER BY o.data_incasso_mulino, o.numero
	`

	var rows []reports.RibaInScadenza
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, query, entro); err != nil {
		return nil, fmt.Errorf("ordini riba in scadenza: %w", err)
	}

	return rows, nil
}

// RiepilogoMensile aggregates quintali, importo and order counts per month.
func (r *ReportRepo) RiepilogoMensile(ctx context.Context, anno int) ([]reports.MeseRiepilogo, error) {
	query := `
		SELECT
			EXTRACT(MONTH FROM o.data)::int as mese,
			COALESCE(SUM(rg.quintali), 0) as totale_quintali,
			COALESCE(SUM(rg.prezzo_totale), 0) as totale_importo,
			COUNT(DISTINCT o.id)::int as num_ordini
		FROM doc_ordini o
		JOIN doc_ordine_righe rg ON rg.document_id = o.id
		WHERE o.deletion_mark = false
		  AND EXTRACT(YEAR FROM o.data) = $1
		GROUP BY EXTRACT(MONTH FROM o.data)
		ORDER BY mese
	`

	var rows []reports.MeseRiepilogo
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, query, anno); err != nil {
		return nil, fmt.Errorf("riepilogo mensile: %w", err)
	}

	return rows, nil
}

// CarichiConsegnati counts delivered truck loads in a year.
func (r *ReportRepo) CarichiConsegnati(ctx context.Context, anno int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM doc_carichi
		WHERE deletion_mark = false
		  AND stato = 'consegnato'
		  AND data_consegna IS NOT NULL
		  AND EXTRACT(YEAR FROM data_consegna) = $1
	`

	var count int
	if err := r.txManager.GetQuerier(ctx).QueryRow(ctx, query, anno).Scan(&count); err != nil {
		return 0, fmt.Errorf("carichi consegnati: %w", err)
	}

	return count, nil
}

// TopClienti ranks customers by quintali sold in a year.
func (r *ReportRepo) TopClienti(ctx context.Context, anno, limite int) ([]reports.TopCliente, error) {
	query := `
		SELECT
			c.id as cliente_id,
			c.nome as cliente_nome,
			COALESCE(SUM(rg.quintali), 0) as totale_quintali,
			COALESCE(SUM(rg.prezzo_totale), 0) as totale_importo,
			COUNT(DISTINCT o.id)::int as num_ordini
		FROM cat_clienti c
		JOIN doc_ordini o ON o.cliente_id = c.id AND o.deletion_mark = false
		JOIN doc_ordine_righe rg ON rg.document_id = o.id
		WHERE EXTRACT(YEAR FROM o.data) = $1
		GROUP BY c.id, c.nome
		ORDER BY SUM(rg.quintali) DESC
		LIMIT $2
	`

	var rows []reports.TopCliente
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, query, anno, limite); err != nil {
		return nil, fmt.Errorf("top clienti: %w", err)
	}

	return rows, nil
}
