// Package register_repo provides PostgreSQL implementations for register-style
// storage (append-only history tables).
package register_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/domain/prezzi"
	"farina/internal/infrastructure/storage/postgres"
)

const prezziTable = "reg_prezzi"

// PrezziRepo implements prezzi.Repository.
type PrezziRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewPrezziRepo creates a new price history repository.
func NewPrezziRepo(txManager *postgres.TxManager) *PrezziRepo {
	return &PrezziRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Append inserts a new history row.
func (r *PrezziRepo) Append(ctx context.Context, p *prezzi.Prezzo) error {
	q := r.builder.
		Insert(prezziTable).
		Columns("id", "cliente_id", "prodotto_id", "mulino_id", "prezzo_quintale", "data", "created_at").
		Values(p.ID, p.ClienteID, p.ProdottoID, p.MulinoID, p.PrezzoQuintale, p.Data, p.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txManager.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert prezzo: %w", err)
	}

	return nil
}

// Ultimo returns the most recent price for a (cliente, prodotto) pair.
func (r *PrezziRepo) Ultimo(ctx context.Context, clienteID, prodottoID id.ID) (*prezzi.Prezzo, error) {
	q := r.builder.
		Select("id", "cliente_id", "prodotto_id", "mulino_id", "prezzo_quintale", "data", "created_at").
		From(prezziTable).
		Where(squirrel.Eq{"cliente_id": clienteID}).
		Where(squirrel.Eq{"prodotto_id": prodottoID}).
		OrderBy("data DESC", "created_at DESC").
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p prezzi.Prezzo
	if err := pgxscan.Get(ctx, r.txManager.GetQuerier(ctx), &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("prezzo", clienteID.String())
		}
		return nil, fmt.Errorf("get ultimo prezzo: %w", err)
	}

	return &p, nil
}

// ListByCliente returns the history rows of a customer, newest first.
func (r *PrezziRepo) ListByCliente(ctx context.Context, clienteID id.ID, da *time.Time) ([]prezzi.Prezzo, error) {
	q := r.builder.
		Select("id", "cliente_id", "prodotto_id", "mulino_id", "prezzo_quintale", "data", "created_at").
		From(prezziTable).
		Where(squirrel.Eq{"cliente_id": clienteID}).
		OrderBy("data DESC", "created_at DESC")

	if da != nil {
		q = q.Where(squirrel.GtOrEq{"data": *da})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []prezzi.Prezzo
	if err := pgxscan.Select(ctx, r.txManager.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list prezzi: %w", err)
	}

	return rows, nil
}
