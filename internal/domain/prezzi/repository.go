package prezzi

import (
	"context"
	"time"

	"farina/internal/core/id"
	"farina/internal/core/types"
)

// Repository defines persistence for the price history.
type Repository interface {
	// Append inserts a new history row.
	Append(ctx context.Context, p *Prezzo) error

	// Ultimo returns the most recent price for a (cliente, prodotto) pair,
	// regardless of mill. Not-found maps to apperror.CodeNotFound.
	Ultimo(ctx context.Context, clienteID, prodottoID id.ID) (*Prezzo, error)

	// ListByCliente returns the history rows of a customer, newest first,
	// optionally since a cutoff date.
	ListByCliente(ctx context.Context, clienteID id.ID, da *time.Time) ([]Prezzo, error)
}

// Cache is an optional read-through cache for last-price lookups.
// A nil Cache disables caching.
type Cache interface {
	GetUltimo(ctx context.Context, clienteID, prodottoID id.ID) (*types.Money, error)
	SetUltimo(ctx context.Context, clienteID, prodottoID id.ID, prezzo types.Money) error

	// Invalida drops the cached price of a pair after a new row is appended.
	Invalida(ctx context.Context, clienteID, prodottoID id.ID) error
}
