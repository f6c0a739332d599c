package carico

import (
	"context"
	"time"

	"farina/internal/core/id"
	"farina/internal/domain"
	"farina/internal/domain/documents/ordine"
)

// Repository defines operations for carico documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Carico) error
	GetByID(ctx context.Context, docID id.ID) (*Carico, error)
	GetByNumero(ctx context.Context, numero string) (*Carico, error)
	Update(ctx context.Context, doc *Carico) error

	// HardDelete removes a carico row. Used when the last orders leave a
	// bozza; orders are detached first.
	HardDelete(ctx context.Context, docID id.ID) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Carico], error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*Carico, error)

	// NextNumero reserves the next sequential carico number for the year.
	NextNumero(ctx context.Context, year int) (int, error)
}

// ListFilter for filtering carichi.
type ListFilter struct {
	domain.ListFilter

	MulinoID        *id.ID
	TrasportatoreID *id.ID
	Tipo            *ordine.Tipo
	Stati           []Stato
	DataRitiroDa    *time.Time
	DataRitiroA     *time.Time
}
