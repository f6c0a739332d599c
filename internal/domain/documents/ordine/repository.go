package ordine

import (
	"context"
	"time"

	"farina/internal/core/id"
	"farina/internal/domain"
)

// Repository defines operations for order documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Ordine) error
	GetByID(ctx context.Context, docID id.ID) (*Ordine, error)
	GetByNumero(ctx context.Context, numero string) (*Ordine, error)
	Update(ctx context.Context, doc *Ordine) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]Riga, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Riga) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Ordine], error)

	// ListByCarico returns the orders grouped into a carico, with lines.
	ListByCarico(ctx context.Context, caricoID id.ID) ([]*Ordine, error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*Ordine, error)

	// NextNumero reserves the next sequential order number for the year.
	NextNumero(ctx context.Context, year int) (int, error)
}

// ListFilter for filtering orders.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	ClienteID       *id.ID
	MulinoID        *id.ID
	CaricoID        *id.ID
	Stato           *Stato
	StatoLogistico  *StatoLogistico
	Tipo            *Tipo
	DataDa          *time.Time
	DataA           *time.Time
	SoloAssegnabili bool
}
