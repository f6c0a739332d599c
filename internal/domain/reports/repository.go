package reports

import (
	"context"
	"time"

	"farina/internal/core/id"
)

// Repository defines report data access interface.
type Repository interface {
	// Commission rows: order lines joined with customer, mill and product,
	// selected by data_incasso_mulino range.
	RigheProvvigione(ctx context.Context, da, a time.Time, mulinoID *id.ID) ([]RigaProvvigione, error)

	// RIBA orders with a payment date on or before the given deadline,
	// pickup already done but payment date not yet passed.
	OrdiniRibaInScadenza(ctx context.Context, entro time.Time) ([]RibaInScadenza, error)

	// Yearly statistics
	RiepilogoMensile(ctx context.Context, anno int) ([]MeseRiepilogo, error)
	CarichiConsegnati(ctx context.Context, anno int) (int, error)
	TopClienti(ctx context.Context, anno, limite int) ([]TopCliente, error)
}
