package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"farina/internal/core/types"
	"farina/internal/domain/catalogs/prodotto"
)

var cento = decimal.NewFromInt(100)

// CalcolaProvvigione computes the commission earned on a single order line.
//
// For tipo percentuale the commission is a percentage of the line amount:
// quintali * prezzo * (valore / 100). For tipo fisso it is a flat rate per
// quintale: quintali * valore. Unknown types earn nothing.
func CalcolaProvvigione(quintali types.Quintali, prezzoQuintale types.Money, tipo prodotto.TipoProvvigione, valore types.Money) types.Money {
	switch tipo {
	case prodotto.ProvvigionePercentuale:
		return quintali.Decimal().Mul(prezzoQuintale).Mul(valore.Div(cento))
	case prodotto.ProvvigioneFisso:
		return quintali.Decimal().Mul(valore)
	default:
		return types.Zero()
	}
}

// Trimestre returns the inclusive date range of a calendar quarter.
// Trimestre 1 covers January through March, and so on.
func Trimestre(anno, trimestre int) (time.Time, time.Time) {
	inizio := time.Date(anno, time.Month((trimestre-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	fine := inizio.AddDate(0, 3, -1)
	return inizio, fine
}
