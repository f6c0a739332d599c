package ordine

import (
	"time"

	"farina/internal/core/types"
)

// GiorniIncassoRiba is how long after month end the mill collects a RIBA payment.
const GiorniIncassoRiba = 60

// QuintaliFromPedane converts a pallet count to quintali using the customer's
// standard pallet weight. Returns zero when the customer has no pedana
// standard configured (or it is not positive): the operator must then enter
// quintali by hand.
func QuintaliFromPedane(pedane int, pedanaStandard *types.Quintali) types.Quintali {
	if pedanaStandard == nil || !pedanaStandard.IsPositive() {
		return 0
	}
	if pedane <= 0 {
		return 0
	}
	return pedanaStandard.MulInt(pedane)
}

// DataIncassoRiba computes when the mill collects a RIBA payment:
// the last day of the pickup month plus 60 days.
func DataIncassoRiba(dataRitiro time.Time) time.Time {
	fineMese := time.Date(dataRitiro.Year(), dataRitiro.Month(), 1, 0, 0, 0, 0, dataRitiro.Location()).
		AddDate(0, 1, -1)
	return fineMese.AddDate(0, 0, GiorniIncassoRiba)
}
