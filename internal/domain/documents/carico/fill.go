package carico

import (
	"farina/internal/core/types"
)

// Capacity thresholds, in quintali. The truck holds 300q; a load below 280q
// is not worth the trip. Composition suggestions tolerate up to 320q because
// the operator can still trim a riga before confirming, while persisted
// loads are hard-capped at 300q. The two limits are intentionally distinct.
var (
	// CapienzaMassima is the hard cap of a persisted carico.
	CapienzaMassima = types.NewQuintaliFromInt(300)

	// SogliaMinima is the minimum total for a carico to leave bozza.
	SogliaMinima = types.NewQuintaliFromInt(280)

	// SogliaTolleranza is the upper bound accepted by the composizione
	// suggestion views before an operator trims the load.
	SogliaTolleranza = types.NewQuintaliFromInt(320)
)

// StatoRiempimento classifies the fill level of a load.
type StatoRiempimento string

const (
	// RiempimentoParziale: below the minimum threshold
	RiempimentoParziale StatoRiempimento = "parziale"

	// RiempimentoPronto: within [SogliaMinima, soglia] and ready to go
	RiempimentoPronto StatoRiempimento = "pronto"

	// RiempimentoEccesso: strictly above the given threshold
	RiempimentoEccesso StatoRiempimento = "eccesso"
)

// Riempimento is the fill evaluation of a load.
type Riempimento struct {
	Totale types.Quintali `json:"totale"`

	// Percentuale of the truck capacity, capped at 100.
	Percentuale int `json:"percentuale"`

	Stato StatoRiempimento `json:"stato"`
}

// EvaluateFill computes the fill summary for a set of order weights against
// the given over-capacity threshold (CapienzaMassima for list rows and
// persisted loads, SogliaTolleranza for the composizione detail card).
// An empty set evaluates to zero, parziale.
func EvaluateFill(quintali []types.Quintali, soglia types.Quintali) Riempimento {
	var totale types.Quintali
	for _, q := range quintali {
		totale += q
	}
	return EvaluateFillTotale(totale, soglia)
}

// EvaluateFillTotale is EvaluateFill for an already-summed total.
func EvaluateFillTotale(totale types.Quintali, soglia types.Quintali) Riempimento {
	percent := int(totale.Int64Scaled() * 100 / CapienzaMassima.Int64Scaled())
	if percent > 100 {
		percent = 100
	}
	if percent < 0 {
		percent = 0
	}

	stato := RiempimentoParziale
	switch {
	case totale > soglia:
		stato = RiempimentoEccesso
	case totale >= SogliaMinima:
		stato = RiempimentoPronto
	}

	return Riempimento{
		Totale:      totale,
		Percentuale: percent,
		Stato:       stato,
	}
}
