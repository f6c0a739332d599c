package carico

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farina/internal/core/types"
)

func q(v int64) types.Quintali { return types.NewQuintaliFromInt(v) }

func TestEvaluateFill(t *testing.T) {
	tests := []struct {
		name            string
		quintali        []types.Quintali
		soglia          types.Quintali
		wantTotale      types.Quintali
		wantPercentuale int
		wantStato       StatoRiempimento
	}{
		{
			name:            "empty",
			quintali:        nil,
			soglia:          CapienzaMassima,
			wantTotale:      0,
			wantPercentuale: 0,
			wantStato:       RiempimentoParziale,
		},
		{
			name:            "below minimum",
			quintali:        []types.Quintali{q(100), q(150)},
			soglia:          CapienzaMassima,
			wantTotale:      q(250),
			wantPercentuale: 83,
			wantStato:       RiempimentoParziale,
		},
		{
			name:            "at minimum",
			quintali:        []types.Quintali{q(280)},
			soglia:          CapienzaMassima,
			wantTotale:      q(280),
			wantPercentuale: 93,
			wantStato:       RiempimentoPronto,
		},
		{
			name:            "full truck",
			quintali:        []types.Quintali{q(180), q(120)},
			soglia:          CapienzaMassima,
			wantTotale:      q(300),
			wantPercentuale: 100,
			wantStato:       RiempimentoPronto,
		},
		{
			name:            "over hard cap",
			quintali:        []types.Quintali{q(310)},
			soglia:          CapienzaMassima,
			wantTotale:      q(310),
			wantPercentuale: 100,
			wantStato:       RiempimentoEccesso,
		},
		{
			name:            "over cap but within tolerance",
			quintali:        []types.Quintali{q(310)},
			soglia:          SogliaTolleranza,
			wantTotale:      q(310),
			wantPercentuale: 100,
			wantStato:       RiempimentoPronto,
		},
		{
			name:            "over tolerance",
			quintali:        []types.Quintali{q(321)},
			soglia:          SogliaTolleranza,
			wantTotale:      q(321),
			wantPercentuale: 100,
			wantStato:       RiempimentoEccesso,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateFill(tt.quintali, tt.soglia)
			assert.Equal(t, tt.wantTotale, got.Totale)
			assert.Equal(t, tt.wantPercentuale, got.Percentuale)
			assert.Equal(t, tt.wantStato, got.Stato)
		})
	}
}
