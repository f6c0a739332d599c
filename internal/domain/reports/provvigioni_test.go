package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farina/internal/core/types"
	"farina/internal/domain/catalogs/prodotto"
)

func TestCalcolaProvvigione(t *testing.T) {
	tests := []struct {
		name     string
		quintali types.Quintali
		prezzo   types.Money
		tipo     prodotto.TipoProvvigione
		valore   types.Money
		want     types.Money
	}{
		{
			// 100q * 50 EUR/q * 3% = 150
			name:     "percentuale",
			quintali: types.NewQuintaliFromInt(100),
			prezzo:   types.MustMoney("50"),
			tipo:     prodotto.ProvvigionePercentuale,
			valore:   types.MustMoney("3"),
			want:     types.MustMoney("150"),
		},
		{
			// 150.50q * 48.20 EUR/q * 2.5% = 181.3525
			name:     "percentuale frazionaria",
			quintali: types.NewQuintaliFromFloat64(150.5),
			prezzo:   types.MustMoney("48.20"),
			tipo:     prodotto.ProvvigionePercentuale,
			valore:   types.MustMoney("2.5"),
			want:     types.MustMoney("181.3525"),
		},
		{
			// 80q * 1.20 EUR/q flat
			name:     "fisso",
			quintali: types.NewQuintaliFromInt(80),
			prezzo:   types.MustMoney("55"),
			tipo:     prodotto.ProvvigioneFisso,
			valore:   types.MustMoney("1.20"),
			want:     types.MustMoney("96"),
		},
		{
			name:     "tipo sconosciuto",
			quintali: types.NewQuintaliFromInt(100),
			prezzo:   types.MustMoney("50"),
			tipo:     "a_scaglioni",
			valore:   types.MustMoney("3"),
			want:     types.Zero(),
		},
		{
			name:     "zero quintali",
			quintali: 0,
			prezzo:   types.MustMoney("50"),
			tipo:     prodotto.ProvvigionePercentuale,
			valore:   types.MustMoney("3"),
			want:     types.Zero(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcolaProvvigione(tt.quintali, tt.prezzo, tt.tipo, tt.valore)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestTrimestre(t *testing.T) {
	tests := []struct {
		anno       int
		trimestre  int
		wantInizio time.Time
		wantFine   time.Time
	}{
		{2025, 1, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)},
		{2025, 2, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		{2025, 3, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)},
		{2025, 4, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		// leap year first quarter still ends 31 March
		{2024, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		inizio, fine := Trimestre(tt.anno, tt.trimestre)
		assert.Equal(t, tt.wantInizio, inizio, "T%d %d inizio", tt.trimestre, tt.anno)
		assert.Equal(t, tt.wantFine, fine, "T%d %d fine", tt.trimestre, tt.anno)
	}
}
