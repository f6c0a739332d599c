package composizione

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/documents/ordine"
)

func candidato(mulinoID id.ID, quintali int64, dataRitiro time.Time) Candidato {
	return Candidato{
		OrdineID:       id.New(),
		ClienteID:      id.New(),
		MulinoID:       mulinoID,
		Tipo:           ordine.TipoSfuso,
		TotaleQuintali: types.NewQuintaliFromInt(quintali),
		DataOrdine:     dataRitiro.AddDate(0, 0, -7),
		DataRitiro:     &dataRitiro,
	}
}

func TestGeneraSuggerimenti_Coppie(t *testing.T) {
	mulino := id.New()
	ritiro := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	c1 := candidato(mulino, 160, ritiro)
	c2 := candidato(mulino, 140, ritiro)

	sugg := GeneraSuggerimenti([]Candidato{c1, c2})
	require.Len(t, sugg, 1)

	s := sugg[0]
	assert.ElementsMatch(t, []id.ID{c1.OrdineID, c2.OrdineID}, s.OrdineIDs)
	assert.Equal(t, types.NewQuintaliFromInt(300), s.TotaleQuintali)
	assert.Equal(t, types.NewQuintaliFromInt(0), s.DifferenzaDaObiettivo)
	require.NotNil(t, s.DataPiuUrgente)
	assert.Equal(t, ritiro, *s.DataPiuUrgente)
	// Perfect pair on the same day scores the maximum.
	assert.InDelta(t, 100, s.Score, 0.001)
}

func TestGeneraSuggerimenti_ScartaFuoriSoglia(t *testing.T) {
	mulino := id.New()
	ritiro := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	// Every pair falls outside [280, 320]: 130+140=270, 130+200=330,
	// 140+200=340. The only triple sums to 470.
	sugg := GeneraSuggerimenti([]Candidato{
		candidato(mulino, 130, ritiro),
		candidato(mulino, 140, ritiro),
		candidato(mulino, 200, ritiro),
	})

	assert.Empty(t, sugg)
}

func TestGeneraSuggerimenti_TriplePenalizzate(t *testing.T) {
	mulino := id.New()
	ritiro := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	// 150+150 makes an exact pair; 100+100+100 makes an exact triple.
	c1 := candidato(mulino, 150, ritiro)
	c2 := candidato(mulino, 150, ritiro)
	c3 := candidato(mulino, 100, ritiro)
	c4 := candidato(mulino, 100, ritiro)
	c5 := candidato(mulino, 100, ritiro)

	sugg := GeneraSuggerimenti([]Candidato{c1, c2, c3, c4, c5})
	require.NotEmpty(t, sugg)

	// The exact pair outranks any triple with the same total.
	best := sugg[0]
	assert.Len(t, best.OrdineIDs, 2)
	assert.Equal(t, types.NewQuintaliFromInt(300), best.TotaleQuintali)

	for _, s := range sugg[1:] {
		assert.LessOrEqual(t, s.Score, best.Score)
	}
}

func TestGeneraSuggerimenti_PenalitaDistanzaDate(t *testing.T) {
	mulino := id.New()
	vicino := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	lontano := vicino.AddDate(0, 0, 10)

	c1 := candidato(mulino, 150, vicino)
	c2 := candidato(mulino, 150, vicino)
	c3 := candidato(mulino, 150, lontano)

	sugg := GeneraSuggerimenti([]Candidato{c1, c2, c3})
	require.NotEmpty(t, sugg)

	// Same-day pair wins over the pair spread across ten days.
	best := sugg[0]
	assert.ElementsMatch(t, []id.ID{c1.OrdineID, c2.OrdineID}, best.OrdineIDs)
}

func TestGeneraSuggerimenti_LimitePerGruppo(t *testing.T) {
	mulino := id.New()
	ritiro := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	candidati := make([]Candidato, 0, 8)
	for i := 0; i < 8; i++ {
		candidati = append(candidati, candidato(mulino, 150, ritiro.AddDate(0, 0, i)))
	}

	sugg := GeneraSuggerimenti(candidati)
	assert.LessOrEqual(t, len(sugg), MaxSuggerimentiPerGruppo)
}

func TestGeneraSuggerimenti_Vuoto(t *testing.T) {
	assert.Nil(t, GeneraSuggerimenti(nil))
}
