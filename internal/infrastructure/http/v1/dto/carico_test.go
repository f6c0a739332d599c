package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/documents/carico"
	"farina/internal/domain/documents/ordine"
)

func TestFromCarico(t *testing.T) {
	doc := carico.NewCarico(id.New(), ordine.TipoSfuso)
	doc.Numero = "CAR-2026-0042"
	doc.Data = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	doc.TotaleQuintali = types.NewQuintaliFromInt(180)

	resp := FromCarico(doc)
	require.NotNil(t, resp)

	assert.Equal(t, doc.ID.String(), resp.ID)
	assert.Equal(t, "CAR-2026-0042", resp.Numero)
	assert.Equal(t, carico.StatoBozza, resp.Stato)
	assert.Equal(t, types.NewQuintaliFromInt(180), resp.TotaleQuintali)
	assert.Equal(t, types.NewQuintaliFromInt(120), resp.QuintaliDisponibili)
	assert.Nil(t, resp.TrasportatoreID)
}

// Removing the last (or penultimate, for a bozza) order deletes the carico
// and the service returns no document. The conversion must not blow up on it.
func TestFromCarico_NilDopoRimozione(t *testing.T) {
	assert.Nil(t, FromCarico(nil))
}
