package prezzi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farina/internal/core/id"
	"farina/internal/core/types"
)

func TestGroupByMulino(t *testing.T) {
	rossi := id.New()
	bianchi := id.New()
	clienteID := id.New()

	riga := func(mulinoID id.ID, prezzo string, giorniFa int) Prezzo {
		return Prezzo{
			ID:             id.New(),
			ClienteID:      clienteID,
			ProdottoID:     id.New(),
			MulinoID:       mulinoID,
			PrezzoQuintale: types.MustMoney(prezzo),
			Data:           time.Now().UTC().AddDate(0, 0, -giorniFa),
		}
	}

	// Rows arrive sorted by date descending; groups must preserve the
	// first-seen mill order.
	rows := []Prezzo{
		riga(rossi, "52.00", 1),
		riga(bianchi, "49.50", 3),
		riga(rossi, "51.00", 10),
		riga(bianchi, "48.00", 20),
		riga(rossi, "50.00", 30),
	}

	gruppi := GroupByMulino(rows)
	require.Len(t, gruppi, 2)

	assert.Equal(t, rossi, gruppi[0].MulinoID)
	assert.Len(t, gruppi[0].Prezzi, 3)
	assert.True(t, gruppi[0].Prezzi[0].PrezzoQuintale.Equal(types.MustMoney("52.00")))

	assert.Equal(t, bianchi, gruppi[1].MulinoID)
	assert.Len(t, gruppi[1].Prezzi, 2)
}

func TestGroupByMulino_Vuoto(t *testing.T) {
	gruppi := GroupByMulino(nil)
	assert.NotNil(t, gruppi)
	assert.Empty(t, gruppi)
}
