package ordine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farina/internal/core/id"
	"farina/internal/core/types"
)

func TestOrdine_Totali(t *testing.T) {
	o := NewOrdine(id.New(), TipoSfuso)
	o.Numero = "ORD-2025-00001"

	mulino := id.New()
	o.AddRiga(id.New(), mulino, nil, types.NewQuintaliFromInt(100), types.MustMoney("52.50"))
	o.AddRiga(id.New(), mulino, nil, types.NewQuintaliFromInt(50), types.MustMoney("48.00"))

	assert.Equal(t, types.NewQuintaliFromInt(150), o.TotaleQuintali())
	assert.True(t, o.TotaleImporto().Equal(types.MustMoney("7650.00")),
		"got %s", o.TotaleImporto())

	require.Len(t, o.Righe, 2)
	assert.Equal(t, 1, o.Righe[0].NumeroRiga)
	assert.Equal(t, 2, o.Righe[1].NumeroRiga)
	assert.True(t, o.Righe[0].PrezzoTotale.Equal(types.MustMoney("5250.00")))
}

func TestOrdine_MulinoPrincipaleID(t *testing.T) {
	rossi := id.New()
	bianchi := id.New()

	o := NewOrdine(id.New(), TipoSfuso)
	o.AddRiga(id.New(), rossi, nil, types.NewQuintaliFromInt(80), types.MustMoney("50"))
	o.AddRiga(id.New(), bianchi, nil, types.NewQuintaliFromInt(120), types.MustMoney("50"))
	o.AddRiga(id.New(), rossi, nil, types.NewQuintaliFromInt(30), types.MustMoney("50"))

	principale := o.MulinoPrincipaleID()
	require.NotNil(t, principale)
	assert.Equal(t, bianchi, *principale)
}

func TestOrdine_MulinoPrincipaleID_TieKeepsFirst(t *testing.T) {
	rossi := id.New()
	bianchi := id.New()

	o := NewOrdine(id.New(), TipoSfuso)
	o.AddRiga(id.New(), rossi, nil, types.NewQuintaliFromInt(100), types.MustMoney("50"))
	o.AddRiga(id.New(), bianchi, nil, types.NewQuintaliFromInt(100), types.MustMoney("50"))

	principale := o.MulinoPrincipaleID()
	require.NotNil(t, principale)
	assert.Equal(t, rossi, *principale)
}

func TestOrdine_MulinoPrincipaleID_SenzaRighe(t *testing.T) {
	o := NewOrdine(id.New(), TipoSfuso)
	assert.Nil(t, o.MulinoPrincipaleID())
}

func TestOrdine_IsOrdineGrande(t *testing.T) {
	o := NewOrdine(id.New(), TipoSfuso)
	o.AddRiga(id.New(), id.New(), nil, types.NewQuintaliFromInt(279), types.MustMoney("50"))
	assert.False(t, o.IsOrdineGrande())

	o.AddRiga(id.New(), id.New(), nil, types.NewQuintaliFromInt(1), types.MustMoney("50"))
	assert.True(t, o.IsOrdineGrande())
}

func TestOrdine_IsAssegnabile(t *testing.T) {
	o := NewOrdine(id.New(), TipoSfuso)
	assert.True(t, o.IsAssegnabile())

	caricoID := id.New()
	o.CaricoID = &caricoID
	o.StatoLogistico = LogisticoInCluster
	assert.False(t, o.IsAssegnabile())
}

func TestOrdine_Validate(t *testing.T) {
	ctx := context.Background()

	valido := func() *Ordine {
		o := NewOrdine(id.New(), TipoPedane)
		o.Numero = "ORD-2025-00042"
		pedane := 3
		o.AddRiga(id.New(), id.New(), &pedane, types.NewQuintaliFromInt(30), types.MustMoney("50"))
		return o
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valido().Validate(ctx))
	})

	t.Run("missing cliente", func(t *testing.T) {
		o := valido()
		o.ClienteID = id.ID{}
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("invalid tipo", func(t *testing.T) {
		o := valido()
		o.Tipo = "rinfusa"
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("no righe", func(t *testing.T) {
		o := valido()
		o.Righe = nil
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("non positive quintali", func(t *testing.T) {
		o := valido()
		o.Righe[0].Quintali = 0
		assert.Error(t, o.Validate(ctx))
	})

	t.Run("negative prezzo", func(t *testing.T) {
		o := valido()
		o.Righe[0].PrezzoQuintale = types.MustMoney("-1")
		assert.Error(t, o.Validate(ctx))
	})
}
