package carico

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"farina/internal/core/id"
	"farina/internal/domain/documents/ordine"
)

func TestCarico_CanTransition(t *testing.T) {
	tests := []struct {
		from Stato
		to   Stato
		want bool
	}{
		{StatoBozza, StatoAssegnato, true},
		{StatoAssegnato, StatoRitirato, true},
		{StatoRitirato, StatoConsegnato, true},

		{StatoBozza, StatoRitirato, false},
		{StatoBozza, StatoConsegnato, false},
		{StatoAssegnato, StatoBozza, false},
		{StatoAssegnato, StatoConsegnato, false},
		{StatoRitirato, StatoAssegnato, false},
		{StatoConsegnato, StatoRitirato, false},
		{StatoConsegnato, StatoBozza, false},
	}

	for _, tt := range tests {
		c := NewCarico(id.New(), ordine.TipoSfuso)
		c.Stato = tt.from
		assert.Equal(t, tt.want, c.CanTransition(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestCarico_QuintaliDisponibili(t *testing.T) {
	c := NewCarico(id.New(), ordine.TipoSfuso)

	c.TotaleQuintali = q(180)
	assert.Equal(t, q(120), c.QuintaliDisponibili())

	c.TotaleQuintali = q(300)
	assert.Equal(t, q(0), c.QuintaliDisponibili())

	c.TotaleQuintali = q(320)
	assert.Equal(t, q(0), c.QuintaliDisponibili())
}

func TestCarico_IsModificabile(t *testing.T) {
	c := NewCarico(id.New(), ordine.TipoPedane)
	assert.True(t, c.IsModificabile())

	c.Stato = StatoAssegnato
	assert.True(t, c.IsModificabile())

	c.Stato = StatoRitirato
	assert.False(t, c.IsModificabile())

	c.Stato = StatoConsegnato
	assert.False(t, c.IsModificabile())
}

func TestCarico_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("bozza without trasportatore is fine", func(t *testing.T) {
		c := NewCarico(id.New(), ordine.TipoSfuso)
		assert.NoError(t, c.Validate(ctx))
	})

	t.Run("assegnato requires trasportatore and data ritiro", func(t *testing.T) {
		c := NewCarico(id.New(), ordine.TipoSfuso)
		c.Stato = StatoAssegnato
		assert.Error(t, c.Validate(ctx))

		tid := id.New()
		c.TrasportatoreID = &tid
		assert.Error(t, c.Validate(ctx))

		ritiro := time.Now().UTC()
		c.DataRitiro = &ritiro
		assert.NoError(t, c.Validate(ctx))
	})

	t.Run("invalid tipo", func(t *testing.T) {
		c := NewCarico(id.New(), "rinfusa")
		assert.Error(t, c.Validate(ctx))
	})

	t.Run("negative totale", func(t *testing.T) {
		c := NewCarico(id.New(), ordine.TipoSfuso)
		c.TotaleQuintali = -1
		assert.Error(t, c.Validate(ctx))
	})
}
