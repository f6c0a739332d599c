// Package composizione suggests how to combine open orders into full truck
// loads: pairs and triples of the same mill and tipo summing close to 300q.
package composizione

import (
	"sort"
	"time"

	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/documents/carico"
	"farina/internal/domain/documents/ordine"
)

// MaxSuggerimentiPerGruppo limits suggestions within one (mulino, tipo) group.
const MaxSuggerimentiPerGruppo = 5

// MaxSuggerimenti limits the globally returned suggestions.
const MaxSuggerimenti = 10

// Obiettivo is the quintali target of a full truck.
var Obiettivo = carico.CapienzaMassima

// Candidato is an open order considered for combination.
type Candidato struct {
	OrdineID       id.ID          `json:"ordine_id"`
	Numero         string         `json:"numero"`
	ClienteID      id.ID          `json:"cliente_id"`
	MulinoID       id.ID          `json:"mulino_id"`
	Tipo           ordine.Tipo    `json:"tipo"`
	TotaleQuintali types.Quintali `json:"totale_quintali"`
	DataOrdine     time.Time      `json:"data_ordine"`
	DataRitiro     *time.Time     `json:"data_ritiro,omitempty"`
}

// data returns the date used for urgency and spread scoring.
func (c Candidato) data() time.Time {
	if c.DataRitiro != nil {
		return *c.DataRitiro
	}
	return c.DataOrdine
}

// Suggerimento is one proposed combination.
type Suggerimento struct {
	OrdineIDs      []id.ID        `json:"ordine_ids"`
	MulinoID       id.ID          `json:"mulino_id"`
	Tipo           ordine.Tipo    `json:"tipo"`
	TotaleQuintali types.Quintali `json:"totale_quintali"`

	// DifferenzaDaObiettivo = Obiettivo - totale; negative when over target
	DifferenzaDaObiettivo types.Quintali `json:"differenza_da_obiettivo"`

	// DataPiuUrgente is the earliest pickup date among the orders
	DataPiuUrgente *time.Time `json:"data_piu_urgente,omitempty"`

	// Score: higher is better. 100 minus the distance from the target,
	// minus date-spread and triple penalties.
	Score float64 `json:"score"`
}

// GeneraSuggerimenti proposes combinations of the given candidates, which
// must all share one (mulino, tipo) group. Accepted totals fall within
// [SogliaMinima, SogliaTolleranza]; results are sorted by score.
func GeneraSuggerimenti(candidati []Candidato) []Suggerimento {
	if len(candidati) == 0 {
		return nil
	}

	ordinati := make([]Candidato, len(candidati))
	copy(ordinati, candidati)
	sort.Slice(ordinati, func(i, j int) bool {
		return ordinati[i].data().Before(ordinati[j].data())
	})

	suggerimenti := make([]Suggerimento, 0)

	// Coppie vicine all'obiettivo
	for i := 0; i < len(ordinati); i++ {
		for j := i + 1; j < len(ordinati); j++ {
			o1, o2 := ordinati[i], ordinati[j]
			totale := o1.TotaleQuintali + o2.TotaleQuintali
			if totale < carico.SogliaMinima || totale > carico.SogliaTolleranza {
				continue
			}

			diff := (Obiettivo - totale).Abs()
			giorni := giorniTra(o1.data(), o2.data())
			score := 100 - diff.Float64() - float64(giorni)*2

			suggerimenti = append(suggerimenti, nuovoSuggerimento(
				[]Candidato{o1, o2}, totale, score))
		}
	}

	// Triple, con penalità fissa: tre ritiri da coordinare
	for i := 0; i < len(ordinati); i++ {
		for j := i + 1; j < len(ordinati); j++ {
			for k := j + 1; k < len(ordinati); k++ {
				o1, o2, o3 := ordinati[i], ordinati[j], ordinati[k]
				totale := o1.TotaleQuintali + o2.TotaleQuintali + o3.TotaleQuintali
				if totale < carico.SogliaMinima || totale > carico.SogliaTolleranza {
					continue
				}

				diff := (Obiettivo - totale).Abs()
				score := 100 - diff.Float64() - 5

				suggerimenti = append(suggerimenti, nuovoSuggerimento(
					[]Candidato{o1, o2, o3}, totale, score))
			}
		}
	}

	sort.SliceStable(suggerimenti, func(i, j int) bool {
		return suggerimenti[i].Score > suggerimenti[j].Score
	})
	if len(suggerimenti) > MaxSuggerimentiPerGruppo {
		suggerimenti = suggerimenti[:MaxSuggerimentiPerGruppo]
	}
	return suggerimenti
}

func nuovoSuggerimento(membri []Candidato, totale types.Quintali, score float64) Suggerimento {
	ids := make([]id.ID, len(membri))
	var urgente *time.Time
	for i, m := range membri {
		ids[i] = m.OrdineID
		d := m.data()
		if urgente == nil || d.Before(*urgente) {
			t := d
			urgente = &t
		}
	}
	return Suggerimento{
		OrdineIDs:             ids,
		MulinoID:              membri[0].MulinoID,
		Tipo:                  membri[0].Tipo,
		TotaleQuintali:        totale,
		DifferenzaDaObiettivo: Obiettivo - totale,
		DataPiuUrgente:        urgente,
		Score:                 score,
	}
}

func giorniTra(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}
