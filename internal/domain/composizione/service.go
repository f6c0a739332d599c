package composizione

import (
	"context"
	"sort"

	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain"
	"farina/internal/domain/documents/carico"
	"farina/internal/domain/documents/ordine"
)

// Gruppo collects the open orders of one (mulino, tipo) pair.
type Gruppo struct {
	MulinoID       id.ID          `json:"mulino_id"`
	Tipo           ordine.Tipo    `json:"tipo"`
	TotaleQuintali types.Quintali `json:"totale_quintali"`
	NumOrdini      int            `json:"num_ordini"`
	Ordini         []Candidato    `json:"ordini"`
}

// Service builds the composizione views on top of the ordine and carico domains.
type Service struct {
	ordini  ordine.Repository
	carichi *carico.Service
}

// NewService creates a new composizione service.
func NewService(ordini ordine.Repository, carichi *carico.Service) *Service {
	return &Service{
		ordini:  ordini,
		carichi: carichi,
	}
}

// OrdiniDisponibili returns the open orders grouped by (mulino, tipo),
// optionally filtered. Group order follows the first appearance of each
// mulino in the order list.
func (s *Service) OrdiniDisponibili(ctx context.Context, mulinoID *id.ID, tipo *ordine.Tipo) ([]Gruppo, error) {
	candidati, err := s.candidati(ctx, mulinoID, tipo)
	if err != nil {
		return nil, err
	}

	type chiave struct {
		mulino id.ID
		tipo   ordine.Tipo
	}
	gruppi := make(map[chiave]*Gruppo)
	ordineChiavi := make([]chiave, 0)

	for _, c := range candidati {
		k := chiave{c.MulinoID, c.Tipo}
		g, ok := gruppi[k]
		if !ok {
			g = &Gruppo{MulinoID: c.MulinoID, Tipo: c.Tipo}
			gruppi[k] = g
			ordineChiavi = append(ordineChiavi, k)
		}
		g.Ordini = append(g.Ordini, c)
		g.TotaleQuintali += c.TotaleQuintali
		g.NumOrdini++
	}

	out := make([]Gruppo, 0, len(ordineChiavi))
	for _, k := range ordineChiavi {
		out = append(out, *gruppi[k])
	}
	return out, nil
}

// Suggerimenti generates load combinations per group and merges them into a
// single score-ordered list, at most MaxSuggerimenti long.
func (s *Service) Suggerimenti(ctx context.Context, mulinoID *id.ID, tipo *ordine.Tipo) ([]Suggerimento, error) {
	gruppi, err := s.OrdiniDisponibili(ctx, mulinoID, tipo)
	if err != nil {
		return nil, err
	}

	tutti := make([]Suggerimento, 0)
	for _, g := range gruppi {
		tutti = append(tutti, GeneraSuggerimenti(g.Ordini)...)
	}

	sort.SliceStable(tutti, func(i, j int) bool {
		return tutti[i].Score > tutti[j].Score
	})
	if len(tutti) > MaxSuggerimenti {
		tutti = tutti[:MaxSuggerimenti]
	}
	return tutti, nil
}

// Crea turns a selection of orders into a draft carico, applying the same
// grouping constraints as the carichi module.
func (s *Service) Crea(ctx context.Context, ordineIDs []id.ID, note string) (*carico.Carico, error) {
	return s.carichi.CreateBozza(ctx, ordineIDs, note)
}

func (s *Service) candidati(ctx context.Context, mulinoID *id.ID, tipo *ordine.Tipo) ([]Candidato, error) {
	aperto := ordine.LogisticoAperto
	res, err := s.ordini.List(ctx, ordine.ListFilter{
		ListFilter:     domain.ListFilter{Limit: 1000, OrderBy: "data"},
		StatoLogistico: &aperto,
		Tipo:           tipo,
	})
	if err != nil {
		return nil, err
	}

	candidati := make([]Candidato, 0, len(res.Items))
	for _, ord := range res.Items {
		ord.Righe, err = s.ordini.GetLines(ctx, ord.ID)
		if err != nil {
			return nil, err
		}

		mid := ord.MulinoPrincipaleID()
		if mid == nil {
			continue
		}
		if mulinoID != nil && *mid != *mulinoID {
			continue
		}

		candidati = append(candidati, Candidato{
			OrdineID:       ord.ID,
			Numero:         ord.Numero,
			ClienteID:      ord.ClienteID,
			MulinoID:       *mid,
			Tipo:           ord.Tipo,
			TotaleQuintali: ord.TotaleQuintali(),
			DataOrdine:     ord.Data,
			DataRitiro:     ord.DataRitiro,
		})
	}
	return candidati, nil
}
