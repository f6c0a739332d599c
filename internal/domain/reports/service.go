package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/types"
)

// GiorniScadenzaDefault is the lookahead window for RIBA deadlines.
const GiorniScadenzaDefault = 30

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ProvvigioniTrimestre generates the quarterly commission report: per-mill
// totals with a per-product breakdown, plus grand totals.
func (s *Service) ProvvigioniTrimestre(ctx context.Context, filter ProvvigioniFilter) (*RiepilogoTrimestre, error) {
	if filter.Trimestre < 1 || filter.Trimestre > 4 {
		return nil, apperror.NewValidation("trimestre deve essere tra 1 e 4")
	}
	if filter.Anno < 2000 || filter.Anno > 2100 {
		return nil, apperror.NewValidation("anno non valido")
	}

	da, a := Trimestre(filter.Anno, filter.Trimestre)

	righe, err := s.repo.RigheProvvigione(ctx, da, a, filter.MulinoID)
	if err != nil {
		return nil, fmt.Errorf("get righe provvigione: %w", err)
	}

	report := &RiepilogoTrimestre{
		Anno:              filter.Anno,
		Trimestre:         filter.Trimestre,
		DataInizio:        da,
		DataFine:          a,
		TotaleIncassato:   types.Zero(),
		TotaleProvvigioni: types.Zero(),
		Mulini:            []ProvvigioneMulino{},
	}

	perMulino := make(map[id.ID]*ProvvigioneMulino)
	ordiniPerMulino := make(map[id.ID]map[id.ID]struct{})

	for i := range righe {
		r := &righe[i]
		r.Provvigione = CalcolaProvvigione(r.Quintali, r.PrezzoQuintale, r.TipoProvvigione, r.ValoreProvvigione)

		m, ok := perMulino[r.MulinoID]
		if !ok {
			m = &ProvvigioneMulino{
				MulinoID:          r.MulinoID,
				MulinoNome:        r.MulinoNome,
				TotaleIncassato:   types.Zero(),
				TotaleProvvigioni: types.Zero(),
				Prodotti:          []ProvvigioneProdotto{},
			}
			perMulino[r.MulinoID] = m
			ordiniPerMulino[r.MulinoID] = make(map[id.ID]struct{})
		}

		m.TotaleQuintali += r.Quintali
		m.TotaleIncassato = m.TotaleIncassato.Add(r.ImportoRiga)
		m.TotaleProvvigioni = m.TotaleProvvigioni.Add(r.Provvigione)
		ordiniPerMulino[r.MulinoID][r.OrdineID] = struct{}{}
		aggiungiProdotto(m, r)

		report.TotaleQuintali += r.Quintali
		report.TotaleIncassato = report.TotaleIncassato.Add(r.ImportoRiga)
		report.TotaleProvvigioni = report.TotaleProvvigioni.Add(r.Provvigione)
	}

	for mulinoID, m := range perMulino {
		m.NumOrdini = len(ordiniPerMulino[mulinoID])
		sort.Slice(m.Prodotti, func(i, j int) bool {
			return m.Prodotti[i].ProdottoNome < m.Prodotti[j].ProdottoNome
		})
		report.Mulini = append(report.Mulini, *m)
	}
	sort.Slice(report.Mulini, func(i, j int) bool {
		return report.Mulini[i].MulinoNome < report.Mulini[j].MulinoNome
	})

	return report, nil
}

// RigheTrimestre returns the raw commission rows of a quarter, with the
// commission computed per line. Used by the xlsx export.
func (s *Service) RigheTrimestre(ctx context.Context, filter ProvvigioniFilter) ([]RigaProvvigione, error) {
	if filter.Trimestre < 1 || filter.Trimestre > 4 {
		return nil, apperror.NewValidation("trimestre deve essere tra 1 e 4")
	}

	da, a := Trimestre(filter.Anno, filter.Trimestre)

	righe, err := s.repo.RigheProvvigione(ctx, da, a, filter.MulinoID)
	if err != nil {
		return nil, fmt.Errorf("get righe provvigione: %w", err)
	}
	for i := range righe {
		r := &righe[i]
		r.Provvigione = CalcolaProvvigione(r.Quintali, r.PrezzoQuintale, r.TipoProvvigione, r.ValoreProvvigione)
	}
	return righe, nil
}

// RibaInScadenza returns RIBA orders whose payment date falls within the
// given number of days from today.
func (s *Service) RibaInScadenza(ctx context.Context, giorni int) ([]RibaInScadenza, error) {
	if giorni <= 0 {
		giorni = GiorniScadenzaDefault
	}

	oggi := time.Now().UTC().Truncate(24 * time.Hour)
	entro := oggi.AddDate(0, 0, giorni)

	ordini, err := s.repo.OrdiniRibaInScadenza(ctx, entro)
	if err != nil {
		return nil, fmt.Errorf("get ordini riba in scadenza: %w", err)
	}

	for i := range ordini {
		ordini[i].GiorniMancanti = int(ordini[i].DataIncasso.Sub(oggi).Hours() / 24)
	}
	sort.Slice(ordini, func(i, j int) bool {
		return ordini[i].DataIncasso.Before(ordini[j].DataIncasso)
	})

	return ordini, nil
}

// RiepilogoAnno generates the yearly statistics summary with a per-month
// breakdown.
func (s *Service) RiepilogoAnno(ctx context.Context, anno int) (*RiepilogoAnno, error) {
	if anno < 2000 || anno > 2100 {
		return nil, apperror.NewValidation("anno non valido")
	}

	mesi, err := s.repo.RiepilogoMensile(ctx, anno)
	if err != nil {
		return nil, fmt.Errorf("get riepilogo mensile: %w", err)
	}

	report := &RiepilogoAnno{
		Anno:              anno,
		TotaleImporto:     types.Zero(),
		TotaleProvvigioni: types.Zero(),
		Mesi:              mesi,
	}
	for _, m := range mesi {
		report.TotaleQuintali += m.TotaleQuintali
		report.TotaleImporto = report.TotaleImporto.Add(m.TotaleImporto)
		report.NumOrdini += m.NumOrdini
	}

	// Yearly commissions follow the quarters of the payment dates.
	for trimestre := 1; trimestre <= 4; trimestre++ {
		q, err := s.ProvvigioniTrimestre(ctx, ProvvigioniFilter{Anno: anno, Trimestre: trimestre})
		if err != nil {
			return nil, err
		}
		report.TotaleProvvigioni = report.TotaleProvvigioni.Add(q.TotaleProvvigioni)
	}

	consegnati, err := s.repo.CarichiConsegnati(ctx, anno)
	if err != nil {
		return nil, fmt.Errorf("count carichi consegnati: %w", err)
	}
	report.CarichiConsegnati = consegnati

	return report, nil
}

// TopClienti ranks customers by quintali sold in a year.
func (s *Service) TopClienti(ctx context.Context, anno, limite int) ([]TopCliente, error) {
	if anno < 2000 || anno > 2100 {
		return nil, apperror.NewValidation("anno non valido")
	}
	if limite <= 0 {
		limite = 10
	}
	if limite > 100 {
		limite = 100
	}

	clienti, err := s.repo.TopClienti(ctx, anno, limite)
	if err != nil {
		return nil, fmt.Errorf("get top clienti: %w", err)
	}
	return clienti, nil
}

func aggiungiProdotto(m *ProvvigioneMulino, r *RigaProvvigione) {
	for i := range m.Prodotti {
		p := &m.Prodotti[i]
		if p.ProdottoID == r.ProdottoID {
			p.TotaleQuintali += r.Quintali
			p.TotaleImporto = p.TotaleImporto.Add(r.ImportoRiga)
			p.TotaleProvvigioni = p.TotaleProvvigioni.Add(r.Provvigione)
			p.NumRighe++
			return
		}
	}
	m.Prodotti = append(m.Prodotti, ProvvigioneProdotto{
		ProdottoID:        r.ProdottoID,
		ProdottoNome:      r.ProdottoNome,
		TipoProvvigione:   r.TipoProvvigione,
		ValoreProvvigione: r.ValoreProvvigione,
		TotaleQuintali:    r.Quintali,
		TotaleImporto:     r.ImportoRiga,
		TotaleProvvigioni: r.Provvigione,
		NumRighe:          1,
	})
}
