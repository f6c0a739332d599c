package carico

import (
	"context"
	"fmt"
	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/tx"
	"farina/internal/core/types"
	"farina/internal/domain"
	"farina/internal/domain/catalogs/mulino"
	"farina/internal/domain/catalogs/trasportatore"
	"farina/internal/domain/documents/ordine"
	"farina/pkg/logger"
)

// GiorniTolleranzaData is the allowed spread, in days, between an order's
// requested pickup date and the planned pickup date of the carico.
const GiorniTolleranzaData = 3

// Esito is the outcome of a dry-run constraint validation over a set of orders.
type Esito struct {
	Valido bool     `json:"valido"`
	Errori []string `json:"errori"`

	MulinoID    *id.ID      `json:"mulino_id,omitempty"`
	Tipo        ordine.Tipo `json:"tipo,omitempty"`
	Riempimento Riempimento `json:"riempimento"`
}

// Service provides business operations for carichi.
// All multi-row mutations run inside one transaction: the carico, its orders
// and the cached total move together or not at all.
type Service struct {
	repo          Repository
	ordini        ordine.Repository
	mulini        mulino.Repository
	trasportatori trasportatore.Repository
	txManager     tx.Manager
}

// NewService creates a new carico service.
func NewService(
	repo Repository,
	ordini ordine.Repository,
	mulini mulino.Repository,
	trasportatori trasportatore.Repository,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:          repo,
		ordini:        ordini,
		mulini:        mulini,
		trasportatori: trasportatori,
		txManager:     txManager,
	}
}

// --- creation ---

// CreateBozza groups the given orders into a new draft carico.
// The carico inherits mulino and tipo from the orders, which must be
// mutually compatible.
func (s *Service) CreateBozza(ctx context.Context, ordineIDs []id.ID, note string) (*Carico, error) {
	var doc *Carico
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		esito, ordini, err := s.valuta(ctx, ordineIDs, nil)
		if err != nil {
			return err
		}
		if !esito.Valido {
			return apperror.NewValidation("gli ordini non possono formare un carico").
				WithDetail("errori", esito.Errori)
		}

		doc = NewCarico(*esito.MulinoID, esito.Tipo)
		doc.Note = note
		doc.TotaleQuintali = esito.Riempimento.Totale

		if err := s.assegnaNumero(ctx, doc); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create carico: %w", err)
		}

		return s.attach(ctx, doc, ordini, ordine.LogisticoInCluster)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "carico bozza created",
		"id", doc.ID,
		"numero", doc.Numero,
		"ordini", len(ordineIDs),
		"totale", doc.TotaleQuintali.String())

	return doc, nil
}

// CreateDaOrdineGrande converts a single order of at least 280q directly
// into an assigned carico: alone it already satisfies the minimum threshold.
func (s *Service) CreateDaOrdineGrande(ctx context.Context, ordineID, trasportatoreID id.ID, dataRitiro time.Time) (*Carico, error) {
	var doc *Carico
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		ord, err := s.ordini.GetByID(ctx, ordineID)
		if err != nil {
			return err
		}
		ord.Righe, err = s.ordini.GetLines(ctx, ordineID)
		if err != nil {
			return err
		}

		if ord.CaricoID != nil {
			return apperror.NewConflict("ordine già assegnato a un carico").
				WithDetail("ordine_id", ordineID.String()).
				WithDetail("carico_id", ord.CaricoID.String())
		}

		totale := ord.TotaleQuintali()
		if totale < ordine.SogliaOrdineGrande {
			return apperror.NewCaricoSottoSoglia(nil, totale.String(), ordine.SogliaOrdineGrande.String())
		}

		if err := s.checkTrasportatore(ctx, trasportatoreID); err != nil {
			return err
		}

		mulinoID := ord.MulinoPrincipaleID()
		if mulinoID == nil {
			return apperror.NewValidation("ordine senza righe").
				WithDetail("ordine_id", ordineID.String())
		}

		doc = NewCarico(*mulinoID, ord.Tipo)
		doc.TrasportatoreID = &trasportatoreID
		doc.DataRitiro = &dataRitiro
		doc.Stato = StatoAssegnato
		doc.TotaleQuintali = totale

		if err := s.assegnaNumero(ctx, doc); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create carico: %w", err)
		}

		return s.attach(ctx, doc, []*ordine.Ordine{ord}, ordine.LogisticoInCarico)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "carico created from large order",
		"id", doc.ID,
		"ordine_id", ordineID,
		"totale", doc.TotaleQuintali.String())

	return doc, nil
}

// --- queries ---

// GetByID retrieves a carico.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Carico, error) {
	return s.repo.GetByID(ctx, docID)
}

// List retrieves carichi with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Carico], error) {
	return s.repo.List(ctx, filter)
}

// ListAperti returns carichi still accepting or awaiting shipment.
func (s *Service) ListAperti(ctx context.Context, filter ListFilter) (domain.ListResult[*Carico], error) {
	filter.Stati = []Stato{StatoBozza, StatoAssegnato}
	return s.repo.List(ctx, filter)
}

// ListBozze returns draft carichi only.
func (s *Service) ListBozze(ctx context.Context, filter ListFilter) (domain.ListResult[*Carico], error) {
	filter.Stati = []Stato{StatoBozza}
	return s.repo.List(ctx, filter)
}

// Ordini returns the orders grouped into a carico.
func (s *Service) Ordini(ctx context.Context, docID id.ID) ([]*ordine.Ordine, error) {
	if _, err := s.repo.GetByID(ctx, docID); err != nil {
		return nil, err
	}
	return s.ordini.ListByCarico(ctx, docID)
}

// OrdiniDisponibili returns the open orders that could join the carico:
// same mulino, same tipo, fitting the residual capacity, and with a
// requested pickup date within the tolerance of the planned one.
func (s *Service) OrdiniDisponibili(ctx context.Context, docID id.ID) ([]*ordine.Ordine, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	aperto := ordine.LogisticoAperto
	res, err := s.ordini.List(ctx, ordine.ListFilter{
		ListFilter:     domain.ListFilter{Limit: 1000},
		Tipo:           &doc.Tipo,
		StatoLogistico: &aperto,
	})
	if err != nil {
		return nil, err
	}

	disponibili := doc.QuintaliDisponibili()
	compatibili := make([]*ordine.Ordine, 0)
	for _, ord := range res.Items {
		ord.Righe, err = s.ordini.GetLines(ctx, ord.ID)
		if err != nil {
			return nil, err
		}

		mid := ord.MulinoPrincipaleID()
		if mid == nil || *mid != doc.MulinoID {
			continue
		}
		if ord.TotaleQuintali() > disponibili {
			continue
		}
		if !dateCompatibili(doc.DataRitiro, ord.DataRitiro) {
			continue
		}
		compatibili = append(compatibili, ord)
	}
	return compatibili, nil
}

// Valida dry-runs the grouping constraints over a set of orders, returning
// the violations (if any) together with the fill evaluation.
func (s *Service) Valida(ctx context.Context, ordineIDs []id.ID) (*Esito, error) {
	esito, _, err := s.valuta(ctx, ordineIDs, nil)
	if err != nil {
		return nil, err
	}
	return esito, nil
}

// --- mutations ---

// AggiungiOrdini adds open orders to a modifiable carico.
func (s *Service) AggiungiOrdini(ctx context.Context, docID id.ID, ordineIDs []id.ID) (*Carico, error) {
	var doc *Carico
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if !doc.IsModificabile() {
			return apperror.NewStatoNonValido("carico", string(doc.Stato), string(doc.Stato))
		}

		totale := doc.TotaleQuintali
		stato := ordine.LogisticoInCluster
		if doc.Stato == StatoAssegnato {
			stato = ordine.LogisticoInCarico
		}

		for _, ordineID := range ordineIDs {
			ord, err := s.ordini.GetForUpdate(ctx, ordineID)
			if err != nil {
				return err
			}
			ord.Righe, err = s.ordini.GetLines(ctx, ordineID)
			if err != nil {
				return err
			}

			if !ord.IsAssegnabile() {
				return apperror.NewConflict("ordine non assegnabile").
					WithDetail("ordine_id", ordineID.String()).
					WithDetail("stato_logistico", string(ord.StatoLogistico))
			}
			if ord.Tipo != doc.Tipo {
				return apperror.NewBusinessRule(
					apperror.CodeBusinessRule,
					"tipo ordine diverso dal tipo del carico",
				).WithDetail("ordine_id", ordineID.String())
			}
			mid := ord.MulinoPrincipaleID()
			if mid == nil || *mid != doc.MulinoID {
				return apperror.NewBusinessRule(
					apperror.CodeBusinessRule,
					"mulino dell'ordine diverso dal mulino del carico",
				).WithDetail("ordine_id", ordineID.String())
			}

			totale += ord.TotaleQuintali()
			if totale > CapienzaMassima {
				return apperror.NewCaricoOltreCapienza(docID.String(), totale.String(), CapienzaMassima.String())
			}

			ord.CaricoID = &docID
			ord.StatoLogistico = stato
			if err := s.ordini.Update(ctx, ord); err != nil {
				return fmt.Errorf("attach ordine: %w", err)
			}
		}

		doc.TotaleQuintali = totale
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// RimuoviOrdine detaches an order from a carico and returns it to aperto.
// The carico is deleted when it empties, or when a single order remains in
// a still-draft carico (one small order alone is not a load).
// Returns nil when the carico was deleted.
func (s *Service) RimuoviOrdine(ctx context.Context, docID, ordineID id.ID) (*Carico, error) {
	var doc *Carico
	deleted := false
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}
		if !doc.IsModificabile() {
			return apperror.NewBusinessRule(
				apperror.CodeStatoNonValido,
				"gli ordini di un carico ritirato o consegnato non possono essere rimossi",
			).WithDetail("carico_id", docID.String())
		}

		ord, err := s.ordini.GetForUpdate(ctx, ordineID)
		if err != nil {
			return err
		}
		if ord.CaricoID == nil || *ord.CaricoID != docID {
			return apperror.NewValidation("ordine non assegnato a questo carico").
				WithDetail("ordine_id", ordineID.String())
		}

		if err := s.detach(ctx, ord); err != nil {
			return err
		}

		rimasti, err := s.ordini.ListByCarico(ctx, docID)
		if err != nil {
			return err
		}

		if len(rimasti) == 0 || (len(rimasti) == 1 && doc.Stato == StatoBozza) {
			for _, r := range rimasti {
				if err := s.detach(ctx, r); err != nil {
					return err
				}
			}
			deleted = true
			return s.repo.HardDelete(ctx, docID)
		}

		var totale types.Quintali
		for _, r := range rimasti {
			totale += r.TotaleQuintali()
		}
		doc.TotaleQuintali = totale
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	if deleted {
		logger.Info(ctx, "carico deleted after order removal", "id", docID)
		return nil, nil
	}
	return doc, nil
}

// AssegnaTrasportatore assigns a trasportatore and pickup date to a bozza.
// Transizione: bozza -> assegnato. The load must reach the minimum threshold.
func (s *Service) AssegnaTrasportatore(ctx context.Context, docID, trasportatoreID id.ID, dataRitiro time.Time) (*Carico, error) {
	var doc *Carico
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if !doc.CanTransition(StatoAssegnato) {
			return apperror.NewStatoNonValido("carico", string(doc.Stato), string(StatoAssegnato))
		}
		if doc.TotaleQuintali < SogliaMinima {
			return apperror.NewCaricoSottoSoglia(docID.String(), doc.TotaleQuintali.String(), SogliaMinima.String())
		}
		if err := s.checkTrasportatore(ctx, trasportatoreID); err != nil {
			return err
		}

		doc.TrasportatoreID = &trasportatoreID
		doc.DataRitiro = &dataRitiro
		doc.Stato = StatoAssegnato
		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}

		return s.aggiornaStatoOrdini(ctx, docID, func(ord *ordine.Ordine) {
			ord.StatoLogistico = ordine.LogisticoInCarico
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "carico assigned", "id", docID, "trasportatore_id", trasportatoreID)
	return doc, nil
}

// Ritira marks the carico as picked up at the mill.
// Transizione: assegnato -> ritirato. Orders become spedito.
func (s *Service) Ritira(ctx context.Context, docID id.ID, quando time.Time) (*Carico, error) {
	var doc *Carico
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if !doc.CanTransition(StatoRitirato) {
			return apperror.NewStatoNonValido("carico", string(doc.Stato), string(StatoRitirato))
		}

		doc.Stato = StatoRitirato
		doc.DataRitiroEffettiva = &quando
		if err := s.repo.Update(ctx, doc); err != nil {
			return err
		}

		return s.aggiornaStatoOrdini(ctx, docID, func(ord *ordine.Ordine) {
			ord.StatoLogistico = ordine.LogisticoSpedito
			ord.Stato = ordine.StatoRitirato
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "carico picked up", "id", docID)
	return doc, nil
}

// Consegna marks the carico as delivered.
// Transizione: ritirato -> consegnato.
func (s *Service) Consegna(ctx context.Context, docID id.ID, quando time.Time) (*Carico, error) {
	var doc *Carico
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if !doc.CanTransition(StatoConsegnato) {
			return apperror.NewStatoNonValido("carico", string(doc.Stato), string(StatoConsegnato))
		}

		doc.Stato = StatoConsegnato
		doc.DataConsegna = &quando
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "carico delivered", "id", docID)
	return doc, nil
}

// Delete removes a draft carico, returning its orders to aperto.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}
		if doc.Stato != StatoBozza {
			return apperror.NewBusinessRule(
				apperror.CodeStatoNonValido,
				"solo i carichi in bozza possono essere eliminati",
			).WithDetail("carico_id", docID.String()).
				WithDetail("stato", string(doc.Stato))
		}

		ordini, err := s.ordini.ListByCarico(ctx, docID)
		if err != nil {
			return err
		}
		for _, ord := range ordini {
			if err := s.detach(ctx, ord); err != nil {
				return err
			}
		}

		return s.repo.HardDelete(ctx, docID)
	})
}

// --- internals ---

// valuta checks the grouping constraints over a set of orders.
// Violations are collected, not short-circuited, so the operator sees
// everything wrong with the selection at once.
func (s *Service) valuta(ctx context.Context, ordineIDs []id.ID, excludeCaricoID *id.ID) (*Esito, []*ordine.Ordine, error) {
	esito := &Esito{Errori: make([]string, 0)}

	if len(ordineIDs) == 0 {
		esito.Errori = append(esito.Errori, "nessun ordine specificato")
		return esito, nil, nil
	}

	ordini := make([]*ordine.Ordine, 0, len(ordineIDs))
	for _, ordineID := range ordineIDs {
		ord, err := s.ordini.GetByID(ctx, ordineID)
		if err != nil {
			if apperror.IsNotFound(err) {
				esito.Errori = append(esito.Errori, fmt.Sprintf("ordine %s non trovato", ordineID))
				continue
			}
			return nil, nil, err
		}
		ord.Righe, err = s.ordini.GetLines(ctx, ordineID)
		if err != nil {
			return nil, nil, err
		}

		if ord.CaricoID != nil && (excludeCaricoID == nil || *ord.CaricoID != *excludeCaricoID) {
			esito.Errori = append(esito.Errori,
				fmt.Sprintf("ordine %s già assegnato al carico %s", ord.Numero, ord.CaricoID))
		}
		ordini = append(ordini, ord)
	}
	if len(esito.Errori) > 0 {
		return esito, nil, nil
	}

	var totale types.Quintali
	tipi := make(map[ordine.Tipo]bool)
	mulini := make(map[id.ID]bool)
	for _, ord := range ordini {
		tipi[ord.Tipo] = true
		if mid := ord.MulinoPrincipaleID(); mid != nil {
			mulini[*mid] = true
			esito.MulinoID = mid
		}
		totale += ord.TotaleQuintali()
	}

	if len(tipi) > 1 {
		esito.Errori = append(esito.Errori, "tipi ordine misti non ammessi nello stesso carico")
	} else {
		esito.Tipo = ordini[0].Tipo
	}
	if len(mulini) > 1 {
		esito.Errori = append(esito.Errori, "mulini diversi non ammessi nello stesso carico")
		esito.MulinoID = nil
	}

	esito.Riempimento = EvaluateFillTotale(totale, CapienzaMassima)
	if totale > CapienzaMassima {
		esito.Errori = append(esito.Errori,
			fmt.Sprintf("superato limite quintali: %s > %s", totale.String(), CapienzaMassima.String()))
	}

	esito.Valido = len(esito.Errori) == 0
	return esito, ordini, nil
}

func (s *Service) assegnaNumero(ctx context.Context, doc *Carico) error {
	if doc.Numero != "" {
		return nil
	}
	n, err := s.repo.NextNumero(ctx, doc.Data.Year())
	if err != nil {
		return fmt.Errorf("generate numero: %w", err)
	}
	doc.Numero = fmt.Sprintf("CAR-%d-%04d", doc.Data.Year(), n)
	return nil
}

func (s *Service) attach(ctx context.Context, doc *Carico, ordini []*ordine.Ordine, stato ordine.StatoLogistico) error {
	for _, ord := range ordini {
		ord.CaricoID = &doc.ID
		ord.StatoLogistico = stato
		if err := s.ordini.Update(ctx, ord); err != nil {
			return fmt.Errorf("attach ordine %s: %w", ord.Numero, err)
		}
	}
	return nil
}

func (s *Service) detach(ctx context.Context, ord *ordine.Ordine) error {
	ord.CaricoID = nil
	ord.StatoLogistico = ordine.LogisticoAperto
	if err := s.ordini.Update(ctx, ord); err != nil {
		return fmt.Errorf("detach ordine %s: %w", ord.Numero, err)
	}
	return nil
}

func (s *Service) aggiornaStatoOrdini(ctx context.Context, docID id.ID, apply func(*ordine.Ordine)) error {
	ordini, err := s.ordini.ListByCarico(ctx, docID)
	if err != nil {
		return err
	}
	for _, ord := range ordini {
		apply(ord)
		if err := s.ordini.Update(ctx, ord); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkTrasportatore(ctx context.Context, trasportatoreID id.ID) error {
	ok, err := s.trasportatori.Exists(ctx, trasportatoreID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("trasportatore", trasportatoreID.String())
	}
	return nil
}

// dateCompatibili checks the pickup date tolerance; an order or carico
// without a date is always compatible.
func dateCompatibili(dataCarico, dataOrdine *time.Time) bool {
	if dataCarico == nil || dataOrdine == nil {
		return true
	}
	diff := dataCarico.Sub(*dataOrdine)
	if diff < 0 {
		diff = -diff
	}
	return diff <= GiorniTolleranzaData*24*time.Hour
}
