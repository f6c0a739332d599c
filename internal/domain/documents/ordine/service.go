package ordine

import (
	"context"
	"fmt"
	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/tx"
	"farina/internal/core/types"
	"farina/internal/domain"
	"farina/internal/domain/catalogs/cliente"
	"farina/internal/domain/catalogs/mulino"
	"farina/internal/domain/catalogs/prodotto"
	"farina/pkg/logger"
)

// StoricoPrezzi is implemented by the prezzi domain: every saved order line
// appends a row to the price history of its (cliente, prodotto, mulino).
type StoricoPrezzi interface {
	Registra(ctx context.Context, clienteID, prodottoID, mulinoID id.ID, prezzo types.Money, data time.Time) error
}

// Service provides business operations for orders.
type Service struct {
	repo          Repository
	clienti       cliente.Repository
	prodotti      prodotto.Repository
	mulini        mulino.Repository
	storicoPrezzi StoricoPrezzi
	txManager     tx.Manager
	hooks         *domain.HookRegistry[*Ordine]
}

// NewService creates a new order service.
func NewService(
	repo Repository,
	clienti cliente.Repository,
	prodotti prodotto.Repository,
	mulini mulino.Repository,
	storicoPrezzi StoricoPrezzi,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:          repo,
		clienti:       clienti,
		prodotti:      prodotti,
		mulini:        mulini,
		storicoPrezzi: storicoPrezzi,
		txManager:     txManager,
		hooks:         domain.NewHookRegistry[*Ordine](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Ordine] {
	return s.hooks
}

// Create creates a new order. Pallet lines get their quintali derived from
// the customer's pedana standard, the RIBA collection date is computed, and
// every line price is appended to the storico prezzi.
func (s *Service) Create(ctx context.Context, doc *Ordine) error {
	if err := s.hooks.Run(ctx, domain.BeforeCreate, doc); err != nil {
		return err
	}

	cli, err := s.getCliente(ctx, doc.ClienteID)
	if err != nil {
		return err
	}

	if err := s.deriveRighe(doc, cli); err != nil {
		return err
	}
	s.deriveDataIncasso(doc, cli)

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkReferences(ctx, doc); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if doc.Numero == "" {
			n, err := s.repo.NextNumero(ctx, doc.Data.Year())
			if err != nil {
				return fmt.Errorf("generate numero: %w", err)
			}
			doc.Numero = fmt.Sprintf("%d-%06d", doc.Data.Year(), n)
		}

		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create ordine: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Righe); err != nil {
			return fmt.Errorf("save righe: %w", err)
		}

		return s.registraPrezzi(ctx, doc)
	})
	if err != nil {
		return err
	}

	_ = s.hooks.Run(ctx, domain.AfterCreate, doc)

	logger.Info(ctx, "ordine created",
		"id", doc.ID,
		"numero", doc.Numero,
		"cliente_id", doc.ClienteID,
		"quintali", doc.TotaleQuintali().String())

	return nil
}

// GetByID retrieves an order with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Ordine, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get righe: %w", err)
	}
	doc.Righe = lines

	return doc, nil
}

// Update updates an order. Orders already picked up cannot change.
func (s *Service) Update(ctx context.Context, doc *Ordine) error {
	if err := s.hooks.Run(ctx, domain.BeforeUpdate, doc); err != nil {
		return err
	}

	if doc.StatoLogistico == LogisticoSpedito {
		return apperror.NewBusinessRule(
			apperror.CodeStatoNonValido,
			"Un ordine spedito non può essere modificato",
		).WithDetail("ordine_id", doc.ID.String())
	}

	cli, err := s.getCliente(ctx, doc.ClienteID)
	if err != nil {
		return err
	}

	if err := s.deriveRighe(doc, cli); err != nil {
		return err
	}
	s.deriveDataIncasso(doc, cli)

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkReferences(ctx, doc); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update ordine: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Righe); err != nil {
			return fmt.Errorf("save righe: %w", err)
		}
		return s.registraPrezzi(ctx, doc)
	})
}

// Delete soft-deletes an order. Orders inside an assigned carico stay.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.StatoLogistico == LogisticoInCarico || doc.StatoLogistico == LogisticoSpedito {
		return apperror.NewBusinessRule(
			apperror.CodeStatoNonValido,
			"Un ordine in carico o spedito non può essere eliminato; rimuoverlo prima dal carico",
		).WithDetail("ordine_id", docID.String()).
			WithDetail("stato_logistico", string(doc.StatoLogistico))
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, docID)
	})
}

// List retrieves orders with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Ordine], error) {
	return s.repo.List(ctx, filter)
}

// MarcaEmailInviata records that the order summary was mailed to the mill.
func (s *Service) MarcaEmailInviata(ctx context.Context, docID id.ID, quando time.Time) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}
	doc.EmailInviataIl = &quando
	doc.Righe, err = s.repo.GetLines(ctx, docID)
	if err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// --- derivation helpers ---

func (s *Service) getCliente(ctx context.Context, clienteID id.ID) (*cliente.Cliente, error) {
	cli, err := s.clienti.GetByID(ctx, clienteID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("cliente", clienteID.String())
		}
		return nil, err
	}
	return cli, nil
}

// deriveRighe recomputes quintali and totals for pallet lines.
func (s *Service) deriveRighe(doc *Ordine, cli *cliente.Cliente) error {
	for i := range doc.Righe {
		r := &doc.Righe[i]
		if id.IsNil(r.RigaID) {
			r.RigaID = id.New()
		}
		r.NumeroRiga = i + 1

		if doc.Tipo == TipoPedane && r.Pedane != nil {
			if *r.Pedane < 0 {
				return apperror.NewValidation("pedane cannot be negative").
					WithDetail("numero_riga", i+1)
			}
			if derived := QuintaliFromPedane(*r.Pedane, cli.PedanaStandard); !derived.IsZero() {
				r.Quintali = derived
			}
		}

		r.PrezzoTotale = r.PrezzoQuintale.Mul(r.Quintali.Decimal())
	}
	return nil
}

// deriveDataIncasso computes the RIBA collection date for RIBA customers.
func (s *Service) deriveDataIncasso(doc *Ordine, cli *cliente.Cliente) {
	if cli.Riba && doc.DataRitiro != nil {
		d := DataIncassoRiba(*doc.DataRitiro)
		doc.DataIncassoMulino = &d
	} else {
		doc.DataIncassoMulino = nil
	}
}

func (s *Service) checkReferences(ctx context.Context, doc *Ordine) error {
	for _, r := range doc.Righe {
		ok, err := s.prodotti.Exists(ctx, r.ProdottoID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewNotFound("prodotto", r.ProdottoID.String())
		}

		ok, err = s.mulini.Exists(ctx, r.MulinoID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewNotFound("mulino", r.MulinoID.String())
		}
	}
	return nil
}

func (s *Service) registraPrezzi(ctx context.Context, doc *Ordine) error {
	if s.storicoPrezzi == nil {
		return nil
	}
	for _, r := range doc.Righe {
		if err := s.storicoPrezzi.Registra(ctx, doc.ClienteID, r.ProdottoID, r.MulinoID, r.PrezzoQuintale, doc.Data); err != nil {
			return fmt.Errorf("registra prezzo: %w", err)
		}
	}
	return nil
}
