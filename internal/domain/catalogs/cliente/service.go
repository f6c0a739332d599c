package cliente

import (
	"context"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/tx"
	"farina/internal/domain"
)

// Service provides business logic for the Cliente catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Cliente]
	repo Repository
}

// NewService creates a new Cliente service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Cliente]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "cliente",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkUniqueness)
	base.Hooks().OnBeforeUpdate(svc.checkUniqueness)

	return svc
}

// checkUniqueness rejects duplicate ragione sociale and partita IVA among live rows.
func (s *Service) checkUniqueness(ctx context.Context, c *Cliente) error {
	existing, err := s.repo.GetByNome(ctx, c.Nome)
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	if err == nil && existing.ID != c.ID {
		return apperror.NewDuplicate("cliente", "ragione sociale", c.Nome)
	}

	if c.PartitaIVA != nil && *c.PartitaIVA != "" {
		exists, err := s.checkPartitaIVAExists(ctx, *c.PartitaIVA, c.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewDuplicate("cliente", "partita IVA", *c.PartitaIVA)
		}
	}

	return nil
}

// FindByPartitaIVA retrieves a cliente by VAT number.
func (s *Service) FindByPartitaIVA(ctx context.Context, partitaIVA string) (*Cliente, error) {
	return s.repo.FindByPartitaIVA(ctx, partitaIVA)
}

func (s *Service) checkPartitaIVAExists(ctx context.Context, piva string, excludeID id.ID) (bool, error) {
	existing, err := s.repo.FindByPartitaIVA(ctx, piva)
	if err != nil {
		// Not found is OK; other errors must be propagated (DB errors, timeouts, etc.).
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
