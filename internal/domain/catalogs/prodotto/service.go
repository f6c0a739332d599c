package prodotto

import (
	"context"

	"farina/internal/core/apperror"
	"farina/internal/core/tx"
	"farina/internal/domain"
)

// Service provides business logic for the Prodotto catalog.
type Service struct {
	*domain.CatalogService[*Prodotto]
	repo Repository
}

// NewService creates a new Prodotto service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Prodotto]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "prodotto",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkNomeUnico)
	base.Hooks().OnBeforeUpdate(svc.checkNomeUnico)

	return svc
}

func (s *Service) checkNomeUnico(ctx context.Context, p *Prodotto) error {
	existing, err := s.repo.GetByNome(ctx, p.Nome)
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	if err == nil && existing.ID != p.ID {
		return apperror.NewDuplicate("prodotto", "nome", p.Nome)
	}
	return nil
}
