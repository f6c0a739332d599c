package trasportatore

import (
	"context"

	"farina/internal/core/apperror"
	"farina/internal/core/tx"
	"farina/internal/domain"
)

// Service provides business logic for the Trasportatore catalog.
type Service struct {
	*domain.CatalogService[*Trasportatore]
	repo Repository
}

// NewService creates a new Trasportatore service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Trasportatore]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "trasportatore",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkNomeUnico)
	base.Hooks().OnBeforeUpdate(svc.checkNomeUnico)

	return svc
}

func (s *Service) checkNomeUnico(ctx context.Context, t *Trasportatore) error {
	existing, err := s.repo.GetByNome(ctx, t.Nome)
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	if err == nil && existing.ID != t.ID {
		return apperror.NewDuplicate("trasportatore", "nome", t.Nome)
	}
	return nil
}
