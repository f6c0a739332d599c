package mulino

import (
	"context"

	"farina/internal/core/apperror"
	"farina/internal/core/tx"
	"farina/internal/domain"
)

// Service provides business logic for the Mulino catalog.
type Service struct {
	*domain.CatalogService[*Mulino]
	repo Repository
}

// NewService creates a new Mulino service.
func NewService(repo Repository, txm tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Mulino]{
		Repo:       repo,
		TxManager:  txm,
		EntityName: "mulino",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
	}

	base.Hooks().OnBeforeCreate(svc.checkNomeUnico)
	base.Hooks().OnBeforeUpdate(svc.checkNomeUnico)

	return svc
}

func (s *Service) checkNomeUnico(ctx context.Context, m *Mulino) error {
	existing, err := s.repo.GetByNome(ctx, m.Nome)
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	if err == nil && existing.ID != m.ID {
		return apperror.NewDuplicate("mulino", "nome", m.Nome)
	}
	return nil
}
