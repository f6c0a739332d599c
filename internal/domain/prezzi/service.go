package prezzi

import (
	"context"
	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/pkg/logger"
)

// Service provides price-history operations. It implements
// ordine.StoricoPrezzi so every saved order line feeds the history.
type Service struct {
	repo  Repository
	cache Cache
}

// NewService creates a new prezzi service. cache may be nil.
func NewService(repo Repository, cache Cache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// Registra appends a price row and invalidates the cached last price.
func (s *Service) Registra(ctx context.Context, clienteID, prodottoID, mulinoID id.ID, prezzo types.Money, data time.Time) error {
	row := &Prezzo{
		ID:             id.New(),
		ClienteID:      clienteID,
		ProdottoID:     prodottoID,
		MulinoID:       mulinoID,
		PrezzoQuintale: prezzo,
		Data:           data,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, row); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalida(ctx, clienteID, prodottoID); err != nil {
			// Cache failures must not break order entry.
			logger.Warn(ctx, "invalidate price cache failed", "error", err)
		}
	}
	return nil
}

// Ultimo returns the most recent price for a (cliente, prodotto) pair,
// consulting the cache first.
func (s *Service) Ultimo(ctx context.Context, clienteID, prodottoID id.ID) (*Prezzo, error) {
	if s.cache != nil {
		cached, err := s.cache.GetUltimo(ctx, clienteID, prodottoID)
		if err != nil {
			if !apperror.IsNotFound(err) {
				logger.Warn(ctx, "price cache read failed", "error", err)
			}
		} else if cached != nil {
			return &Prezzo{
				ClienteID:      clienteID,
				ProdottoID:     prodottoID,
				PrezzoQuintale: *cached,
			}, nil
		}
	}

	row, err := s.repo.Ultimo(ctx, clienteID, prodottoID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetUltimo(ctx, clienteID, prodottoID, row.PrezzoQuintale); err != nil {
			logger.Warn(ctx, "price cache write failed", "error", err)
		}
	}
	return row, nil
}

// StoricoCliente returns the customer's history grouped by mill, newest rows
// first within each group.
func (s *Service) StoricoCliente(ctx context.Context, clienteID id.ID, da *time.Time) ([]GruppoMulino, error) {
	rows, err := s.repo.ListByCliente(ctx, clienteID, da)
	if err != nil {
		return nil, err
	}
	return GroupByMulino(rows), nil
}
