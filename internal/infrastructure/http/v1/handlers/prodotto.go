package handlers

import (
	"farina/internal/domain/catalogs/prodotto"
	"farina/internal/infrastructure/http/v1/dto"
)

// ProdottoHTTPHandler aliases the generic handler for prodotti.
type ProdottoHTTPHandler = CatalogHandler[*prodotto.Prodotto, dto.CreateProdottoRequest, dto.UpdateProdottoRequest]

// NewProdottoHandler wires the generic catalog handler to the prodotto domain.
func NewProdottoHandler(base *BaseHandler, service *prodotto.Service) *ProdottoHTTPHandler {
	config := CatalogHandlerConfig[*prodotto.Prodotto, dto.CreateProdottoRequest, dto.UpdateProdottoRequest]{
		Service:    service.CatalogService,
		EntityName: "prodotto",
		MapCreateDTO: func(req dto.CreateProdottoRequest) *prodotto.Prodotto {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProdottoRequest, existing *prodotto.Prodotto) *prodotto.Prodotto {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *prodotto.Prodotto) any {
			return dto.FromProdotto(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
