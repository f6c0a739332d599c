package handlers

import (
	"farina/internal/domain/catalogs/trasportatore"
	"farina/internal/infrastructure/http/v1/dto"
)

// TrasportatoreHTTPHandler aliases the generic handler for trasportatori.
type TrasportatoreHTTPHandler = CatalogHandler[*trasportatore.Trasportatore, dto.CreateTrasportatoreRequest, dto.UpdateTrasportatoreRequest]

// NewTrasportatoreHandler wires the generic catalog handler to the trasportatore domain.
func NewTrasportatoreHandler(base *BaseHandler, service *trasportatore.Service) *TrasportatoreHTTPHandler {
	config := CatalogHandlerConfig[*trasportatore.Trasportatore, dto.CreateTrasportatoreRequest, dto.UpdateTrasportatoreRequest]{
		Service:    service.CatalogService,
		EntityName: "trasportatore",
		MapCreateDTO: func(req dto.CreateTrasportatoreRequest) *trasportatore.Trasportatore {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateTrasportatoreRequest, existing *trasportatore.Trasportatore) *trasportatore.Trasportatore {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *trasportatore.Trasportatore) any {
			return dto.FromTrasportatore(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
