package handlers

import (
	"farina/internal/domain/catalogs/mulino"
	"farina/internal/infrastructure/http/v1/dto"
)

// MulinoHTTPHandler aliases the generic handler for mulini.
type MulinoHTTPHandler = CatalogHandler[*mulino.Mulino, dto.CreateMulinoRequest, dto.UpdateMulinoRequest]

// NewMulinoHandler wires the generic catalog handler to the mulino domain.
func NewMulinoHandler(base *BaseHandler, service *mulino.Service) *MulinoHTTPHandler {
	config := CatalogHandlerConfig[*mulino.Mulino, dto.CreateMulinoRequest, dto.UpdateMulinoRequest]{
		Service:    service.CatalogService,
		EntityName: "mulino",
		MapCreateDTO: func(req dto.CreateMulinoRequest) *mulino.Mulino {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateMulinoRequest, existing *mulino.Mulino) *mulino.Mulino {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *mulino.Mulino) any {
			return dto.FromMulino(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
