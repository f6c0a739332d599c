package dto

import (
	"farina/internal/core/types"
	"farina/internal/domain/catalogs/cliente"
)

// --- Request DTOs ---

// CreateClienteRequest is the request body for creating a cliente.
type CreateClienteRequest struct {
	Nome           string          `json:"nome" binding:"required"`
	PartitaIVA     *string         `json:"partita_iva"`
	Indirizzo      *string         `json:"indirizzo"`
	Comune         *string         `json:"comune"`
	Provincia      *string         `json:"provincia"`
	Telefono       *string         `json:"telefono"`
	Email          *string         `json:"email"`
	PedanaStandard *types.Quintali `json:"pedana_standard"`
	Riba           bool            `json:"riba"`
	Note           string          `json:"note"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateClienteRequest) ToEntity() *cliente.Cliente {
	c := cliente.NewCliente(r.Nome)
	c.PartitaIVA = r.PartitaIVA
	c.Indirizzo = r.Indirizzo
	c.Comune = r.Comune
	c.Provincia = r.Provincia
	c.Telefono = r.Telefono
	c.Email = r.Email
	c.PedanaStandard = r.PedanaStandard
	c.Riba = r.Riba
	c.Note = r.Note
	return c
}

// UpdateClienteRequest is the request body for updating a cliente.
type UpdateClienteRequest struct {
	Nome           string          `json:"nome" binding:"required"`
	PartitaIVA     *string         `json:"partita_iva"`
	Indirizzo      *string         `json:"indirizzo"`
	Comune         *string         `json:"comune"`
	Provincia      *string         `json:"provincia"`
	Telefono       *string         `json:"telefono"`
	Email          *string         `json:"email"`
	PedanaStandard *types.Quintali `json:"pedana_standard"`
	Riba           bool            `json:"riba"`
	Note           string          `json:"note"`
	Version        int             `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateClienteRequest) ApplyTo(c *cliente.Cliente) {
	c.Nome = r.Nome
	c.PartitaIVA = r.PartitaIVA
	c.Indirizzo = r.Indirizzo
	c.Comune = r.Comune
	c.Provincia = r.Provincia
	c.Telefono = r.Telefono
	c.Email = r.Email
	c.PedanaStandard = r.PedanaStandard
	c.Riba = r.Riba
	c.Note = r.Note
	c.Version = r.Version
}

// --- Response DTOs ---

// ClienteResponse is the response body for a cliente.
type ClienteResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	PartitaIVA     *string         `json:"partita_iva,omitempty"`
	Indirizzo      *string         `json:"indirizzo,omitempty"`
	Comune         *string         `json:"comune,omitempty"`
	Provincia      *string         `json:"provincia,omitempty"`
	Telefono       *string         `json:"telefono,omitempty"`
	Email          *string         `json:"email,omitempty"`
	PedanaStandard *types.Quintali `json:"pedana_standard,omitempty"`
	Riba           bool            `json:"riba"`
	Note           string          `json:"note,omitempty"`
	DeletionMark   bool            `json:"deletion_mark"`
	Version        int             `json:"version"`
}

// FromCliente creates response DTO from domain entity.
func FromCliente(c *cliente.Cliente) *ClienteResponse {
	return &ClienteResponse{
		ID:             c.ID.String(),
		Nome:           c.Nome,
		PartitaIVA:     c.PartitaIVA,
		Indirizzo:      c.Indirizzo,
		Comune:         c.Comune,
		Provincia:      c.Provincia,
		Telefono:       c.Telefono,
		Email:          c.Email,
		PedanaStandard: c.PedanaStandard,
		Riba:           c.Riba,
		Note:           c.Note,
		DeletionMark:   c.DeletionMark,
		Version:        c.Version,
	}
}
