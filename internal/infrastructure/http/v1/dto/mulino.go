package dto

import (
	"farina/internal/domain/catalogs/mulino"
)

// CreateMulinoRequest is the request body for creating a mulino.
type CreateMulinoRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Referente *string `json:"referente"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Indirizzo *string `json:"indirizzo"`
	Note      string  `json:"note"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMulinoRequest) ToEntity() *mulino.Mulino {
	m := mulino.NewMulino(r.Nome)
	m.Referente = r.Referente
	m.Telefono = r.Telefono
	m.Email = r.Email
	m.Indirizzo = r.Indirizzo
	m.Note = r.Note
	return m
}

// UpdateMulinoRequest is the request body for updating a mulino.
type UpdateMulinoRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Referente *string `json:"referente"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Indirizzo *string `json:"indirizzo"`
	Note      string  `json:"note"`
	Version   int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMulinoRequest) ApplyTo(m *mulino.Mulino) {
	m.Nome = r.Nome
	m.Referente = r.Referente
	m.Telefono = r.Telefono
	m.Email = r.Email
	m.Indirizzo = r.Indirizzo
	m.Note = r.Note
	m.Version = r.Version
}

// MulinoResponse is the response body for a mulino.
type MulinoResponse struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	Referente    *string `json:"referente,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Email        *string `json:"email,omitempty"`
	Indirizzo    *string `json:"indirizzo,omitempty"`
	Note         string  `json:"note,omitempty"`
	DeletionMark bool    `json:"deletion_mark"`
	Version      int     `json:"version"`
}

// FromMulino creates response DTO from domain entity.
func FromMulino(m *mulino.Mulino) *MulinoResponse {
	return &MulinoResponse{
		ID:           m.ID.String(),
		Nome:         m.Nome,
		Referente:    m.Referente,
		Telefono:     m.Telefono,
		Email:        m.Email,
		Indirizzo:    m.Indirizzo,
		Note:         m.Note,
		DeletionMark: m.DeletionMark,
		Version:      m.Version,
	}
}
