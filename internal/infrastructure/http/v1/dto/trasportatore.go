package dto

import (
	"farina/internal/domain/catalogs/trasportatore"
)

// CreateTrasportatoreRequest is the request body for creating a trasportatore.
type CreateTrasportatoreRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Referente *string `json:"referente"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Targhe    *string `json:"targhe"`
	Note      string  `json:"note"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateTrasportatoreRequest) ToEntity() *trasportatore.Trasportatore {
	t := trasportatore.NewTrasportatore(r.Nome)
	t.Referente = r.Referente
	t.Telefono = r.Telefono
	t.Email = r.Email
	t.Targhe = r.Targhe
	t.Note = r.Note
	return t
}

// UpdateTrasportatoreRequest is the request body for updating a trasportatore.
type UpdateTrasportatoreRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	Referente *string `json:"referente"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email"`
	Targhe    *string `json:"targhe"`
	Note      string  `json:"note"`
	Version   int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateTrasportatoreRequest) ApplyTo(t *trasportatore.Trasportatore) {
	t.Nome = r.Nome
	t.Referente = r.Referente
	t.Telefono = r.Telefono
	t.Email = r.Email
	t.Targhe = r.Targhe
	t.Note = r.Note
	t.Version = r.Version
}

// TrasportatoreResponse is the response body for a trasportatore.
type TrasportatoreResponse struct {
	ID           string  `json:"id"`
	Nome         string  `json:"nome"`
	Referente    *string `json:"referente,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Email        *string `json:"email,omitempty"`
	Targhe       *string `json:"targhe,omitempty"`
	Note         string  `json:"note,omitempty"`
	DeletionMark bool    `json:"deletion_mark"`
	Version      int     `json:"version"`
}

// FromTrasportatore creates response DTO from domain entity.
func FromTrasportatore(t *trasportatore.Trasportatore) *TrasportatoreResponse {
	return &TrasportatoreResponse{
		ID:           t.ID.String(),
		Nome:         t.Nome,
		Referente:    t.Referente,
		Telefono:     t.Telefono,
		Email:        t.Email,
		Targhe:       t.Targhe,
		Note:         t.Note,
		DeletionMark: t.DeletionMark,
		Version:      t.Version,
	}
}
