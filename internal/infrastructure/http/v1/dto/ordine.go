package dto

import (
	"time"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/core/types"
	"farina/internal/domain/documents/ordine"
)

// --- Request DTOs ---

// RigaRequest is one product line of an order request. Quintali may be
// omitted on pedane orders: it is derived from the cliente's pedana standard.
type RigaRequest struct {
	ProdottoID     string         `json:"prodotto_id" binding:"required"`
	MulinoID       string         `json:"mulino_id" binding:"required"`
	Pedane         *int           `json:"pedane"`
	Quintali       types.Quintali `json:"quintali"`
	PrezzoQuintale types.Money    `json:"prezzo_quintale"`
}

func (r *RigaRequest) toRiga(numero int) (ordine.Riga, error) {
	prodottoID, err := id.Parse(r.ProdottoID)
	if err != nil {
		return ordine.Riga{}, apperror.NewValidation("invalid prodotto_id").
			WithDetail("numero_riga", numero)
	}
	mulinoID, err := id.Parse(r.MulinoID)
	if err != nil {
		return ordine.Riga{}, apperror.NewValidation("invalid mulino_id").
			WithDetail("numero_riga", numero)
	}
	return ordine.Riga{
		RigaID:         id.New(),
		NumeroRiga:     numero,
		ProdottoID:     prodottoID,
		MulinoID:       mulinoID,
		Pedane:         r.Pedane,
		Quintali:       r.Quintali,
		PrezzoQuintale: r.PrezzoQuintale,
	}, nil
}

// CreateOrdineRequest is the request body for creating an order.
type CreateOrdineRequest struct {
	ClienteID  string        `json:"cliente_id" binding:"required"`
	Tipo       ordine.Tipo   `json:"tipo" binding:"required"`
	Data       *time.Time    `json:"data"`
	DataRitiro *time.Time    `json:"data_ritiro"`
	Note       string        `json:"note"`
	Righe      []RigaRequest `json:"righe" binding:"required,min=1"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrdineRequest) ToEntity() (*ordine.Ordine, error) {
	clienteID, err := id.Parse(r.ClienteID)
	if err != nil {
		return nil, apperror.NewValidation("invalid cliente_id")
	}

	doc := ordine.NewOrdine(clienteID, r.Tipo)
	if r.Data != nil {
		doc.Data = *r.Data
	}
	doc.DataRitiro = r.DataRitiro
	doc.Note = r.Note

	for i, rr := range r.Righe {
		riga, err := rr.toRiga(i + 1)
		if err != nil {
			return nil, err
		}
		doc.Righe = append(doc.Righe, riga)
	}
	return doc, nil
}

// UpdateOrdineRequest is the request body for updating an order.
// Lines are replaced wholesale.
type UpdateOrdineRequest struct {
	ClienteID  string        `json:"cliente_id" binding:"required"`
	Tipo       ordine.Tipo   `json:"tipo" binding:"required"`
	Data       *time.Time    `json:"data"`
	DataRitiro *time.Time    `json:"data_ritiro"`
	Note       string        `json:"note"`
	Righe      []RigaRequest `json:"righe" binding:"required,min=1"`
	Version    int           `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateOrdineRequest) ApplyTo(doc *ordine.Ordine) error {
	clienteID, err := id.Parse(r.ClienteID)
	if err != nil {
		return apperror.NewValidation("invalid cliente_id")
	}

	doc.ClienteID = clienteID
	doc.Tipo = r.Tipo
	if r.Data != nil {
		doc.Data = *r.Data
	}
	doc.DataRitiro = r.DataRitiro
	doc.Note = r.Note
	doc.Version = r.Version

	doc.Righe = doc.Righe[:0]
	for i, rr := range r.Righe {
		riga, err := rr.toRiga(i + 1)
		if err != nil {
			return err
		}
		doc.Righe = append(doc.Righe, riga)
	}
	return nil
}

// EmailOrdineRequest is the request body for mailing the order to the mills.
// The frontend composes one message per mill.
type EmailOrdineRequest struct {
	Messaggi []EmailMessaggio `json:"messaggi" binding:"required,min=1"`
}

// EmailMessaggio is one outgoing mail.
type EmailMessaggio struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// --- Response DTOs ---

// RigaResponse is one product line of an order response.
type RigaResponse struct {
	RigaID         string         `json:"riga_id"`
	NumeroRiga     int            `json:"numero_riga"`
	ProdottoID     string         `json:"prodotto_id"`
	MulinoID       string         `json:"mulino_id"`
	Pedane         *int           `json:"pedane,omitempty"`
	Quintali       types.Quintali `json:"quintali"`
	PrezzoQuintale types.Money    `json:"prezzo_quintale"`
	PrezzoTotale   types.Money    `json:"prezzo_totale"`
}

// OrdineResponse is the response body for an order.
type OrdineResponse struct {
	ID                string                `json:"id"`
	Numero            string                `json:"numero"`
	Data              time.Time             `json:"data"`
	ClienteID         string                `json:"cliente_id"`
	Tipo              ordine.Tipo           `json:"tipo"`
	DataRitiro        *time.Time            `json:"data_ritiro,omitempty"`
	DataIncassoMulino *time.Time            `json:"data_incasso_mulino,omitempty"`
	TrasportatoreID   *string               `json:"trasportatore_id,omitempty"`
	CaricoID          *string               `json:"carico_id,omitempty"`
	Stato             ordine.Stato          `json:"stato"`
	StatoLogistico    ordine.StatoLogistico `json:"stato_logistico"`
	EmailInviataIl    *time.Time            `json:"email_inviata_il,omitempty"`
	Note              string                `json:"note,omitempty"`
	TotaleQuintali    types.Quintali        `json:"totale_quintali"`
	TotaleImporto     types.Money           `json:"totale_importo"`
	Righe             []RigaResponse        `json:"righe"`
	DeletionMark      bool                  `json:"deletion_mark"`
	Version           int                   `json:"version"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// FromOrdine creates response DTO from domain entity.
func FromOrdine(doc *ordine.Ordine) *OrdineResponse {
	righe := make([]RigaResponse, len(doc.Righe))
	for i, r := range doc.Righe {
		righe[i] = RigaResponse{
			RigaID:         r.RigaID.String(),
			NumeroRiga:     r.NumeroRiga,
			ProdottoID:     r.ProdottoID.String(),
			MulinoID:       r.MulinoID.String(),
			Pedane:         r.Pedane,
			Quintali:       r.Quintali,
			PrezzoQuintale: r.PrezzoQuintale,
			PrezzoTotale:   r.PrezzoTotale,
		}
	}

	return &OrdineResponse{
		ID:                doc.ID.String(),
		Numero:            doc.Numero,
		Data:              doc.Data,
		ClienteID:         doc.ClienteID.String(),
		Tipo:              doc.Tipo,
		DataRitiro:        doc.DataRitiro,
		DataIncassoMulino: doc.DataIncassoMulino,
		TrasportatoreID:   idToString(doc.TrasportatoreID),
		CaricoID:          idToString(doc.CaricoID),
		Stato:             doc.Stato,
		StatoLogistico:    doc.StatoLogistico,
		EmailInviataIl:    doc.EmailInviataIl,
		Note:              doc.Note,
		TotaleQuintali:    doc.TotaleQuintali(),
		TotaleImporto:     doc.TotaleImporto(),
		Righe:             righe,
		DeletionMark:      doc.DeletionMark,
		Version:           doc.Version,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
}

func idToString(i *id.ID) *string {
	if i == nil {
		return nil
	}
	s := i.String()
	return &s
}
