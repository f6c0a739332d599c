package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"farina/internal/core/apperror"
	"farina/internal/core/id"
	"farina/internal/domain/documents/ordine"
	"farina/internal/infrastructure/email"
	"farina/internal/infrastructure/http/v1/dto"
)

// OrdineHandler handles order endpoints.
type OrdineHandler struct {
	*BaseHandler
	service *ordine.Service
	sender  *email.Sender
}

// NewOrdineHandler creates a new order handler.
func NewOrdineHandler(base *BaseHandler, service *ordine.Service, sender *email.Sender) *OrdineHandler {
	return &OrdineHandler{
		BaseHandler: base,
		service:     service,
		sender:      sender,
	}
}

// List handles GET /ordini.
func (h *OrdineHandler) List(c *gin.Context) {
	filter := ordine.ListFilter{ListFilter: h.ParseListFilter(c)}

	var err error
	if filter.ClienteID, err = h.parseIDQuery(c, "cliente_id"); err != nil {
		h.Error(c, err)
		return
	}
	if filter.MulinoID, err = h.parseIDQuery(c, "mulino_id"); err != nil {
		h.Error(c, err)
		return
	}
	if filter.CaricoID, err = h.parseIDQuery(c, "carico_id"); err != nil {
		h.Error(c, err)
		return
	}

	if v := c.Query("stato"); v != "" {
		s := ordine.Stato(v)
		filter.Stato = &s
	}
	if v := c.Query("stato_logistico"); v != "" {
		s := ordine.StatoLogistico(v)
		filter.StatoLogistico = &s
	}
	if v := c.Query("tipo"); v != "" {
		t := ordine.Tipo(v)
		filter.Tipo = &t
	}
	if filter.DataDa, err = h.parseDateQuery(c, "data_da"); err != nil {
		h.Error(c, err)
		return
	}
	if filter.DataA, err = h.parseDateQuery(c, "data_a"); err != nil {
		h.Error(c, err)
		return
	}
	filter.SoloAssegnabili = c.Query("solo_assegnabili") == "true"

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, doc := range result.Items {
		items[i] = dto.FromOrdine(doc)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /ordini/:id.
func (h *OrdineHandler) Get(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrdine(doc))
}

// Create handles POST /ordini.
func (h *OrdineHandler) Create(c *gin.Context) {
	var req dto.CreateOrdineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrdine(doc))
}

// Update handles PUT /ordini/:id.
func (h *OrdineHandler) Update(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateOrdineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := req.ApplyTo(doc); err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromOrdine(doc))
}

// Delete handles DELETE /ordini/:id.
func (h *OrdineHandler) Delete(c *gin.Context) {
	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// InviaEmail handles POST /ordini/:id/invia-email.
// The request carries one pre-composed message per mill; the order is
// stamped so a second send is rejected.
func (h *OrdineHandler) InviaEmail(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.EmailOrdineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	if doc.EmailInviataIl != nil {
		h.Error(c, apperror.NewBusinessRule(
			apperror.CodeStatoNonValido,
			"Email già inviata per questo ordine",
		).WithDetail("ordine_id", docID.String()).
			WithDetail("inviata_il", doc.EmailInviataIl))
		return
	}

	for _, m := range req.Messaggi {
		err := h.sender.Send(ctx, email.Message{
			To:      m.To,
			Subject: m.Subject,
			Body:    m.Body,
		})
		if err != nil {
			h.Error(c, apperror.NewInternal(err).
				WithDetail("ordine_id", docID.String()))
			return
		}
	}

	if err := h.service.MarcaEmailInviata(ctx, docID, time.Now().UTC()); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "email inviate")
}

// MailConfig handles GET /ordini/mail-config.
// The frontend prefills the sender address in the compose dialog.
func (h *OrdineHandler) MailConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mail_from": h.sender.From()})
}

// --- query helpers ---

func (h *OrdineHandler) parseIDQuery(c *gin.Context, key string) (*id.ID, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	parsed, err := id.Parse(v)
	if err != nil {
		return nil, apperror.NewValidation("invalid " + key)
	}
	return &parsed, nil
}

func (h *OrdineHandler) parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, apperror.NewValidation("invalid " + key + ", expected YYYY-MM-DD")
	}
	return &t, nil
}
