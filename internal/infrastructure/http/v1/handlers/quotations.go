package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/editor"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// QuotationHandler handles HTTP requests for persisted quotations.
type QuotationHandler struct {
	*BaseHandler
	service *quotation.Service
	editor  *editor.Service
}

// NewQuotationHandler creates a new quotation handler.
func NewQuotationHandler(base *BaseHandler, service *quotation.Service, editorService *editor.Service) *QuotationHandler {
	return &QuotationHandler{
		BaseHandler: base,
		service:     service,
		editor:      editorService,
	}
}

// List handles GET /quotations
func (h *QuotationHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(items))
}

// Get handles GET /quotations/:id
func (h *QuotationHandler) Get(c *gin.Context) {
	quotationID, ok := h.RecordID(c)
	if !ok {
		return
	}

	q, err := h.service.Get(c.Request.Context(), quotationID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, q)
}

// GetByNumber handles GET /quotations/by-number/:number
func (h *QuotationHandler) GetByNumber(c *gin.Context) {
	q, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, q)
}

// Edit handles POST /quotations/:id/edit and returns a draft hydrated from the quotation.
func (h *QuotationHandler) Edit(c *gin.Context) {
	quotationID, ok := h.RecordID(c)
	if !ok {
		return
	}

	view, err := h.editor.OpenQuotation(c.Request.Context(), quotationID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, view)
}

// Delete handles DELETE /quotations/:id
func (h *QuotationHandler) Delete(c *gin.Context) {
	quotationID, ok := h.RecordID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), quotationID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Convert handles POST /quotations/:id/convert.
// The quotation is left in place; the new sales note is returned.
func (h *QuotationHandler) Convert(c *gin.Context) {
	quotationID, ok := h.RecordID(c)
	if !ok {
		return
	}
	var req dto.ConvertRequest
	if !h.BindJSON(c, &req) {
		return
	}

	method := catalog.PaymentMethod(strings.ToUpper(strings.TrimSpace(req.PaymentMethod)))
	note, err := h.service.Convert(c.Request.Context(), quotationID, method, req.Note)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, note)
}

// ConvertOnBackend handles POST /quotations/:id/convert/backend, letting
// the backend build the sales note from its own copy of the quotation.
func (h *QuotationHandler) ConvertOnBackend(c *gin.Context) {
	quotationID, ok := h.RecordID(c)
	if !ok {
		return
	}

	note, err := h.service.ConvertOnBackend(c.Request.Context(), quotationID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, note)
}
