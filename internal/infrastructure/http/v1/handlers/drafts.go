package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/editor"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// DraftHandler exposes edit sessions over HTTP.
type DraftHandler struct {
	*BaseHandler
	editor *editor.Service
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(base *BaseHandler, editorService *editor.Service) *DraftHandler {
	return &DraftHandler{
		BaseHandler: base,
		editor:      editorService,
	}
}

// Open handles POST /drafts
func (h *DraftHandler) Open(c *gin.Context) {
	var req dto.OpenDraftRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.editor.Open(c.Request.Context(), editor.Kind(req.Kind))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, view)
}

// Get handles GET /drafts/:id
func (h *DraftHandler) Get(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}

	view, err := h.editor.Get(sessionID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

// Close handles DELETE /drafts/:id
func (h *DraftHandler) Close(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}

	if err := h.editor.Close(c.Request.Context(), sessionID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// LookupClient handles POST /drafts/:id/client/lookup
func (h *DraftHandler) LookupClient(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req dto.LookupClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, found, err := h.editor.LookupClient(c.Request.Context(), sessionID, req.Identification)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.LookupClientResponse{Found: found, Draft: view})
}

// CaptureClient handles PUT /drafts/:id/client
func (h *DraftHandler) CaptureClient(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req dto.CaptureClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.editor.CaptureClient(sessionID, req.ToFields())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

// SetFinalConsumer handles PUT /drafts/:id/final-consumer
func (h *DraftHandler) SetFinalConsumer(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req dto.FinalConsumerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.editor.SetFinalConsumer(sessionID, *req.Enabled)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

// SetPaymentMethod handles PUT /drafts/:id/payment-method
func (h *DraftHandler) SetPaymentMethod(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req dto.PaymentMethodRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.editor.SetPaymentMethod(sessionID, req.PaymentMethod)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

// SetNote handles PUT /drafts/:id/note
func (h *DraftHandler) SetNote(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req dto.NoteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.editor.SetNote(sessionID, req.Note)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

// AddLine handles POST /drafts/:id/lines
func (h *DraftHandler) AddLine(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	var req dto.AddLineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, found, err := h.editor.AddProduct(c.Request.Context(), sessionID, req.Code, req.Quantity)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.AddLineResponse{Found: found, Draft: view})
}

// UpdateLine handles PATCH /drafts/:id/lines/:pos
func (h *DraftHandler) UpdateLine(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	pos, ok := h.Position(c)
	if !ok {
		return
	}
	var req dto.UpdateLineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	view, err := h.editor.UpdateLine(sessionID, pos, req.Quantity, req.UnitPrice)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

// RemoveLine handles DELETE /drafts/:id/lines/:pos
func (h *DraftHandler) RemoveLine(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}
	pos, ok := h.Position(c)
	if !ok {
		return
	}

	view, err := h.editor.RemoveLine(sessionID, pos)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, view)
}

// Submit handles POST /drafts/:id/submit
func (h *DraftHandler) Submit(c *gin.Context) {
	sessionID, ok := h.SessionID(c)
	if !ok {
		return
	}

	result, err := h.editor.Submit(c.Request.Context(), sessionID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, result)
}
