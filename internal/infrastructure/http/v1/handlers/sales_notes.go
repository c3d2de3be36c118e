package handlers

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/documents/sales_note"
	"salesdesk/internal/domain/editor"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// SalesNoteHandler handles HTTP requests for persisted sales notes.
type SalesNoteHandler struct {
	*BaseHandler
	service *sales_note.Service
	editor  *editor.Service
}

// NewSalesNoteHandler creates a new sales note handler.
func NewSalesNoteHandler(base *BaseHandler, service *sales_note.Service, editorService *editor.Service) *SalesNoteHandler {
	return &SalesNoteHandler{
		BaseHandler: base,
		service:     service,
		editor:      editorService,
	}
}

// List handles GET /sales-notes
func (h *SalesNoteHandler) List(c *gin.Context) {
	notes, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(notes))
}

// Get handles GET /sales-notes/:id
func (h *SalesNoteHandler) Get(c *gin.Context) {
	noteID, ok := h.RecordID(c)
	if !ok {
		return
	}

	note, err := h.service.Get(c.Request.Context(), noteID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, note)
}

// Edit handles POST /sales-notes/:id/edit and returns a draft hydrated from the note.
func (h *SalesNoteHandler) Edit(c *gin.Context) {
	noteID, ok := h.RecordID(c)
	if !ok {
		return
	}

	view, err := h.editor.OpenSalesNote(c.Request.Context(), noteID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, view)
}

// Void handles POST /sales-notes/:id/void
func (h *SalesNoteHandler) Void(c *gin.Context) {
	noteID, ok := h.RecordID(c)
	if !ok {
		return
	}
	var req dto.VoidRequest
	if !h.BindJSON(c, &req) {
		return
	}

	note, err := h.service.Void(c.Request.Context(), noteID, req.Reason)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, note)
}

// Delete handles DELETE /sales-notes/:id
func (h *SalesNoteHandler) Delete(c *gin.Context) {
	noteID, ok := h.RecordID(c)
	if !ok {
		return
	}

	note, err := h.service.Delete(c.Request.Context(), noteID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, note)
}
