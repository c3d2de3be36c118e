// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid query parameters").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers err on the Gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// SessionID parses the :id path parameter of a draft.
func (h *BaseHandler) SessionID(c *gin.Context) (id.ID, bool) {
	raw := c.Param("id")
	sessionID, err := id.Parse(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid draft id").WithDetail("id", raw))
		return id.ID{}, false
	}
	return sessionID, true
}

// RecordID parses the :id path parameter of a backend record.
func (h *BaseHandler) RecordID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	recordID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || recordID <= 0 {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("id", raw))
		return 0, false
	}
	return recordID, true
}

// Position parses the 0-based :pos path parameter of a line.
func (h *BaseHandler) Position(c *gin.Context) (int, bool) {
	raw := c.Param("pos")
	pos, err := strconv.Atoi(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid line position").WithDetail("position", raw))
		return 0, false
	}
	return pos, true
}

// Created sends 201 response with data.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Success sends success response.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: message})
}
