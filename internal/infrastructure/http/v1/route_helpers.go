// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// DocumentRouteHandler defines the routes every persisted document type exposes.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Edit(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterDocumentRoutes registers list/read/delete routes and the edit
// route that opens a draft from the stored document.
//
// Usage:
//
//	handler := handlers.NewSalesNoteHandler(baseHandler, cfg.SalesNotes, cfg.Editor)
//	RegisterDocumentRoutes(rg.Group("/sales-notes"), handler)
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("/:id/edit", handler.Edit)
	group.DELETE("/:id", handler.Delete)
}
