// Package api exposes the catalog over HTTP for previewing assets
// without writing them to disk.
package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the preview endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/manifest", h.manifest)
		api.GET("/assets/:family/:name", h.asset)
	}
}
