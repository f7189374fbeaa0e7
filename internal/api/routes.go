package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the badge endpoints onto r. /process requires basic
// auth; the /api group is open.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	authed := r.Group("/", gin.BasicAuth(gin.Accounts{h.authUser: h.authPass}))
	authed.POST("/process", h.process)

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/badge", h.badgeImage)
		api.GET("/qr", h.qr)
	}
}
