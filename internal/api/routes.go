package api

import (
	"github.com/gin-gonic/gin"

	"vpprealtech/server/internal/auth"
)

// SetupRoutes registers the full REST surface under /api.
func SetupRoutes(router *gin.Engine, h *Handler) {
	authn := h.auth.Authenticate()
	admin := auth.AdminOnly()

	api := router.Group("/api")
	{
		api.GET("/health", h.health)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", h.login)
			authGroup.GET("/profile", authn, h.profile)
			authGroup.POST("/logout", authn, h.logout)
		}

		h.mountListings(api.Group("/projects"), h.projects, "Project", authn, admin)
		h.mountListings(api.Group("/mandates"), h.mandates, "Mandate", authn, admin)
		h.mountBlogs(api.Group("/blogs"), authn, admin)

		leadsGroup := api.Group("/leads")
		{
			leadsGroup.POST("", h.createLead)
			leadsGroup.GET("", authn, admin, h.listLeads)
			leadsGroup.GET("/stats", authn, admin, h.leadStats)
			leadsGroup.GET("/:id", authn, admin, h.getLead)
			leadsGroup.PATCH("/:id/status", authn, admin, h.updateLeadStatus)
			leadsGroup.PUT("/:id", authn, admin, h.updateLead)
			leadsGroup.DELETE("/:id", authn, admin, h.deleteLead)
		}

		api.POST("/contact", h.submitContact)

		uploadGroup := api.Group("/upload", authn, admin)
		{
			uploadGroup.POST("/image", h.uploadImage)
			uploadGroup.POST("/images", h.uploadImages)
		}
	}
}
