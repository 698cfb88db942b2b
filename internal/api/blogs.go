package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vpprealtech/server/internal/content"
)

func (h *Handler) mountBlogs(g *gin.RouterGroup, authn, admin gin.HandlerFunc) {
	g.GET("", h.listBlogs)
	g.GET("/all", authn, admin, h.listAllBlogs)
	g.GET("/:slug", h.getBlogBySlug)
	g.POST("", authn, admin, h.createBlog)
	g.PUT("/:id", authn, admin, h.updateBlog)
	g.PATCH("/:id/publish", authn, admin, h.toggleBlogPublish)
	g.DELETE("/:id", authn, admin, h.deleteBlog)
}

func (h *Handler) listBlogs(c *gin.Context) {
	items, err := h.blogs.List()
	if err != nil {
		fail(c, h.logger, err, "Blog not found", "Failed to fetch blogs")
		return
	}
	respondCounted(c, items, len(items))
}

func (h *Handler) listAllBlogs(c *gin.Context) {
	items, err := h.blogs.ListAll()
	if err != nil {
		fail(c, h.logger, err, "Blog not found", "Failed to fetch blogs")
		return
	}
	respondCounted(c, items, len(items))
}

func (h *Handler) getBlogBySlug(c *gin.Context) {
	item, err := h.blogs.GetBySlug(c.Param("slug"))
	if err != nil {
		fail(c, h.logger, err, "Blog not found", "Failed to fetch blog")
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *Handler) createBlog(c *gin.Context) {
	var input content.BlogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := h.blogs.Create(input)
	if err != nil {
		fail(c, h.logger, err, "Blog not found", "Failed to create blog")
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (h *Handler) updateBlog(c *gin.Context) {
	var patch content.BlogUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := h.blogs.Update(c.Param("id"), patch)
	if err != nil {
		fail(c, h.logger, err, "Blog not found", "Failed to update blog")
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *Handler) toggleBlogPublish(c *gin.Context) {
	item, err := h.blogs.TogglePublish(c.Param("id"))
	if err != nil {
		fail(c, h.logger, err, "Blog not found", "Failed to update blog")
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *Handler) deleteBlog(c *gin.Context) {
	if err := h.blogs.Delete(c.Param("id")); err != nil {
		fail(c, h.logger, err, "Blog not found", "Failed to delete blog")
		return
	}
	respondMessage(c, "Blog deleted successfully")
}
