package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"vpprealtech/server/internal/content"
)

// listingHandlers serves one listing collection; the same set is mounted
// for projects and mandates.
type listingHandlers struct {
	svc    *content.ListingService
	name   string
	logger *logrus.Logger
}

func (h *Handler) mountListings(g *gin.RouterGroup, svc *content.ListingService, name string, authn, admin gin.HandlerFunc) {
	lh := &listingHandlers{svc: svc, name: name, logger: h.logger}

	g.GET("", lh.list)
	g.GET("/featured", lh.featured)
	g.GET("/all", authn, admin, lh.listAll)
	g.GET("/:slug", lh.getBySlug)
	g.POST("", authn, admin, lh.create)
	g.PUT("/:id", authn, admin, lh.update)
	g.PATCH("/:id/publish", authn, admin, lh.togglePublish)
	g.DELETE("/:id", authn, admin, lh.delete)
}

func (lh *listingHandlers) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	items, err := lh.svc.List(content.ListingFilters{
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Budget:   c.Query("budget"),
		Featured: c.Query("featured") == "true",
		Limit:    limit,
	})
	if err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to fetch "+lh.plural())
		return
	}
	respondCounted(c, items, len(items))
}

func (lh *listingHandlers) listAll(c *gin.Context) {
	items, err := lh.svc.ListAll()
	if err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to fetch "+lh.plural())
		return
	}
	respondCounted(c, items, len(items))
}

func (lh *listingHandlers) featured(c *gin.Context) {
	items, err := lh.svc.Featured()
	if err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to fetch featured "+lh.plural())
		return
	}
	respondList(c, items)
}

func (lh *listingHandlers) getBySlug(c *gin.Context) {
	item, err := lh.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to fetch "+lh.plural())
		return
	}
	respondData(c, http.StatusOK, item)
}

func (lh *listingHandlers) create(c *gin.Context) {
	var input content.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := lh.svc.Create(input)
	if err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to create "+lh.lower())
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (lh *listingHandlers) update(c *gin.Context) {
	var patch content.ListingUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	item, err := lh.svc.Update(c.Param("id"), patch)
	if err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to update "+lh.lower())
		return
	}
	respondData(c, http.StatusOK, item)
}

func (lh *listingHandlers) togglePublish(c *gin.Context) {
	item, err := lh.svc.TogglePublish(c.Param("id"))
	if err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to update "+lh.lower())
		return
	}
	respondData(c, http.StatusOK, item)
}

func (lh *listingHandlers) delete(c *gin.Context) {
	if err := lh.svc.Delete(c.Param("id")); err != nil {
		fail(c, lh.logger, err, lh.name+" not found", "Failed to delete "+lh.lower())
		return
	}
	respondMessage(c, lh.name+" deleted successfully")
}

func (lh *listingHandlers) plural() string {
	return lh.lower() + "s"
}

func (lh *listingHandlers) lower() string {
	return strings.ToLower(lh.name)
}
