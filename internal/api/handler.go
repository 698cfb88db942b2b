package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"vpprealtech/server/internal/auth"
	"vpprealtech/server/internal/content"
	"vpprealtech/server/internal/leads"
	"vpprealtech/server/internal/models"
)

// Handler carries the dependencies for every route.
type Handler struct {
	logger    *logrus.Logger
	auth      *auth.Manager
	projects  *content.ListingService
	mandates  *content.ListingService
	blogs     *content.BlogService
	leads     *leads.Service
	uploadDir string
	maxUpload int64
}

// NewHandler wires the HTTP layer.
func NewHandler(
	authMgr *auth.Manager,
	projects *content.ListingService,
	mandates *content.ListingService,
	blogs *content.BlogService,
	leadSvc *leads.Service,
	uploadDir string,
	maxUpload int64,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		logger:    logger,
		auth:      authMgr,
		projects:  projects,
		mandates:  mandates,
		blogs:     blogs,
		leads:     leadSvc,
		uploadDir: uploadDir,
		maxUpload: maxUpload,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Every response wraps its payload in {success, data?, error?, message?, count?}.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCounted(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count})
}

func respondMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// fail maps a service error onto the response taxonomy: validation 400,
// not-found 404 and anything else a logged 500 with a generic message
// that never leaks internals.
func fail(c *gin.Context, logger *logrus.Logger, err error, notFoundMsg, genericMsg string) {
	switch {
	case models.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	default:
		logger.WithError(err).Error(genericMsg)
		respondError(c, http.StatusInternalServerError, genericMsg)
	}
}
