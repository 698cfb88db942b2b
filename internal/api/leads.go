package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vpprealtech/server/internal/leads"
)

func (h *Handler) createLead(c *gin.Context) {
	var input leads.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	lead, err := h.leads.Create(input)
	if err != nil {
		fail(c, h.logger, err, "Lead not found", "Failed to submit enquiry")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you! We will contact you shortly.",
		"data":    gin.H{"id": lead.ID},
	})
}

func (h *Handler) listLeads(c *gin.Context) {
	items, err := h.leads.List(c.Query("type"), c.Query("status"), c.Query("sort"))
	if err != nil {
		fail(c, h.logger, err, "Lead not found", "Failed to fetch leads")
		return
	}
	respondCounted(c, items, len(items))
}

func (h *Handler) leadStats(c *gin.Context) {
	stats, err := h.leads.Stats()
	if err != nil {
		fail(c, h.logger, err, "Lead not found", "Failed to fetch lead stats")
		return
	}
	respondData(c, http.StatusOK, stats)
}

func (h *Handler) getLead(c *gin.Context) {
	lead, err := h.leads.Get(c.Param("id"))
	if err != nil {
		fail(c, h.logger, err, "Lead not found", "Failed to fetch lead")
		return
	}
	respondData(c, http.StatusOK, lead)
}

func (h *Handler) updateLeadStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	lead, err := h.leads.UpdateStatus(c.Param("id"), body.Status)
	if err != nil {
		fail(c, h.logger, err, "Lead not found", "Failed to update lead")
		return
	}
	respondData(c, http.StatusOK, lead)
}

func (h *Handler) updateLead(c *gin.Context) {
	var input leads.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	lead, err := h.leads.Update(c.Param("id"), input)
	if err != nil {
		fail(c, h.logger, err, "Lead not found", "Failed to update lead")
		return
	}
	respondData(c, http.StatusOK, lead)
}

func (h *Handler) deleteLead(c *gin.Context) {
	if err := h.leads.Delete(c.Param("id")); err != nil {
		fail(c, h.logger, err, "Lead not found", "Failed to delete lead")
		return
	}
	respondMessage(c, "Lead deleted successfully")
}
