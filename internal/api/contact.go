package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vpprealtech/server/internal/leads"
)

func (h *Handler) submitContact(c *gin.Context) {
	var input leads.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	contact, err := h.leads.SubmitContact(input)
	if err != nil {
		fail(c, h.logger, err, "Contact not found", "Failed to submit message")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thank you for reaching out! We will get back to you soon.",
		"data":    gin.H{"id": contact.ID},
	})
}
