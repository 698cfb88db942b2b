package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vpprealtech/server/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.WithError(err).Error("Login failed")
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	respondData(c, http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) profile(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}
	respondData(c, http.StatusOK, user)
}

func (h *Handler) logout(c *gin.Context) {
	// Stateless tokens: the client discards its copy.
	respondMessage(c, "Logged out successfully")
}
