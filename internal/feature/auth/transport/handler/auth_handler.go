// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tick_store/internal/feature/auth/domain"
	"tick_store/internal/feature/auth/transport/http/dto"
)

// AuthUsecase defines the usecase interface consumed by the handler.
type AuthUsecase interface {
	Login(ctx context.Context, password string) (string, error)
}

// AuthHandler handles HTTP requests for operator authentication.
type AuthHandler struct {
	uc AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(uc AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.uc.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
