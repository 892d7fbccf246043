package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sweetsky/internal/dto"
	"sweetsky/internal/middleware"
	"sweetsky/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString(middleware.TokenIDKey)
	h.svc.Logout(c.Request.Context(), tokenID)
	c.Status(http.StatusNoContent)
}
