package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/brightforge/erp/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			Fail(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		RespondError(c, err)
		return
	}
	Success(c, result)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	id, err := h.svc.Register(req)
	if err != nil {
		RespondError(c, err)
		return
	}
	Created(c, gin.H{"id": id, "username": req.Username})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		Fail(c, http.StatusUnauthorized, "Missing token")
		return
	}
	if err := h.svc.Logout(c.Request.Context(), token); err != nil {
		RespondError(c, err)
		return
	}
	Success(c, gin.H{"message": "Logged out"})
}

// Check lets the dashboard probe whether its stored token is still usable.
func (h *AuthHandler) Check(c *gin.Context) {
	user, ok := h.svc.Check(c.Request.Context(), bearerToken(c))
	if !ok {
		Fail(c, http.StatusUnauthorized, "Session expired")
		return
	}
	Success(c, gin.H{"user": user})
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
