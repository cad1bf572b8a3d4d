package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projectdesk/projectdesk/internal/auth"
	"github.com/projectdesk/projectdesk/internal/services"
	"github.com/projectdesk/projectdesk/internal/utils"
)

type AuthHandler struct {
	svc *services.PersonService
	tm  *auth.TokenManager
	log *zap.Logger
}

func NewAuthHandler(svc *services.PersonService, tm *auth.TokenManager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, tm: tm, log: log}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	person, err := h.svc.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(ctx, h.log, err)
		return
	}

	token, err := h.tm.Generate(person.EmployeeID, person.Email)
	if err != nil {
		h.log.Error("signing token failed", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
		return
	}

	respondData(ctx, http.StatusOK, gin.H{"token": token, "user": person})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	user, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
		return
	}

	respondData(ctx, http.StatusOK, user)
}

// Logout is stateless; the client discards the token. The endpoint exists so
// clients have a uniform call to end a session.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	respondData(ctx, http.StatusOK, gin.H{"message": "Logged out successfully"})
}
