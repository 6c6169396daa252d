// internal/handlers/auth.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/services"
	"github.com/aryals/dealer-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Username and password are required")
			return
		}
		if strings.Contains(err.Error(), "invalid credentials") {
			utils.UnauthorizedResponse(c, "Invalid username or password")
			return
		}
		utils.InternalErrorResponse(c, err)
		return
	}

	utils.MessageResponseWithData(c, "Login successful", result)
}

// GET /api/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, exists := c.Get("admin_id")
	if !exists {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	username, _ := c.Get("username")
	utils.SuccessResponse(c, gin.H{
		"id":       adminID,
		"username": username,
	})
}
