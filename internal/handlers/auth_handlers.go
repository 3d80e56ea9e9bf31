package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginInput defines the JSON input for the admin login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin is the handler for POST /admin/login.
// On success it hands out the static admin token; the client sends it back
// on every admin request in the x-admin-token header.
func (h *Handlers) AdminLogin(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password are required"})
		return
	}

	// 2. --- Check Credentials ---
	admin := h.Config.Admin
	if input.Username != admin.Username || !admin.PasswordMatches(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	// 3. --- Send Success Response ---
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   admin.Token,
	})
}
